// internal/app/features/bootcamps/photo.go
package bootcamps

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/app/system/authz"
	"github.com/dalemusser/campdir/internal/app/system/timeouts"
	"github.com/dalemusser/campdir/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// maxMultipartOverhead is the slack allowed beyond the configured upload
// limit for multipart boundaries and part headers.
const maxMultipartOverhead = 10 << 10

// HandlePhoto handles PUT /bootcamps/{id}/photo. The upload is a multipart
// form with a single "file" part; the stored name is photo_<id><ext>, so a
// re-upload for the same bootcamp overwrites in place.
func (h *Handler) HandlePhoto(w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "bootcampID"))
	if err != nil {
		return apierr.NotFound("bootcamp not found with id of %s", chi.URLParam(r, "bootcampID"))
	}

	role, _, userID, ok := authz.UserCtx(r)
	if !ok {
		return apierr.Unauthorized("not authorized to access this route")
	}
	isAdmin := role == "admin"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// Reject before reading the file when the target is missing or not
	// ours; the conditional SetPhoto below still re-checks atomically.
	bc, err := h.Bootcamps.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		return apierr.NotFound("bootcamp not found with id of %s", id.Hex())
	}
	if err != nil {
		return err
	}
	if !authz.CanMutate(r, bc.OwnerID) {
		return apierr.Forbidden("user %s is not authorized to update this bootcamp", userID.Hex())
	}

	// Cap the body before parsing so an oversized upload is cut off at the
	// wire instead of spooling to a temp file first. The slack covers the
	// multipart framing around the file part.
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUpload+maxMultipartOverhead)
	if err := r.ParseMultipartForm(h.MaxUpload); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return apierr.TooLarge("please upload an image less than %d bytes", h.MaxUpload)
		}
		return apierr.BadRequest("please upload a file")
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return apierr.BadRequest("please upload a file")
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return apierr.BadRequest("please upload an image file")
	}
	if header.Size > h.MaxUpload {
		return apierr.TooLarge("please upload an image less than %d bytes", h.MaxUpload)
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		return apierr.BadRequest("please upload an image file")
	}

	filename := "photo_" + id.Hex() + ext

	if err := h.Files.Put(ctx, filename, file); err != nil {
		return apierr.Internal("problem with file upload", err)
	}

	prev, err := h.Bootcamps.SetPhoto(ctx, id, userID, isAdmin, filename)
	if err == mongo.ErrNoDocuments {
		// The bootcamp vanished or changed hands while we wrote the file.
		if delErr := h.Files.Delete(ctx, filename); delErr != nil {
			h.Log.Warn("could not remove orphaned upload",
				zap.String("photo", filename), zap.Error(delErr))
		}
		return apierr.NotFound("bootcamp not found with id of %s", id.Hex())
	}
	if err != nil {
		return err
	}

	// A previous photo under a different extension is now orphaned.
	if prev.Photo != "" && prev.Photo != filename && prev.Photo != models.DefaultBootcampPhoto {
		if err := h.Files.Delete(ctx, prev.Photo); err != nil {
			h.Log.Warn("could not remove replaced photo",
				zap.String("photo", prev.Photo), zap.Error(err))
		}
	}

	apierr.OK(w, http.StatusOK, filename)
	return nil
}
