// internal/app/features/bootcamps/delete.go
package bootcamps

import (
	"context"
	"net/http"

	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/app/system/authz"
	"github.com/dalemusser/campdir/internal/app/system/timeouts"
	"github.com/dalemusser/campdir/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /bootcamps/{id}. The bootcamp's courses,
// reviews, and photo file go with it.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "bootcampID"))
	if err != nil {
		return apierr.NotFound("bootcamp not found with id of %s", chi.URLParam(r, "bootcampID"))
	}

	role, _, userID, ok := authz.UserCtx(r)
	if !ok {
		return apierr.Unauthorized("not authorized to access this route")
	}
	isAdmin := role == "admin"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Bootcamps.DeleteOwned(ctx, id, userID, isAdmin)
	if err == mongo.ErrNoDocuments {
		exists, exErr := h.Bootcamps.Exists(ctx, id)
		if exErr != nil {
			return exErr
		}
		if !exists {
			return apierr.NotFound("bootcamp not found with id of %s", id.Hex())
		}
		return apierr.Forbidden("user %s is not authorized to delete this bootcamp", userID.Hex())
	}
	if err != nil {
		return err
	}

	// Cascade. The bootcamp itself is already gone; failures here are
	// logged rather than surfaced since the delete cannot be undone.
	if _, err := h.Courses.DeleteByBootcamp(ctx, id); err != nil {
		h.Log.Error("cascade delete of courses failed",
			zap.String("bootcamp_id", id.Hex()), zap.Error(err))
	}
	if _, err := h.Reviews.DeleteByBootcamp(ctx, id); err != nil {
		h.Log.Error("cascade delete of reviews failed",
			zap.String("bootcamp_id", id.Hex()), zap.Error(err))
	}
	if deleted.Photo != "" && deleted.Photo != models.DefaultBootcampPhoto {
		if err := h.Files.Delete(ctx, deleted.Photo); err != nil {
			h.Log.Warn("could not remove bootcamp photo",
				zap.String("photo", deleted.Photo), zap.Error(err))
		}
	}

	apierr.OK(w, http.StatusOK, struct{}{})
	return nil
}
