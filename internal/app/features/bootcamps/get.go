// internal/app/features/bootcamps/get.go
package bootcamps

import (
	"context"
	"net/http"

	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeGet handles GET /bootcamps/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "bootcampID"))
	if err != nil {
		// A malformed ID can never match a record.
		return apierr.NotFound("bootcamp not found with id of %s", chi.URLParam(r, "bootcampID"))
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	bc, err := h.Bootcamps.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		return apierr.NotFound("bootcamp not found with id of %s", id.Hex())
	}
	if err != nil {
		return err
	}

	apierr.OK(w, http.StatusOK, bc)
	return nil
}
