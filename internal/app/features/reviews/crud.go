// internal/app/features/reviews/crud.go
package reviews

import (
	"context"
	"encoding/json"
	"net/http"

	reviewstore "github.com/dalemusser/campdir/internal/app/store/reviews"
	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/app/system/authz"
	"github.com/dalemusser/campdir/internal/app/system/inputval"
	"github.com/dalemusser/campdir/internal/app/system/timeouts"
	"github.com/dalemusser/campdir/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeGet handles GET /reviews/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return apierr.NotFound("review not found with id of %s", chi.URLParam(r, "id"))
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	review, err := h.Reviews.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		return apierr.NotFound("review not found with id of %s", id.Hex())
	}
	if err != nil {
		return err
	}

	apierr.OK(w, http.StatusOK, review)
	return nil
}

// HandleCreate handles POST /bootcamps/{bootcampID}/reviews. One review per
// user per bootcamp; the unique index enforces it.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) error {
	bootcampID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "bootcampID"))
	if err != nil {
		return apierr.NotFound("bootcamp not found with id of %s", chi.URLParam(r, "bootcampID"))
	}

	var in createInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return apierr.BadRequest("invalid JSON payload")
	}
	if res := inputval.Validate(in); res.HasErrors() {
		return apierr.BadRequest("%s", res.First())
	}

	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		return apierr.Unauthorized("not authorized to access this route")
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if exists, err := h.Bootcamps.Exists(ctx, bootcampID); err != nil {
		return err
	} else if !exists {
		return apierr.NotFound("bootcamp not found with id of %s", bootcampID.Hex())
	}

	review := models.Review{
		BootcampID: bootcampID,
		UserID:     userID,
		Title:      in.Title,
		Text:       in.Text,
		Rating:     in.Rating,
	}

	created, err := h.Reviews.Create(ctx, review)
	if err == reviewstore.ErrDuplicateReview {
		return apierr.BadRequest("you have already reviewed this bootcamp")
	}
	if err != nil {
		return err
	}

	apierr.OK(w, http.StatusCreated, created)
	return nil
}

// HandleUpdate handles PUT /reviews/{id}. Only the review's author or an
// admin may change it.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return apierr.NotFound("review not found with id of %s", chi.URLParam(r, "id"))
	}

	var in updateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return apierr.BadRequest("invalid JSON payload")
	}
	if res := inputval.Validate(in); res.HasErrors() {
		return apierr.BadRequest("%s", res.First())
	}
	set := in.set()
	if len(set) == 0 {
		return apierr.BadRequest("no fields to update")
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	review, err := h.authorizeReviewMutation(ctx, r, id, "update")
	if err != nil {
		return err
	}

	updated, err := h.Reviews.Update(ctx, review.ID, set)
	if err == mongo.ErrNoDocuments {
		return apierr.NotFound("review not found with id of %s", id.Hex())
	}
	if err != nil {
		return err
	}

	apierr.OK(w, http.StatusOK, updated)
	return nil
}

// HandleDelete handles DELETE /reviews/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return apierr.NotFound("review not found with id of %s", chi.URLParam(r, "id"))
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	review, err := h.authorizeReviewMutation(ctx, r, id, "delete")
	if err != nil {
		return err
	}

	if _, err := h.Reviews.Delete(ctx, review.ID); err != nil {
		return err
	}

	apierr.OK(w, http.StatusOK, struct{}{})
	return nil
}

// authorizeReviewMutation loads the review and checks the caller is its
// author or an admin.
func (h *Handler) authorizeReviewMutation(ctx context.Context, r *http.Request, id primitive.ObjectID, verb string) (models.Review, error) {
	review, err := h.Reviews.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		return models.Review{}, apierr.NotFound("review not found with id of %s", id.Hex())
	}
	if err != nil {
		return models.Review{}, err
	}

	if !authz.CanMutate(r, review.UserID) {
		_, _, userID, _ := authz.UserCtx(r)
		return models.Review{}, apierr.Forbidden("user %s is not authorized to %s review %s", userID.Hex(), verb, id.Hex())
	}
	return review, nil
}
