// internal/app/features/courses/crud.go
package courses

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/app/system/authz"
	"github.com/dalemusser/campdir/internal/app/system/htmlsanitize"
	"github.com/dalemusser/campdir/internal/app/system/inputval"
	"github.com/dalemusser/campdir/internal/app/system/timeouts"
	"github.com/dalemusser/campdir/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeGet handles GET /courses/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return apierr.NotFound("course not found with id of %s", chi.URLParam(r, "id"))
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	course, err := h.Courses.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		return apierr.NotFound("course not found with id of %s", id.Hex())
	}
	if err != nil {
		return err
	}

	apierr.OK(w, http.StatusOK, course)
	return nil
}

// HandleCreate handles POST /bootcamps/{bootcampID}/courses. The caller
// must own the bootcamp (or be an admin).
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

	bc, err := h.Bootcamps.GetByID(ctx, bootcampID)
	if err == mongo.ErrNoDocuments {
		return apierr.NotFound("bootcamp not found with id of %s", bootcampID.Hex())
	}
	if err != nil {
		return err
	}
	if !authz.CanMutate(r, bc.OwnerID) {
		return apierr.Forbidden("user %s is not authorized to add a course to bootcamp %s", userID.Hex(), bootcampID.Hex())
	}

	course := models.Course{
		BootcampID:           bootcampID,
		Title:                in.Title,
		Description:          htmlsanitize.Sanitize(in.Description),
		Weeks:                in.Weeks,
		Tuition:              in.Tuition,
		MinimumSkill:         in.MinimumSkill,
		ScholarshipAvailable: in.ScholarshipAvailable,
	}

	created, err := h.Courses.Create(ctx, course)
	if err != nil {
		return err
	}

	apierr.OK(w, http.StatusCreated, created)
	return nil
}

// HandleUpdate handles PUT /courses/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return apierr.NotFound("course not found with id of %s", chi.URLParam(r, "id"))
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

	course, err := h.authorizeCourseMutation(ctx, r, id, "update")
	if err != nil {
		return err
	}

	updated, err := h.Courses.Update(ctx, course.ID, set)
	if err == mongo.ErrNoDocuments {
		return apierr.NotFound("course not found with id of %s", id.Hex())
	}
	if err != nil {
		return err
	}

	apierr.OK(w, http.StatusOK, updated)
	return nil
}

// HandleDelete handles DELETE /courses/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return apierr.NotFound("course not found with id of %s", chi.URLParam(r, "id"))
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	course, err := h.authorizeCourseMutation(ctx, r, id, "delete")
	if err != nil {
		return err
	}

	if _, err := h.Courses.Delete(ctx, course.ID); err != nil {
		return err
	}

	apierr.OK(w, http.StatusOK, struct{}{})
	return nil
}

// authorizeCourseMutation loads the course and checks the caller against
// the owning bootcamp. Courses inherit their bootcamp's ownership.
func (h *Handler) authorizeCourseMutation(ctx context.Context, r *http.Request, id primitive.ObjectID, verb string) (models.Course, error) {
	course, err := h.Courses.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		return models.Course{}, apierr.NotFound("course not found with id of %s", id.Hex())
	}
	if err != nil {
		return models.Course{}, err
	}

	bc, err := h.Bootcamps.GetByID(ctx, course.BootcampID)
	if err == mongo.ErrNoDocuments {
		// Orphaned course; only an admin may clean it up.
		if authz.IsAdmin(r) {
			return course, nil
		}
		return models.Course{}, apierr.NotFound("bootcamp not found with id of %s", course.BootcampID.Hex())
	}
	if err != nil {
		return models.Course{}, err
	}

	if !authz.CanMutate(r, bc.OwnerID) {
		_, _, userID, _ := authz.UserCtx(r)
		return models.Course{}, apierr.Forbidden("user %s is not authorized to %s course %s", userID.Hex(), verb, id.Hex())
	}
	return course, nil
}
