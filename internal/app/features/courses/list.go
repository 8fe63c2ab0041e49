// internal/app/features/courses/list.go
package courses

import (
	"context"
	"net/http"

	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/app/system/listquery"
	"github.com/dalemusser/campdir/internal/app/system/timeouts"
	"github.com/dalemusser/campdir/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RunListQuery executes the parsed list query for the middleware.
func (h *Handler) RunListQuery(ctx context.Context, p listquery.Params) (any, int, int64, error) {
	total, err := h.Courses.Count(ctx, p.Filter)
	if err != nil {
		return nil, 0, 0, err
	}

	opts := options.Find().
		SetSort(p.Sort).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))
	if p.Projection != nil {
		opts.SetProjection(p.Projection)
	}

	courses, err := h.Courses.Find(ctx, p.Filter, opts)
	if err != nil {
		return nil, 0, 0, err
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, len(courses), total, nil
}

// ServeList handles GET /courses.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) error {
	env, ok := listquery.FromContext(r.Context())
	if !ok {
		return apierr.Internal("server error", nil)
	}
	apierr.JSON(w, http.StatusOK, env)
	return nil
}

// ServeListForBootcamp handles GET /bootcamps/{bootcampID}/courses.
func (h *Handler) ServeListForBootcamp(w http.ResponseWriter, r *http.Request) error {
	bootcampID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "bootcampID"))
	if err != nil {
		return apierr.NotFound("bootcamp not found with id of %s", chi.URLParam(r, "bootcampID"))
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	courses, err := h.Courses.Find(ctx, bson.M{"bootcamp_id": bootcampID})
	if err != nil {
		return err
	}
	if courses == nil {
		courses = []models.Course{}
	}

	apierr.OKCount(w, http.StatusOK, len(courses), courses)
	return nil
}
