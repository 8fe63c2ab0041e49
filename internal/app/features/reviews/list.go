// internal/app/features/reviews/list.go
package reviews

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
	total, err := h.Reviews.Count(ctx, p.Filter)
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

	reviews, err := h.Reviews.Find(ctx, p.Filter, opts)
	if err != nil {
		return nil, 0, 0, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, len(reviews), total, nil
}

// ServeList handles GET /reviews.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) error {
	env, ok := listquery.FromContext(r.Context())
	if !ok {
		return apierr.Internal("server error", nil)
	}
	apierr.JSON(w, http.StatusOK, env)
	return nil
}

// ServeListForBootcamp handles GET /bootcamps/{bootcampID}/reviews.
func (h *Handler) ServeListForBootcamp(w http.ResponseWriter, r *http.Request) error {
	bootcampID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "bootcampID"))
	if err != nil {
		return apierr.NotFound("bootcamp not found with id of %s", chi.URLParam(r, "bootcampID"))
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	reviews, err := h.Reviews.Find(ctx, bson.M{"bootcamp_id": bootcampID})
	if err != nil {
		return err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	apierr.OKCount(w, http.StatusOK, len(reviews), reviews)
	return nil
}
