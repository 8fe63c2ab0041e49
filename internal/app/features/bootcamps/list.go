// internal/app/features/bootcamps/list.go
package bootcamps

import (
	"context"
	"net/http"

	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/app/system/listquery"
	"github.com/dalemusser/campdir/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RunListQuery executes the parsed list query for the middleware.
func (h *Handler) RunListQuery(ctx context.Context, p listquery.Params) (any, int, int64, error) {
	total, err := h.Bootcamps.Count(ctx, p.Filter)
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

	bcs, err := h.Bootcamps.Find(ctx, p.Filter, opts)
	if err != nil {
		return nil, 0, 0, err
	}
	if bcs == nil {
		bcs = []models.Bootcamp{} // serialize as [], not null
	}
	return bcs, len(bcs), total, nil
}

// ServeList returns the envelope the query middleware already computed.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) error {
	env, ok := listquery.FromContext(r.Context())
	if !ok {
		return apierr.Internal("server error", nil)
	}
	apierr.JSON(w, http.StatusOK, env)
	return nil
}
