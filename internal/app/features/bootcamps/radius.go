// internal/app/features/bootcamps/radius.go
package bootcamps

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/app/system/geocode"
	"github.com/dalemusser/campdir/internal/app/system/timeouts"
	"github.com/dalemusser/campdir/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// earthRadiusKm converts a surface distance to the angular radius
// $centerSphere expects.
const earthRadiusKm = 6378.0

// ServeRadius handles GET /bootcamps/radius/{zipcode}/{distance}. The
// zipcode is geocoded to a center point and distance is a radius in
// kilometers around it.
func (h *Handler) ServeRadius(w http.ResponseWriter, r *http.Request) error {
	zipcode := chi.URLParam(r, "zipcode")

	distance, err := strconv.ParseFloat(chi.URLParam(r, "distance"), 64)
	if err != nil || distance <= 0 {
		return apierr.BadRequest("distance must be a positive number")
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	locations, err := h.Geocoder.Geocode(ctx, zipcode)
	if err != nil {
		if errors.Is(err, geocode.ErrNoResults) {
			return apierr.BadRequest("could not geocode zipcode %s", zipcode)
		}
		return apierr.Internal("geocoding service unavailable", err)
	}
	center := locations[0]

	bcs, err := h.Bootcamps.FindWithinSphere(ctx, center.Longitude, center.Latitude, distance/earthRadiusKm)
	if err != nil {
		return err
	}
	if bcs == nil {
		bcs = []models.Bootcamp{}
	}

	apierr.OKCount(w, http.StatusOK, len(bcs), bcs)
	return nil
}
