// internal/app/features/bootcamps/create.go
package bootcamps

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	bootcampstore "github.com/dalemusser/campdir/internal/app/store/bootcamps"
	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/app/system/authz"
	"github.com/dalemusser/campdir/internal/app/system/geocode"
	"github.com/dalemusser/campdir/internal/app/system/htmlsanitize"
	"github.com/dalemusser/campdir/internal/app/system/inputval"
	"github.com/dalemusser/campdir/internal/app/system/timeouts"
	"github.com/dalemusser/campdir/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleCreate handles POST /bootcamps.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) error {
	var in createInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return apierr.BadRequest("invalid JSON payload")
	}

	if res := inputval.Validate(in); res.HasErrors() {
		return apierr.BadRequest("%s", res.First())
	}
	if bad := invalidCareer(in.Careers); bad != "" {
		return apierr.BadRequest("%q is not a valid career", bad)
	}

	role, _, userID, ok := authz.UserCtx(r)
	if !ok {
		return apierr.Unauthorized("not authorized to access this route")
	}

	published := true
	if in.Published != nil {
		published = *in.Published
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Non-admin publishers are limited to one published bootcamp.
	if published && role != models.RoleAdmin {
		exists, err := h.Bootcamps.ExistsPublishedByOwner(ctx, userID, primitive.NilObjectID)
		if err != nil {
			return err
		}
		if exists {
			return apierr.BadRequest("the user with ID %s has already published a bootcamp", userID.Hex())
		}
	}

	locations, err := h.Geocoder.Geocode(ctx, in.Address)
	if err != nil {
		if errors.Is(err, geocode.ErrNoResults) {
			return apierr.BadRequest("could not geocode the provided address")
		}
		return apierr.Internal("geocoding service unavailable", err)
	}
	best := locations[0]

	bc := models.Bootcamp{
		OwnerID:       userID,
		Name:          in.Name,
		Description:   htmlsanitize.Sanitize(in.Description),
		Website:       in.Website,
		Phone:         in.Phone,
		Email:         in.Email,
		Location:      toGeoJSON(best),
		Careers:       in.Careers,
		Housing:       in.Housing,
		JobAssistance: in.JobAssistance,
		JobGuarantee:  in.JobGuarantee,
		AcceptGI:      in.AcceptGI,
		AverageCost:   in.AverageCost,
		Published:     published,
	}

	created, err := h.Bootcamps.Create(ctx, bc)
	if err == bootcampstore.ErrDuplicateBootcamp {
		return apierr.BadRequest("duplicate field value entered")
	}
	if err != nil {
		return err
	}

	apierr.OK(w, http.StatusCreated, created)
	return nil
}

// toGeoJSON converts a geocoder candidate to the stored GeoJSON point.
// Coordinates are [longitude, latitude].
func toGeoJSON(loc geocode.Location) models.Location {
	return models.Location{
		Type:             "Point",
		Coordinates:      []float64{loc.Longitude, loc.Latitude},
		FormattedAddress: loc.FormattedAddress,
		Street:           loc.Street,
		City:             loc.City,
		State:            loc.State,
		Zipcode:          loc.Zipcode,
		Country:          loc.Country,
	}
}
