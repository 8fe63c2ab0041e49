// internal/app/features/bootcamps/update.go
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
	"github.com/dalemusser/campdir/internal/app/system/inputval"
	"github.com/dalemusser/campdir/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleUpdate handles PUT /bootcamps/{id}. The ownership check and the
// write are one conditional store operation, so two racing requests can
// never interleave a check with the other's write.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "bootcampID"))
	if err != nil {
		return apierr.NotFound("bootcamp not found with id of %s", chi.URLParam(r, "bootcampID"))
	}

	var in updateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return apierr.BadRequest("invalid JSON payload")
	}
	if res := inputval.Validate(in); res.HasErrors() {
		return apierr.BadRequest("%s", res.First())
	}
	if in.Careers != nil {
		if bad := invalidCareer(*in.Careers); bad != "" {
			return apierr.BadRequest("%q is not a valid career", bad)
		}
	}

	role, _, userID, ok := authz.UserCtx(r)
	if !ok {
		return apierr.Unauthorized("not authorized to access this route")
	}
	isAdmin := role == "admin"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Publishing through an update counts against the same one-published
	// limit as create; excluding this bootcamp lets a re-publish of the
	// already-published record through.
	if in.Published != nil && *in.Published && !isAdmin {
		exists, err := h.Bootcamps.ExistsPublishedByOwner(ctx, userID, id)
		if err != nil {
			return err
		}
		if exists {
			return apierr.BadRequest("the user with ID %s has already published a bootcamp", userID.Hex())
		}
	}

	set := in.set()
	if in.Address != nil && *in.Address != "" {
		locations, err := h.Geocoder.Geocode(ctx, *in.Address)
		if err != nil {
			if errors.Is(err, geocode.ErrNoResults) {
				return apierr.BadRequest("could not geocode the provided address")
			}
			return apierr.Internal("geocoding service unavailable", err)
		}
		set["location"] = toGeoJSON(locations[0])
	}
	if len(set) == 0 {
		return apierr.BadRequest("no fields to update")
	}

	updated, err := h.Bootcamps.UpdateOwned(ctx, id, userID, isAdmin, set)
	if err == bootcampstore.ErrDuplicateBootcamp {
		return apierr.BadRequest("duplicate field value entered")
	}
	if err == mongo.ErrNoDocuments {
		// Missing record and someone else's record both match nothing;
		// a follow-up existence check tells them apart.
		exists, exErr := h.Bootcamps.Exists(ctx, id)
		if exErr != nil {
			return exErr
		}
		if !exists {
			return apierr.NotFound("bootcamp not found with id of %s", id.Hex())
		}
		return apierr.Forbidden("user %s is not authorized to update this bootcamp", userID.Hex())
	}
	if err != nil {
		return err
	}

	apierr.OK(w, http.StatusOK, updated)
	return nil
}
