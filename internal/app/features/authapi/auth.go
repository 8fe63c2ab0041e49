// internal/app/features/authapi/auth.go
package authapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	userstore "github.com/dalemusser/campdir/internal/app/store/users"
	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/app/system/auth"
	"github.com/dalemusser/campdir/internal/app/system/authz"
	"github.com/dalemusser/campdir/internal/app/system/inputval"
	"github.com/dalemusser/campdir/internal/app/system/timeouts"
	"github.com/dalemusser/campdir/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type registerInput struct {
	Name     string `json:"name" validate:"required,max=100" label:"Name"`
	Email    string `json:"email" validate:"required,email" label:"Email"`
	Password string `json:"password" validate:"required,min=6" label:"Password"`
	Role     string `json:"role" validate:"omitempty,oneof=user publisher" label:"Role"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email" label:"Email"`
	Password string `json:"password" validate:"required" label:"Password"`
}

// tokenResponse is the data payload for register and login.
type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// HandleRegister handles POST /auth/register. The admin role cannot be
// self-assigned; admins are created out of band.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) error {
	var in registerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return apierr.BadRequest("invalid JSON payload")
	}
	if res := inputval.Validate(in); res.HasErrors() {
		return apierr.BadRequest("%s", res.First())
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.Create(ctx, in.Name, in.Email, in.Password, in.Role)
	if err == userstore.ErrDuplicateEmail {
		return apierr.BadRequest("an account with this email already exists")
	}
	if err != nil {
		return err
	}

	return h.respondWithToken(w, http.StatusCreated, u)
}

// HandleLogin handles POST /auth/login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) error {
	var in loginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return apierr.BadRequest("invalid JSON payload")
	}
	if res := inputval.Validate(in); res.HasErrors() {
		return apierr.BadRequest("%s", res.First())
	}

	if allowed, reason := h.Limits.Check(r, in.Email); !allowed {
		return apierr.TooMany(reason)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.Authenticate(ctx, in.Email, in.Password)
	if err == userstore.ErrInvalidCredentials {
		return apierr.Unauthorized("invalid credentials")
	}
	if err != nil {
		return err
	}

	h.Limits.ResetEmail(in.Email)
	return h.respondWithToken(w, http.StatusOK, u)
}

// ServeMe handles GET /auth/me, returning the account behind the token.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) error {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		return apierr.Unauthorized("not authorized to access this route")
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByID(ctx, userID)
	if err == mongo.ErrNoDocuments {
		// Token is valid but the account is gone.
		return apierr.Unauthorized("not authorized to access this route")
	}
	if err != nil {
		return err
	}

	apierr.OK(w, http.StatusOK, u)
	return nil
}

func (h *Handler) respondWithToken(w http.ResponseWriter, status int, u models.User) error {
	token, expiresAt, err := h.Tokens.IssueToken(auth.TokenUser{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	})
	if err != nil {
		return apierr.Internal("could not issue token", err)
	}

	apierr.OK(w, status, tokenResponse{Token: token, ExpiresAt: expiresAt})
	return nil
}
