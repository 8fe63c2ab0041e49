// internal/app/features/authapi/routes.go
package authapi

import (
	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the auth routes (typically "/api/v1/auth").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", apierr.Wrap(h.Log, h.HandleRegister))
	r.Post("/login", apierr.Wrap(h.Log, h.HandleLogin))

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/me", apierr.Wrap(h.Log, h.ServeMe))
	})

	return r
}
