// internal/app/features/reviews/routes.go
package reviews

import (
	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/app/system/auth"
	"github.com/dalemusser/campdir/internal/app/system/listquery"
	"github.com/dalemusser/campdir/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the top-level Review routes (typically "/api/v1/reviews").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.With(listquery.Middleware(h.Log, queryFields, h.RunListQuery)).
		Get("/", apierr.Wrap(h.Log, h.ServeList))
	r.Get("/{id}", apierr.Wrap(h.Log, h.ServeGet))

	// Review author or admin; the handlers check authorship.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Put("/{id}", apierr.Wrap(h.Log, h.HandleUpdate))
		pr.Delete("/{id}", apierr.Wrap(h.Log, h.HandleDelete))
	})

	return r
}

// SubRoutes mounts the bootcamp-scoped Review routes
// (typically "/api/v1/bootcamps/{bootcampID}/reviews").
func SubRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", apierr.Wrap(h.Log, h.ServeListForBootcamp))

	// Publishers review nothing; regular users and admins may.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(models.RoleUser, models.RoleAdmin))

		pr.Post("/", apierr.Wrap(h.Log, h.HandleCreate))
	})

	return r
}
