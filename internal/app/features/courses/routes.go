// internal/app/features/courses/routes.go
package courses

import (
	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/app/system/auth"
	"github.com/dalemusser/campdir/internal/app/system/listquery"
	"github.com/dalemusser/campdir/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the top-level Course routes (typically "/api/v1/courses").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.With(listquery.Middleware(h.Log, queryFields, h.RunListQuery)).
		Get("/", apierr.Wrap(h.Log, h.ServeList))
	r.Get("/{id}", apierr.Wrap(h.Log, h.ServeGet))

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(models.RolePublisher, models.RoleAdmin))

		pr.Put("/{id}", apierr.Wrap(h.Log, h.HandleUpdate))
		pr.Delete("/{id}", apierr.Wrap(h.Log, h.HandleDelete))
	})

	return r
}

// SubRoutes mounts the bootcamp-scoped Course routes
// (typically "/api/v1/bootcamps/{bootcampID}/courses").
func SubRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", apierr.Wrap(h.Log, h.ServeListForBootcamp))

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(models.RolePublisher, models.RoleAdmin))

		pr.Post("/", apierr.Wrap(h.Log, h.HandleCreate))
	})

	return r
}
