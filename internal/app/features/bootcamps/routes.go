// internal/app/features/bootcamps/routes.go
package bootcamps

import (
	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/app/system/auth"
	"github.com/dalemusser/campdir/internal/app/system/listquery"
	"github.com/dalemusser/campdir/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all Bootcamp routes under the base path (typically
// "/api/v1/bootcamps" from bootstrap). Course and review sub-resources
// hang off /{bootcampID} here so the whole subtree shares one URL
// parameter name.
func Routes(h *Handler, courseSub, reviewSub chi.Router) chi.Router {
	r := chi.NewRouter()

	// Public reads. The list endpoint runs behind the query middleware,
	// which executes the filtered/sorted/paginated query and stashes the
	// finished envelope in the request context.
	r.With(listquery.Middleware(h.Log, queryFields, h.RunListQuery)).
		Get("/", apierr.Wrap(h.Log, h.ServeList))
	r.Get("/radius/{zipcode}/{distance}", apierr.Wrap(h.Log, h.ServeRadius))

	// Create: publishers and admins only.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(models.RolePublisher, models.RoleAdmin))

		pr.Post("/", apierr.Wrap(h.Log, h.HandleCreate))
	})

	r.Route("/{bootcampID}", func(br chi.Router) {
		br.Get("/", apierr.Wrap(h.Log, h.ServeGet))

		br.Group(func(pr chi.Router) {
			pr.Use(auth.RequireSignedIn)
			pr.Use(auth.RequireRole(models.RolePublisher, models.RoleAdmin))

			pr.Put("/", apierr.Wrap(h.Log, h.HandleUpdate))
			pr.Delete("/", apierr.Wrap(h.Log, h.HandleDelete))
			pr.Put("/photo", apierr.Wrap(h.Log, h.HandlePhoto))
		})

		br.Mount("/courses", courseSub)
		br.Mount("/reviews", reviewSub)
	})

	return r
}
