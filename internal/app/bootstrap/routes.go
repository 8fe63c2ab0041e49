// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authfeature "github.com/dalemusser/campdir/internal/app/features/authapi"
	bootcampsfeature "github.com/dalemusser/campdir/internal/app/features/bootcamps"
	coursesfeature "github.com/dalemusser/campdir/internal/app/features/courses"
	healthfeature "github.com/dalemusser/campdir/internal/app/features/health"
	reviewsfeature "github.com/dalemusser/campdir/internal/app/features/reviews"
	"github.com/dalemusser/campdir/internal/app/system/auth"
	"github.com/dalemusser/campdir/internal/app/system/filestore"
	"github.com/dalemusser/campdir/internal/app/system/geocode"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. CampDir builds the token manager, the
// geocoding client, and the photo store here, then mounts the JSON API
// under /api/v1 with the health endpoint and uploaded photos alongside.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokenMgr, err := auth.NewManager(appCfg.JWTSecret, appCfg.JWTExpiry, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	photoStore, err := filestore.NewLocal(appCfg.FileUploadPath)
	if err != nil {
		logger.Error("photo store init failed", zap.Error(err))
		return nil, err
	}

	geocoder := geocode.New(appCfg.GeocoderURL, appCfg.GeocoderKey, logger)

	db := deps.CampDirMongoDatabase

	r := chi.NewRouter()

	// Global auth middleware: loads the token's user into context when a
	// valid Bearer token is present. Route groups decide whether one is
	// required.
	r.Use(tokenMgr.LoadTokenUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.CampDirMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Uploaded photos, served with pre-compressed file support
	r.Handle("/uploads/*", fileserver.Handler("/uploads", appCfg.FileUploadPath))

	bootcampsHandler := bootcampsfeature.NewHandler(db, geocoder, photoStore, appCfg.MaxFileUpload, logger)
	coursesHandler := coursesfeature.NewHandler(db, logger)
	reviewsHandler := reviewsfeature.NewHandler(db, logger)
	authHandler := authfeature.NewHandler(db, tokenMgr, logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", authfeature.Routes(authHandler))

		api.Mount("/bootcamps", bootcampsfeature.Routes(bootcampsHandler,
			coursesfeature.SubRoutes(coursesHandler),
			reviewsfeature.SubRoutes(reviewsHandler)))

		api.Mount("/courses", coursesfeature.Routes(coursesHandler))
		api.Mount("/reviews", reviewsfeature.Routes(reviewsHandler))
	})

	return r, nil
}
