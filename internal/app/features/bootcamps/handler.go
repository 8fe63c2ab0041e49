// internal/app/features/bootcamps/handler.go
package bootcamps

import (
	bootcampstore "github.com/dalemusser/campdir/internal/app/store/bootcamps"
	coursestore "github.com/dalemusser/campdir/internal/app/store/courses"
	reviewstore "github.com/dalemusser/campdir/internal/app/store/reviews"
	"github.com/dalemusser/campdir/internal/app/system/filestore"
	"github.com/dalemusser/campdir/internal/app/system/geocode"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Bootcamps.
type Handler struct {
	Bootcamps *bootcampstore.Store
	Courses   *coursestore.Store
	Reviews   *reviewstore.Store
	Geocoder  *geocode.Client
	Files     filestore.Store
	MaxUpload int64
	Log       *zap.Logger
}

// NewHandler constructs a Bootcamps handler bound to its stores, the
// geocoding client, and the photo storage backend.
func NewHandler(db *mongo.Database, geocoder *geocode.Client, files filestore.Store, maxUpload int64, logger *zap.Logger) *Handler {
	return &Handler{
		Bootcamps: bootcampstore.New(db),
		Courses:   coursestore.New(db),
		Reviews:   reviewstore.New(db),
		Geocoder:  geocoder,
		Files:     files,
		MaxUpload: maxUpload,
		Log:       logger,
	}
}
