// internal/app/features/courses/handler.go
package courses

import (
	bootcampstore "github.com/dalemusser/campdir/internal/app/store/bootcamps"
	coursestore "github.com/dalemusser/campdir/internal/app/store/courses"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Courses. Mutation authority
// follows the owning bootcamp, so the bootcamp store rides along.
type Handler struct {
	Courses   *coursestore.Store
	Bootcamps *bootcampstore.Store
	Log       *zap.Logger
}

// NewHandler constructs a Courses handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Courses:   coursestore.New(db),
		Bootcamps: bootcampstore.New(db),
		Log:       logger,
	}
}
