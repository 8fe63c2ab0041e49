// internal/app/features/reviews/handler.go
package reviews

import (
	bootcampstore "github.com/dalemusser/campdir/internal/app/store/bootcamps"
	reviewstore "github.com/dalemusser/campdir/internal/app/store/reviews"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Reviews.
type Handler struct {
	Reviews   *reviewstore.Store
	Bootcamps *bootcampstore.Store
	Log       *zap.Logger
}

// NewHandler constructs a Reviews handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Reviews:   reviewstore.New(db),
		Bootcamps: bootcampstore.New(db),
		Log:       logger,
	}
}
