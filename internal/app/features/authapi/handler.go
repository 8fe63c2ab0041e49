// internal/app/features/authapi/handler.go
package authapi

import (
	userstore "github.com/dalemusser/campdir/internal/app/store/users"
	"github.com/dalemusser/campdir/internal/app/system/auth"
	"github.com/dalemusser/campdir/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for account registration and
// token issuance. Login attempts are rate limited per IP and per email.
type Handler struct {
	Users  *userstore.Store
	Tokens *auth.Manager
	Limits *ratelimit.LoginLimiter
	Log    *zap.Logger
}

// NewHandler constructs an auth handler bound to the user store and the
// token manager.
func NewHandler(db *mongo.Database, tokens *auth.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		Tokens: tokens,
		Limits: ratelimit.NewLoginLimiter(),
		Log:    logger,
	}
}
