// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration; core handles HTTP ports,
// TLS, logging level, and the like.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Token authentication
	JWTSecret string        // HMAC signing secret for bearer tokens
	JWTExpiry time.Duration // Token lifetime (e.g., 24h)

	// Geocoding provider (MapQuest-style API)
	GeocoderURL string // Provider endpoint
	GeocoderKey string // Provider API key

	// Photo uploads
	FileUploadPath string // Directory for uploaded bootcamp photos
	MaxFileUpload  int64  // Maximum upload size in bytes
}
