// Package timeouts centralizes the context deadlines handlers put on
// database and geocoder calls.
//
// Every store or provider call in a handler runs under context.WithTimeout
// with one of these values, so a slow Mongo query or an unresponsive
// geocoding provider cannot pin a request goroutine.
//
// Picking a bucket:
//   - Ping: the health endpoint's connectivity probe
//   - Short: single-document reads (bootcamp/course/review by ID)
//   - Medium: list queries, geocoding, ordinary creates and updates
//   - Long: photo uploads and deletes that cascade across collections
//   - Batch: startup index builds and other bulk maintenance
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Defaults, used until Configure or ConfigureFromEnv overrides them.
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultLong   = 30 * time.Second
	DefaultBatch  = 60 * time.Second
)

var mu sync.RWMutex

var (
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	long   = DefaultLong
	batch  = DefaultBatch
)

// Ping returns the timeout for the health endpoint's database probe.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for single-document reads.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for list queries, geocoding, and ordinary
// writes.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Long returns the timeout for uploads and deletes that touch several
// collections.
func Long() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return long
}

// Batch returns the timeout for bulk maintenance such as startup index
// builds.
func Batch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return batch
}

// Config holds timeout overrides. Zero values leave the current setting
// alone.
type Config struct {
	Ping   time.Duration
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
	Batch  time.Duration
}

// Configure applies cfg. Call during startup, before handlers are built.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.Medium > 0 {
		medium = cfg.Medium
	}
	if cfg.Long > 0 {
		long = cfg.Long
	}
	if cfg.Batch > 0 {
		batch = cfg.Batch
	}
}

// Reset restores the defaults. Tests use it to undo Configure.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
	long = DefaultLong
	batch = DefaultBatch
}

// ConfigureFromEnv reads overrides from the environment and reports how
// many were applied. Each variable takes a Go duration string:
//
//	CAMPDIR_TIMEOUT_PING, CAMPDIR_TIMEOUT_SHORT, CAMPDIR_TIMEOUT_MEDIUM,
//	CAMPDIR_TIMEOUT_LONG, CAMPDIR_TIMEOUT_BATCH
//
// Unset or unparseable values keep the current setting.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	configured := 0

	apply := func(name string, dst *time.Duration) {
		v := os.Getenv(name)
		if v == "" {
			return
		}
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*dst = d
			configured++
		}
	}

	apply("CAMPDIR_TIMEOUT_PING", &ping)
	apply("CAMPDIR_TIMEOUT_SHORT", &short)
	apply("CAMPDIR_TIMEOUT_MEDIUM", &medium)
	apply("CAMPDIR_TIMEOUT_LONG", &long)
	apply("CAMPDIR_TIMEOUT_BATCH", &batch)

	return configured
}

// Current returns the active configuration, for startup logging.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{
		Ping:   ping,
		Short:  short,
		Medium: medium,
		Long:   long,
		Batch:  batch,
	}
}

// WithTimeout wraps context.WithTimeout and logs a warning when the
// returned cancel finds the deadline was exceeded. Use it where knowing
// that an operation timed out matters more than the request's outcome,
// such as the bootcamp cascade delete.
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
