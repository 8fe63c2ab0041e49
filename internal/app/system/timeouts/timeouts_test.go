package timeouts_test

import (
	"testing"
	"time"

	"github.com/dalemusser/campdir/internal/app/system/timeouts"
)

func TestDefaults(t *testing.T) {
	timeouts.Reset()
	t.Cleanup(timeouts.Reset)

	if timeouts.Ping() != timeouts.DefaultPing {
		t.Errorf("Ping: got %v", timeouts.Ping())
	}
	if timeouts.Short() != timeouts.DefaultShort {
		t.Errorf("Short: got %v", timeouts.Short())
	}
	if timeouts.Batch() != timeouts.DefaultBatch {
		t.Errorf("Batch: got %v", timeouts.Batch())
	}
}

func TestConfigure_ZeroValuesKeepCurrent(t *testing.T) {
	timeouts.Reset()
	t.Cleanup(timeouts.Reset)

	timeouts.Configure(timeouts.Config{Medium: 42 * time.Second})

	if timeouts.Medium() != 42*time.Second {
		t.Errorf("Medium: got %v, want 42s", timeouts.Medium())
	}
	if timeouts.Short() != timeouts.DefaultShort {
		t.Errorf("Short should be untouched, got %v", timeouts.Short())
	}
}

func TestConfigureFromEnv(t *testing.T) {
	timeouts.Reset()
	t.Cleanup(timeouts.Reset)

	t.Setenv("CAMPDIR_TIMEOUT_SHORT", "7s")
	t.Setenv("CAMPDIR_TIMEOUT_LONG", "not-a-duration")

	if n := timeouts.ConfigureFromEnv(); n != 1 {
		t.Errorf("configured: got %d, want 1", n)
	}
	if timeouts.Short() != 7*time.Second {
		t.Errorf("Short: got %v, want 7s", timeouts.Short())
	}
	if timeouts.Long() != timeouts.DefaultLong {
		t.Errorf("unparseable value should keep the default, got %v", timeouts.Long())
	}
}

func TestCurrent(t *testing.T) {
	timeouts.Reset()
	t.Cleanup(timeouts.Reset)

	timeouts.Configure(timeouts.Config{Ping: time.Second})
	cur := timeouts.Current()
	if cur.Ping != time.Second || cur.Medium != timeouts.DefaultMedium {
		t.Errorf("Current: %+v", cur)
	}
}
