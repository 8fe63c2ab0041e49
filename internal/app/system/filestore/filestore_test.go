package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dalemusser/campdir/internal/app/system/filestore"
)

func newLocal(t *testing.T) *filestore.Local {
	t.Helper()
	l, err := filestore.NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal failed: %v", err)
	}
	return l
}

func TestPutAndOverwrite(t *testing.T) {
	l := newLocal(t)
	ctx := context.Background()

	if err := l.Put(ctx, "photo_abc.jpg", strings.NewReader("first")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := l.Put(ctx, "photo_abc.jpg", strings.NewReader("second")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(l.Dir(), "photo_abc.jpg"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("content: got %q, want %q", got, "second")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(l.Dir())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 file in store, got %d", len(entries))
	}
}

func TestDelete(t *testing.T) {
	l := newLocal(t)
	ctx := context.Background()

	if err := l.Put(ctx, "photo_abc.jpg", strings.NewReader("x")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := l.Delete(ctx, "photo_abc.jpg"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(l.Dir(), "photo_abc.jpg")); !os.IsNotExist(err) {
		t.Error("file should be gone")
	}
}

func TestDelete_MissingIsNotAnError(t *testing.T) {
	l := newLocal(t)
	if err := l.Delete(context.Background(), "never-existed.jpg"); err != nil {
		t.Errorf("deleting a missing file should succeed, got %v", err)
	}
}

func TestPut_RejectsPathSeparators(t *testing.T) {
	l := newLocal(t)
	ctx := context.Background()

	for _, name := range []string{"", "../escape.jpg", "sub/dir.jpg"} {
		if err := l.Put(ctx, name, strings.NewReader("x")); err == nil {
			t.Errorf("Put(%q) should be rejected", name)
		}
	}
}

func TestNewLocal_EmptyDir(t *testing.T) {
	if _, err := filestore.NewLocal(""); err == nil {
		t.Error("expected error for empty directory")
	}
}
