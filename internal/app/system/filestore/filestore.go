// Package filestore stores uploaded files under caller-chosen names. The
// interface mirrors the Put/Delete surface handlers code against elsewhere;
// Local is the disk implementation used for bootcamp photos, where the name
// is deterministic (photo_<id><ext>) and a re-upload overwrites in place.
package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store is the storage surface handlers depend on.
type Store interface {
	// Put writes the reader's contents to name, replacing any existing file.
	Put(ctx context.Context, name string, r io.Reader) error
	// Delete removes name. Deleting a missing file is not an error.
	Delete(ctx context.Context, name string) error
}

// Local stores files in a single directory on disk.
type Local struct {
	dir string
}

// NewLocal ensures dir exists and returns a Local store rooted there.
func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		return nil, fmt.Errorf("filestore: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create %s: %w", dir, err)
	}
	return &Local{dir: dir}, nil
}

// Dir returns the storage directory.
func (l *Local) Dir() string { return l.dir }

// Put writes to a temp file in the same directory, then renames over the
// target so a crash mid-write never leaves a truncated photo visible.
func (l *Local) Put(ctx context.Context, name string, r io.Reader) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(l.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("filestore: temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("filestore: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("filestore: close %s: %w", name, err)
	}

	if err := os.Rename(tmpName, filepath.Join(l.dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("filestore: move %s: %w", name, err)
	}
	return nil
}

// Delete removes the named file; a missing file is treated as already deleted.
func (l *Local) Delete(ctx context.Context, name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(l.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("filestore: delete %s: %w", name, err)
	}
	return nil
}

// validName rejects empty names and anything that escapes the directory.
func validName(name string) error {
	if name == "" {
		return fmt.Errorf("filestore: empty name")
	}
	if filepath.Base(name) != name {
		return fmt.Errorf("filestore: name %q must not contain path separators", name)
	}
	return nil
}
