package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/catcard/internal/domain"
)

const imageFileMode = 0o644

// ImageFileWriter implements ports.ImageWriter on the local file system.
type ImageFileWriter struct{}

// NewImageFileWriter creates a new ImageFileWriter.
func NewImageFileWriter() *ImageFileWriter {
	return &ImageFileWriter{}
}

// Write persists data at path atomically: the bytes go to a temp file in the
// same directory, which is synced, closed and renamed over path. On any
// failure the temp file is removed and the previous file at path is untouched.
func (w *ImageFileWriter) Write(ctx context.Context, path string, data []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWrite, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir %s: %w", domain.ErrWrite, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", domain.ErrWrite, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("%w: write %s: %w", domain.ErrWrite, tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync %s: %w", domain.ErrWrite, tmpName, err)
	}
	if err = tmp.Chmod(imageFileMode); err != nil {
		return fmt.Errorf("%w: chmod %s: %w", domain.ErrWrite, tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", domain.ErrWrite, tmpName, err)
	}

	// Atomic rename
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: rename to %s: %w", domain.ErrWrite, path, err)
	}
	return nil
}
