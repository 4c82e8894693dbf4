package fs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/catcard/internal/domain"
)

func TestImageFileWriter_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cat-card.jpg")
	w := NewImageFileWriter()

	if err := w.Write(context.Background(), path, []byte("first")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Write(context.Background(), path, []byte("second")); err != nil {
		t.Fatalf("Write() overwrite error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Equal(got, []byte("second")) {
		t.Errorf("content = %q, want %q", got, "second")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != imageFileMode {
		t.Errorf("mode = %v, want %v", info.Mode().Perm(), os.FileMode(imageFileMode))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the output file, found %d entries", len(entries))
	}
}

func TestImageFileWriter_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards", "today", "cat-card.png")

	if err := NewImageFileWriter().Write(context.Background(), path, []byte("png")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestImageFileWriter_Errors(t *testing.T) {
	t.Run("target is a directory", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "cat-card.jpg")
		if err := os.Mkdir(target, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		err := NewImageFileWriter().Write(context.Background(), target, []byte("data"))
		if !errors.Is(err, domain.ErrWrite) {
			t.Fatalf("Write() error = %v, want ErrWrite", err)
		}

		entries, _ := os.ReadDir(dir)
		if len(entries) != 1 {
			t.Errorf("temp file left behind: %d entries", len(entries))
		}
	})

	t.Run("parent is a file", func(t *testing.T) {
		parent := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(parent, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		err := NewImageFileWriter().Write(context.Background(), filepath.Join(parent, "cat-card.jpg"), []byte("data"))
		if !errors.Is(err, domain.ErrWrite) {
			t.Errorf("Write() error = %v, want ErrWrite", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "cat-card.jpg")
		err := NewImageFileWriter().Write(ctx, path, []byte("data"))
		if !errors.Is(err, domain.ErrWrite) {
			t.Errorf("Write() error = %v, want ErrWrite", err)
		}
		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			t.Errorf("output should not exist, stat err = %v", statErr)
		}
	})
}
