package ports

import "context"

// ImageWriter persists an encoded image.
type ImageWriter interface {
	// Write stores data at path, replacing any existing file.
	// It returns only after the data is durable or the write has failed.
	// Errors wrap domain.ErrWrite.
	Write(ctx context.Context, path string, data []byte) error
}
