package ports

import "context"

// ImageFetcher downloads the raw bytes of a remote image.
type ImageFetcher interface {
	// Fetch performs one GET against url and returns the response body.
	// Errors wrap domain.ErrFetch. Implementations must not cache or retry.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
