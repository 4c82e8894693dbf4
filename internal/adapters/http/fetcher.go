package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bft-labs/catcard/internal/domain"
	"github.com/bft-labs/catcard/internal/ports"
)

// MaxImageBytes caps the size of a downloaded image body.
const MaxImageBytes = 32 << 20 // 32MB

// ImageFetcher implements ports.ImageFetcher using HTTP GET.
type ImageFetcher struct {
	client ports.HTTPClient
	logger ports.Logger
}

// NewImageFetcher creates a new HTTP image fetcher.
func NewImageFetcher(client ports.HTTPClient, logger ports.Logger) *ImageFetcher {
	return &ImageFetcher{
		client: client,
		logger: logger,
	}
}

// Fetch downloads the body at url. Every call performs a new request.
func (f *ImageFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", domain.ErrFetch, err)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %w", domain.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: server returned %d: %s", domain.ErrFetch, resp.StatusCode, string(msg))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", domain.ErrFetch, err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", domain.ErrFetch)
	}
	if len(body) > MaxImageBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", domain.ErrFetch, MaxImageBytes)
	}

	f.logger.Debug("image fetched",
		ports.String("url", url),
		ports.Int("bytes", len(body)),
		ports.String("content_type", resp.Header.Get("Content-Type")))

	return body, nil
}
