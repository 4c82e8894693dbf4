package ports

import (
	"context"

	"github.com/bft-labs/catcard/internal/domain"
)

// Compositor places encoded source images onto a new canvas and encodes the result.
type Compositor interface {
	// Composite decodes every payload, pastes payload i at layout.Placements[i]
	// and returns the canvas encoded in layout.Canvas.Format.
	// Returns an error wrapping domain.ErrComposite when the number of payloads
	// and placements differ or when a payload cannot be decoded.
	Composite(ctx context.Context, payloads [][]byte, layout domain.Layout) ([]byte, error)
}
