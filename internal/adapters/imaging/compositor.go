// Package imaging composes card images with github.com/disintegration/imaging.
package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/bft-labs/catcard/internal/domain"
	"github.com/bft-labs/catcard/internal/ports"
)

// DefaultQuality is the JPEG quality used when the canvas does not set one.
const DefaultQuality = 90

// background fills canvas pixels no source image covers.
var background color.Color = color.NRGBA{R: 0, G: 0, B: 0, A: 0}

// Compositor implements ports.Compositor.
type Compositor struct {
	logger ports.Logger
}

// NewCompositor creates a new Compositor.
func NewCompositor(logger ports.Logger) *Compositor {
	return &Compositor{logger: logger}
}

// Composite decodes payloads in order, pastes each at its placement without
// scaling and encodes the canvas. Pixels that fall outside the canvas are dropped.
func (c *Compositor) Composite(ctx context.Context, payloads [][]byte, layout domain.Layout) ([]byte, error) {
	if err := layout.Check(len(payloads)); err != nil {
		return nil, err
	}

	format, opts, err := encoding(layout.Canvas)
	if err != nil {
		return nil, err
	}

	canvas := imaging.New(layout.Canvas.Width, layout.Canvas.Height, background)
	for i, payload := range payloads {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrComposite, err)
		}

		src, err := imaging.Decode(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("%w: %w: image %d: %w", domain.ErrComposite, domain.ErrDecode, i, err)
		}

		p := layout.Placements[i]
		canvas = imaging.Paste(canvas, src, image.Pt(p.X, p.Y))

		c.logger.Debug("image placed",
			ports.Int("index", i),
			ports.Int("x", p.X),
			ports.Int("y", p.Y),
			ports.Int("width", src.Bounds().Dx()),
			ports.Int("height", src.Bounds().Dy()))
	}

	var out bytes.Buffer
	if err := imaging.Encode(&out, canvas, format, opts...); err != nil {
		return nil, fmt.Errorf("%w: encode %s: %w", domain.ErrComposite, layout.Canvas.Format, err)
	}
	return out.Bytes(), nil
}

func encoding(canvas domain.Canvas) (imaging.Format, []imaging.EncodeOption, error) {
	switch canvas.Format {
	case domain.FormatJPEG, "":
		q := canvas.Quality
		if q <= 0 {
			q = DefaultQuality
		}
		return imaging.JPEG, []imaging.EncodeOption{imaging.JPEGQuality(q)}, nil
	case domain.FormatPNG:
		return imaging.PNG, nil, nil
	default:
		return 0, nil, fmt.Errorf("%w: unsupported output format %q", domain.ErrComposite, canvas.Format)
	}
}
