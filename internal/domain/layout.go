package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the encoding of the composed output image.
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
)

// FormatFromPath infers the output format from a file extension.
// Returns ErrInvalidInput for extensions other than .jpg, .jpeg and .png.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("%w: unsupported output extension %q", ErrInvalidInput, filepath.Ext(path))
	}
}

// Placement is the offset of a source image's top-left corner on the canvas.
type Placement struct {
	X int
	Y int
}

// Canvas describes the destination image.
type Canvas struct {
	Width  int
	Height int
	Format Format

	// Quality is the JPEG quality (1-100). Ignored for PNG.
	Quality int
}

// Layout pairs one placement per source image with the destination canvas.
type Layout struct {
	Placements []Placement
	Canvas     Canvas
}

// SideBySide returns the two-slot layout of a card: the first image at the
// origin and the second one image-width to the right, on a canvas exactly
// twice the requested width.
func SideBySide(width, height int, format Format, quality int) Layout {
	return Layout{
		Placements: []Placement{
			{X: 0, Y: 0},
			{X: width, Y: 0},
		},
		Canvas: Canvas{
			Width:   width * 2,
			Height:  height,
			Format:  format,
			Quality: quality,
		},
	}
}

// Check verifies that the layout has exactly one placement per image and a usable canvas.
func (l Layout) Check(images int) error {
	if len(l.Placements) != images {
		return fmt.Errorf("%w: %d images but %d placements", ErrComposite, images, len(l.Placements))
	}
	if l.Canvas.Width <= 0 || l.Canvas.Height <= 0 {
		return fmt.Errorf("%w: invalid canvas %dx%d", ErrComposite, l.Canvas.Width, l.Canvas.Height)
	}
	return nil
}
