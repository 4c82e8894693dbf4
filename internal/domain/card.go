package domain

import "fmt"

// MaxDimension is the largest accepted per-image width or height.
const MaxDimension = 10000

// CardRequest holds the parameters of a single card run.
type CardRequest struct {
	// Greeting is the caption rendered on the left image.
	Greeting string

	// Who is the caption rendered on the right image.
	Who string

	// Width is the per-image width in pixels.
	Width int

	// Height is the per-image height in pixels.
	Height int

	// Color is the background color requested from the image service.
	Color string

	// Size is the caption font size requested from the image service.
	Size int
}

// Validate checks that every field is usable for URL construction and canvas allocation.
func (r CardRequest) Validate() error {
	if r.Greeting == "" {
		return fmt.Errorf("%w: greeting must not be empty", ErrInvalidInput)
	}
	if r.Who == "" {
		return fmt.Errorf("%w: who must not be empty", ErrInvalidInput)
	}
	if r.Width <= 0 || r.Width > MaxDimension {
		return fmt.Errorf("%w: width must be between 1 and %d, got %d", ErrInvalidInput, MaxDimension, r.Width)
	}
	if r.Height <= 0 || r.Height > MaxDimension {
		return fmt.Errorf("%w: height must be between 1 and %d, got %d", ErrInvalidInput, MaxDimension, r.Height)
	}
	if r.Color == "" {
		return fmt.Errorf("%w: color must not be empty", ErrInvalidInput)
	}
	if r.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidInput, r.Size)
	}
	return nil
}

// Captions returns the caption texts in placement order.
func (r CardRequest) Captions() []string {
	return []string{r.Greeting, r.Who}
}

