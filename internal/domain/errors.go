package domain

import "errors"

// Domain errors represent failure conditions of a card run.
// Every error returned by the pipeline wraps one of these and can be checked with errors.Is.
var (
	// ErrInvalidInput is returned when request parameters fail validation.
	ErrInvalidInput = errors.New("catcard: invalid input")

	// ErrInvalidURL is returned when the service host or a derived path cannot form a URL.
	ErrInvalidURL = errors.New("catcard: invalid url")

	// ErrFetch is returned when an image download fails at the transport or HTTP level.
	ErrFetch = errors.New("catcard: fetch failed")

	// ErrDecode is returned when a fetched payload is not a supported raster format.
	ErrDecode = errors.New("catcard: decode failed")

	// ErrComposite is returned when images cannot be merged onto the canvas.
	ErrComposite = errors.New("catcard: composite failed")

	// ErrWrite is returned when the output file cannot be persisted.
	ErrWrite = errors.New("catcard: write failed")
)
