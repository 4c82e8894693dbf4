// Package domain contains the core value objects for catcard.
//
// This package has no dependencies on infrastructure concerns (HTTP, file
// system, logging, image codecs) and holds only the rules of the card layout.
//
// # Entities
//
//   - [CardRequest]: the caller supplied parameters for one run
//   - [Placement]: where a source image's top-left corner lands on the canvas
//   - [Canvas]: destination dimensions and output format
//   - [Layout]: the placements and canvas handed to a compositor
//
// Values are immutable once constructed; the pipeline only reads them.
package domain
