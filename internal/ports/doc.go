// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// # Port Interfaces
//
//   - [ImageFetcher]: Downloads encoded image bytes from the image service
//   - [Compositor]: Merges decoded images onto a canvas and encodes the result
//   - [ImageWriter]: Persists the encoded card
//   - [Logger]: Structured logging abstraction
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with net/http,
// the imaging library, the file system and zerolog.
package ports
