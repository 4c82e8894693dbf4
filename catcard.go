// Package catcard fetches two captioned cat images and composes them side by
// side into a single card image.
//
// Example usage:
//
//	cfg := catcard.DefaultConfig()
//	cfg.Greeting = "Hi"
//	cfg.Who = "Bob"
//	res, err := catcard.Generate(context.Background(), cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("saved", res.OutputPath)
package catcard

import (
	"context"
	"net/http"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/bft-labs/catcard/internal/adapters/fs"
	httpAdapter "github.com/bft-labs/catcard/internal/adapters/http"
	imagingAdapter "github.com/bft-labs/catcard/internal/adapters/imaging"
	logAdapter "github.com/bft-labs/catcard/internal/adapters/log"
	"github.com/bft-labs/catcard/internal/app"
	"github.com/bft-labs/catcard/internal/cliconfig"
	"github.com/bft-labs/catcard/internal/domain"
	"github.com/bft-labs/catcard/internal/ports"
)

// Config holds the parameters of a card run.
// Use DefaultConfig() to get a Config with the documented defaults.
type Config = cliconfig.Config

// Result describes a completed run.
type Result = app.Result

// StageError reports which pipeline stage failed.
type StageError = app.StageError

// Errors returned by Generate, for use with errors.Is.
var (
	ErrInvalidInput = domain.ErrInvalidInput
	ErrInvalidURL   = domain.ErrInvalidURL
	ErrFetch        = domain.ErrFetch
	ErrDecode       = domain.ErrDecode
	ErrComposite    = domain.ErrComposite
	ErrWrite        = domain.ErrWrite
)

// DefaultServiceURL is the default image service.
const DefaultServiceURL = cliconfig.DefaultServiceURL

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// HTTPClient executes image service requests. *http.Client satisfies it.
type HTTPClient = ports.HTTPClient

// Option configures optional behavior of Generate.
type Option func(*options)

type options struct {
	httpClient ports.HTTPClient
	logger     ports.Logger
	runID      string
}

// WithHTTPClient sets the client used to fetch images.
// If not provided, a client with cfg.HTTPTimeout is used.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger routes pipeline logs to logger.
// If not provided, nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logAdapter.NewZerologAdapter(logger)
	}
}

// WithRunID sets the correlation id attached to every log line.
// If not provided, a new xid is generated.
func WithRunID(id string) Option {
	return func(o *options) {
		o.runID = id
	}
}

// Generate validates cfg, then builds the image URLs, fetches both captioned
// images in order, composes them and writes the card to cfg.Output.
// It returns only after the card is on disk or a stage has failed.
func Generate(ctx context.Context, cfg Config, opts ...Option) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, &app.StageError{Stage: app.StageStart, Err: err}
	}

	o := options{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logAdapter.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.runID == "" {
		o.runID = xid.New().String()
	}

	pipeline := app.NewPipeline(
		app.PipelineConfig{
			Request:    cfg.Request(),
			ServiceURL: cfg.ServiceURL,
			OutputPath: cfg.Output,
			Quality:    cfg.Quality,
			RunID:      o.runID,
		},
		httpAdapter.NewImageFetcher(o.httpClient, o.logger),
		imagingAdapter.NewCompositor(o.logger),
		fs.NewImageFileWriter(),
		o.logger,
	)
	return pipeline.Run(ctx)
}
