package app

import (
	"context"
	"errors"
	"time"

	"github.com/bft-labs/catcard/internal/caturl"
	"github.com/bft-labs/catcard/internal/domain"
	"github.com/bft-labs/catcard/internal/ports"
)

// ErrAlreadyRan is returned when Run is called on a pipeline that has already run.
var ErrAlreadyRan = errors.New("catcard: pipeline already ran")

// PipelineConfig contains the inputs of a single card run.
type PipelineConfig struct {
	Request domain.CardRequest

	// ServiceURL is the image service origin.
	ServiceURL string

	// OutputPath is where the card is written. Its extension selects the format.
	OutputPath string

	// Quality is the JPEG quality. Zero selects the compositor default.
	Quality int

	// RunID correlates log lines of one run.
	RunID string
}

// Result describes a completed run.
type Result struct {
	RunID       string
	BaseURL     string
	CaptionURLs []string
	Canvas      domain.Canvas
	OutputPath  string
	Bytes       int
	Duration    time.Duration
}

// Pipeline sequences URL construction, fetch, composite and save.
// A Pipeline runs once; create a new one to repeat the sequence.
type Pipeline struct {
	config     PipelineConfig
	fetcher    ports.ImageFetcher
	compositor ports.Compositor
	writer     ports.ImageWriter
	logger     ports.Logger

	stage Stage
	ran   bool
}

// NewPipeline creates a pipeline with the given dependencies.
func NewPipeline(
	config PipelineConfig,
	fetcher ports.ImageFetcher,
	compositor ports.Compositor,
	writer ports.ImageWriter,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		config:     config,
		fetcher:    fetcher,
		compositor: compositor,
		writer:     writer,
		logger:     logger,
		stage:      StageStart,
	}
}

// Stage returns the last stage the pipeline reached.
func (p *Pipeline) Stage() Stage {
	return p.stage
}

// Run executes every stage in order. The first failure aborts the run and is
// returned as a *StageError; nothing is written unless every earlier stage succeeded.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	if p.ran {
		return Result{}, ErrAlreadyRan
	}
	p.ran = true

	started := time.Now()
	res := Result{RunID: p.config.RunID, OutputPath: p.config.OutputPath}

	// Start
	req := p.config.Request
	if err := req.Validate(); err != nil {
		return res, p.fail(StageStart, err)
	}
	format, err := domain.FormatFromPath(p.config.OutputPath)
	if err != nil {
		return res, p.fail(StageStart, err)
	}

	// URLBuilt
	base, err := caturl.Build(caturl.Spec{
		Host: p.config.ServiceURL,
		Path: caturl.BasePath,
		Params: []caturl.Param{
			{Key: "width", Value: req.Width},
			{Key: "height", Value: req.Height},
			{Key: "color", Value: req.Color},
			{Key: "size", Value: req.Size},
		},
	})
	if err != nil {
		return res, p.fail(StageURLBuilt, err)
	}
	res.BaseURL = base.String()
	if err := p.advance(StageURLBuilt, ports.String("url", res.BaseURL)); err != nil {
		return res, err
	}

	// URLsDerived
	for _, text := range req.Captions() {
		res.CaptionURLs = append(res.CaptionURLs, caturl.Caption(base, text))
	}
	if err := p.advance(StageURLsDerived, ports.Any("urls", res.CaptionURLs)); err != nil {
		return res, err
	}

	// ImagesFetched
	payloads := make([][]byte, 0, len(res.CaptionURLs))
	for i, u := range res.CaptionURLs {
		p.logger.Info("fetching image",
			ports.String("run_id", p.config.RunID),
			ports.Int("index", i),
			ports.String("url", u))

		body, err := p.fetcher.Fetch(ctx, u)
		if err != nil {
			return res, p.fail(StageImagesFetched, err)
		}
		payloads = append(payloads, body)
	}
	if err := p.advance(StageImagesFetched, ports.Int("images", len(payloads))); err != nil {
		return res, err
	}

	// Composited
	layout := domain.SideBySide(req.Width, req.Height, format, p.config.Quality)
	res.Canvas = layout.Canvas
	card, err := p.compositor.Composite(ctx, payloads, layout)
	if err != nil {
		return res, p.fail(StageComposited, err)
	}
	if err := p.advance(StageComposited,
		ports.Int("width", layout.Canvas.Width),
		ports.Int("height", layout.Canvas.Height),
		ports.String("format", string(format))); err != nil {
		return res, err
	}

	// Saved
	if err := p.writer.Write(ctx, p.config.OutputPath, card); err != nil {
		return res, p.fail(StageSaved, err)
	}
	res.Bytes = len(card)
	res.Duration = time.Since(started)
	if err := p.advance(StageSaved, ports.String("path", p.config.OutputPath)); err != nil {
		return res, err
	}

	return res, nil
}

// advance moves the pipeline to the next stage and logs the transition.
func (p *Pipeline) advance(to Stage, fields ...ports.Field) error {
	from := p.stage
	if err := from.next(to); err != nil {
		return err
	}
	p.stage = to

	fields = append([]ports.Field{
		ports.String("run_id", p.config.RunID),
		ports.String("from", from.String()),
		ports.String("to", to.String()),
	}, fields...)
	p.logger.Info("stage transition", fields...)
	return nil
}

// fail wraps err with the stage whose work failed.
func (p *Pipeline) fail(stage Stage, err error) error {
	p.logger.Debug("stage failed",
		ports.String("run_id", p.config.RunID),
		ports.String("stage", stage.String()),
		ports.String("reached", p.stage.String()),
		ports.Err(err))
	return &StageError{Stage: stage, Err: err}
}
