package cliconfig

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/catcard/internal/domain"
)

const (
	// DefaultServiceURL is the image service the card images are requested from.
	DefaultServiceURL = "https://cataas.com"

	// DefaultOutput is the card file written to the working directory.
	DefaultOutput = "cat-card.jpg"
)

// Config holds CLI configuration for catcard.
type Config struct {
	Greeting string
	Who      string
	Width    int
	Height   int
	Color    string
	Size     int

	ServiceURL  string
	Output      string
	Quality     int
	HTTPTimeout time.Duration

	LogLevel string
	LogFile  string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Greeting:    "Hello",
		Who:         "You",
		Width:       400,
		Height:      500,
		Color:       "Pink",
		Size:        100,
		ServiceURL:  DefaultServiceURL,
		Output:      DefaultOutput,
		Quality:     90,
		HTTPTimeout: 30 * time.Second,
		LogLevel:    "info",
	}
}

// Request returns the card parameters of the configuration.
func (c Config) Request() domain.CardRequest {
	return domain.CardRequest{
		Greeting: c.Greeting,
		Who:      c.Who,
		Width:    c.Width,
		Height:   c.Height,
		Color:    c.Color,
		Size:     c.Size,
	}
}

// Validate checks the configuration for errors and normalizes derived values.
// All errors wrap domain.ErrInvalidInput.
func (c *Config) Validate() error {
	if err := c.Request().Validate(); err != nil {
		return err
	}

	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if _, err := domain.FormatFromPath(c.Output); err != nil {
		return err
	}

	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("%w: quality must be between 1 and 100, got %d", domain.ErrInvalidInput, c.Quality)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", domain.ErrInvalidInput)
	}

	if c.ServiceURL == "" {
		c.ServiceURL = DefaultServiceURL
	}
	c.ServiceURL = strings.TrimRight(c.ServiceURL, "/")
	u, err := url.Parse(c.ServiceURL)
	if err != nil {
		return fmt.Errorf("%w: service url: %w", domain.ErrInvalidInput, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: service url %q must be an absolute http(s) url", domain.ErrInvalidInput, c.ServiceURL)
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", domain.ErrInvalidInput, err)
	}

	return nil
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if present (non-zero) and flag not changed.
// Negative values are kept so Validate can reject them.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%w: parse %s: %w", domain.ErrInvalidInput, flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a string to int and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%w: parse %s: %w", domain.ErrInvalidInput, flag, err)
	}
	*dst = i
	return nil
}
