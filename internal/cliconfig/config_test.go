package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/catcard/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Greeting != "Hello" {
		t.Errorf("Greeting = %v, want Hello", cfg.Greeting)
	}
	if cfg.Who != "You" {
		t.Errorf("Who = %v, want You", cfg.Who)
	}
	if cfg.Width != 400 || cfg.Height != 500 {
		t.Errorf("size = %dx%d, want 400x500", cfg.Width, cfg.Height)
	}
	if cfg.Color != "Pink" {
		t.Errorf("Color = %v, want Pink", cfg.Color)
	}
	if cfg.Size != 100 {
		t.Errorf("Size = %v, want 100", cfg.Size)
	}
	if cfg.ServiceURL != DefaultServiceURL {
		t.Errorf("ServiceURL = %v, want %v", cfg.ServiceURL, DefaultServiceURL)
	}
	if cfg.Output != "cat-card.jpg" {
		t.Errorf("Output = %v, want cat-card.jpg", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	layout := domain.SideBySide(cfg.Width, cfg.Height, domain.FormatJPEG, cfg.Quality)
	if layout.Canvas.Width != 800 || layout.Canvas.Height != 500 {
		t.Errorf("default canvas = %dx%d, want 800x500", layout.Canvas.Width, layout.Canvas.Height)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -5 }},
		{"huge width", func(c *Config) { c.Width = domain.MaxDimension + 1 }},
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"empty greeting", func(c *Config) { c.Greeting = "" }},
		{"empty who", func(c *Config) { c.Who = "" }},
		{"empty color", func(c *Config) { c.Color = "" }},
		{"quality too high", func(c *Config) { c.Quality = 101 }},
		{"quality zero", func(c *Config) { c.Quality = 0 }},
		{"negative timeout", func(c *Config) { c.HTTPTimeout = -time.Second }},
		{"unsupported output", func(c *Config) { c.Output = "card.bmp" }},
		{"relative service url", func(c *Config) { c.ServiceURL = "cataas.com" }},
		{"ftp service url", func(c *Config) { c.ServiceURL = "ftp://cataas.com" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("Validate() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestConfig_Validate_Derivations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ServiceURL = "http://localhost:8080/"
	cfg.Output = ""
	cfg.LogLevel = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.ServiceURL != "http://localhost:8080" {
		t.Errorf("ServiceURL = %v, want trailing slash trimmed", cfg.ServiceURL)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %v, want %v", cfg.Output, DefaultOutput)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}

	cfg.ServiceURL = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.ServiceURL != DefaultServiceURL {
		t.Errorf("ServiceURL = %v, want %v", cfg.ServiceURL, DefaultServiceURL)
	}
}

func TestConfig_Request(t *testing.T) {
	cfg := Config{Greeting: "Hi", Who: "Bob", Width: 200, Height: 300, Color: "Blue", Size: 50}
	want := domain.CardRequest{Greeting: "Hi", Who: "Bob", Width: 200, Height: 300, Color: "Blue", Size: 50}
	if got := cfg.Request(); got != want {
		t.Errorf("Request() = %+v, want %+v", got, want)
	}
}
