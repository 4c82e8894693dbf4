package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/catcard/internal/domain"
)

// FileConfig mirrors Config but uses strings for durations to make TOML and YAML friendly.
type FileConfig struct {
	Greeting    string `toml:"greeting" yaml:"greeting"`
	Who         string `toml:"who" yaml:"who"`
	Width       int    `toml:"width" yaml:"width"`
	Height      int    `toml:"height" yaml:"height"`
	Color       string `toml:"color" yaml:"color"`
	Size        int    `toml:"size" yaml:"size"`
	ServiceURL  string `toml:"service_url" yaml:"service_url"`
	Output      string `toml:"output" yaml:"output"`
	Quality     int    `toml:"quality" yaml:"quality"`
	HTTPTimeout string `toml:"http_timeout" yaml:"http_timeout"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFile     string `toml:"log_file" yaml:"log_file"`
}

// LoadFileConfig reads a config file. Files ending in .yaml or .yml are
// decoded as YAML, everything else as TOML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &fc)
	default:
		err = toml.Unmarshal(b, &fc)
	}
	if err != nil {
		return fc, fmt.Errorf("%w: decode %s: %w", domain.ErrInvalidInput, path, err)
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.catcard/config.toml, or "" when the home
// directory cannot be determined.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".catcard", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("greeting", fc.Greeting, &cfg.Greeting)
	s.setString("who", fc.Who, &cfg.Who)
	s.setString("color", fc.Color, &cfg.Color)
	s.setString("service-url", fc.ServiceURL, &cfg.ServiceURL)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("log-file", fc.LogFile, &cfg.LogFile)

	s.setInt("width", fc.Width, &cfg.Width)
	s.setInt("height", fc.Height, &cfg.Height)
	s.setInt("size", fc.Size, &cfg.Size)
	s.setInt("quality", fc.Quality, &cfg.Quality)

	return s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
