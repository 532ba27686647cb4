// Package config holds the arraydemo settings loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marcodamonte/staticarrays/internal/logging"
)

// DefaultCapacity matches the five-slot array used throughout the walkthrough.
const DefaultCapacity = 5

// Config is the top-level arraydemo configuration.
type Config struct {
	// Capacity is used by scenarios that do not set their own.
	Capacity int `yaml:"capacity"`

	Logging LoggingConfig `yaml:"logging"`
	Render  RenderConfig  `yaml:"render"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string         `yaml:"level"`  // debug, info, warn, error
	Format logging.Format `yaml:"format"` // console, json
}

// RenderConfig configures how arrays are drawn.
type RenderConfig struct {
	Plain       bool `yaml:"plain"`        // no colors or borders
	ShowIndices bool `yaml:"show_indices"` // print slot numbers above the boxes
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Capacity: DefaultCapacity,
		Logging:  LoggingConfig{Level: "info", Format: logging.FormatConsole},
		Render:   RenderConfig{ShowIndices: true},
	}
}

func (c *Config) withDefaults() Config {
	out := *c
	def := Default()
	if out.Capacity <= 0 {
		out.Capacity = def.Capacity
	}
	if out.Logging.Level == "" {
		out.Logging.Level = def.Logging.Level
	}
	if out.Logging.Format == "" {
		out.Logging.Format = def.Logging.Format
	}
	return out
}

// Load reads a YAML file. Missing fields fall back to Default; an empty path
// returns Default without touching the filesystem.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.withDefaults(), nil
}
