// Package config loads the shared tool configuration for the rewind
// commands from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the file name the commands look for when no explicit
// config path is given.
const DefaultFile = ".rewind.yaml"

type Config struct {
	// MaxDepth bounds grammar recursion per parse. Zero disables the
	// bound, which on self-recursive input means parsing never returns.
	MaxDepth int    `yaml:"max_depth"`
	Format   string `yaml:"format"` // "text" or "json"
	Color    string `yaml:"color"`  // "auto", "always" or "never"
	Addr     string `yaml:"addr"`   // playground listen address
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		MaxDepth: 512,
		Format:   "text",
		Color:    "auto",
		Addr:     "localhost:8537",
	}
}

// Load reads path and unmarshals it over the defaults, so absent keys
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but treats a missing file as the
// default configuration instead of an error.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c Config) validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("format must be %q or %q, got %q", "text", "json", c.Format)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be %q, %q or %q, got %q", "auto", "always", "never", c.Color)
	}
	return nil
}
