// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/frameseq/pkg/manifest"
	"github.com/user/frameseq/pkg/orchestrator"
)

// Config represents the full configuration for frameseq.
type Config struct {
	// Listing
	Extensions []string `yaml:"extensions"`

	// Planning
	OutputDir   string `yaml:"output_dir"`
	ImageFormat string `yaml:"image_format"`
	Sequence    string `yaml:"sequence"`

	// Manifest
	ManifestFormat string `yaml:"manifest_format"`
	ManifestPath   string `yaml:"manifest"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		ManifestFormat: "text",
		LogLevel:       "info",
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
// Unknown keys are rejected so typos do not go unnoticed.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks values that can be checked without touching the disk.
func (c Config) Validate() error {
	if _, err := manifest.FormatterFor(c.ManifestFormat); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "quiet":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config for dir.
func (c Config) ToOrchestratorConfig(dir string) orchestrator.Config {
	return orchestrator.Config{
		Dir:        dir,
		Extensions: c.Extensions,
		OutputDir:  c.OutputDir,
		Format:     c.ImageFormat,
		Sequence:   c.Sequence,
	}
}
