// Package config provides configuration loading and management for postag.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/postag/tagger"
)

// Config represents the complete postag configuration
type Config struct {
	Ingest  IngestConfig  `yaml:"ingest"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// IngestConfig configures how tagger output is decoded
type IngestConfig struct {
	// Delimiter splits lines into columns: "tab" or "whitespace"
	Delimiter string `yaml:"delimiter"`
	// TagColumn is the zero-based tag column; -1 selects the last column
	TagColumn int `yaml:"tag_column"`
	// OnUnrecognized is "fail" or "skip"
	OnUnrecognized string `yaml:"on_unrecognized"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `yaml:"level"`
	// Format is text or json
	Format string `yaml:"format"`
}

// MetricsConfig configures the Prometheus endpoint
type MetricsConfig struct {
	// Addr is the listen address for /metrics (empty = disabled)
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Ingest: IngestConfig{
			Delimiter:      string(tagger.DelimiterTab),
			TagColumn:      1,
			OnUnrecognized: string(tagger.PolicyFail),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Addr: "", // Disabled
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if err := c.Ingest.Options().Validate(); err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json")
	}
	return nil
}

// Options converts the ingest settings into decoder options
func (c IngestConfig) Options() tagger.Options {
	return tagger.Options{
		Delimiter:      tagger.Delimiter(c.Delimiter),
		TagColumn:      c.TagColumn,
		OnUnrecognized: tagger.Policy(c.OnUnrecognized),
	}
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Ingest
	if other.Ingest.Delimiter != "" {
		c.Ingest.Delimiter = other.Ingest.Delimiter
	}
	if other.Ingest.TagColumn != 0 {
		c.Ingest.TagColumn = other.Ingest.TagColumn
	}
	if other.Ingest.OnUnrecognized != "" {
		c.Ingest.OnUnrecognized = other.Ingest.OnUnrecognized
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}

	// Metrics
	if other.Metrics.Addr != "" {
		c.Metrics.Addr = other.Metrics.Addr
	}
}
