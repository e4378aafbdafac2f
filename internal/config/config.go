// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds the engine settings that can come from a JSON file, the
// environment, or CLI flags. All fields are optional; missing values use
// defaults or must be provided via flags.
type Config struct {
	// UploadsDir is the root directory the document store serves resumes from.
	UploadsDir string `json:"uploads_dir,omitempty" validate:"omitempty,dir"`
	// Concurrency bounds concurrent rank calls during batch ranking.
	Concurrency int `json:"concurrency,omitempty" validate:"gte=0,lte=256"`
	// Verbose prints detailed score breakdowns to stdout.
	Verbose bool `json:"verbose,omitempty"`
}

// Environment variable names recognized by FromEnv.
const (
	envUploadsDir  = "ATS_UPLOADS_DIR"
	envConcurrency = "ATS_CONCURRENCY"
)

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables. main loads .env
// first, so a committed .env behaves the same as exported variables.
func FromEnv() (*Config, error) {
	cfg := &Config{UploadsDir: os.Getenv(envUploadsDir)}
	if raw := os.Getenv(envConcurrency); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", envConcurrency, raw, err)
		}
		cfg.Concurrency = n
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.UploadsDir == "" {
		result.UploadsDir = defaults.UploadsDir
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	// Bool fields: unset and false are indistinguishable, so CLI flags win.

	return result
}
