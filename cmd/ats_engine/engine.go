package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/docstore"
	"github.com/jonathan/ats-engine/internal/extraction"
	"github.com/jonathan/ats-engine/internal/schemas"
	"github.com/jonathan/ats-engine/internal/scoring"
)

// resolveConfig layers configuration sources. Flags win over environment
// variables, which win over the optional config file.
func resolveConfig(flagCfg config.Config, configPath string) (config.Config, error) {
	envCfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	merged := flagCfg.MergeWithDefaults(*envCfg)

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
		merged.Verbose = merged.Verbose || fileCfg.Verbose
	}

	if merged.UploadsDir == "" {
		return config.Config{}, fmt.Errorf("uploads directory is required (use --uploads-dir, %s, or a config file)", "ATS_UPLOADS_DIR")
	}
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// newScorer wires the document store, extraction cache and scorer from a
// resolved config.
func newScorer(cfg config.Config) (*scoring.Scorer, error) {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	store, err := docstore.NewDir(cfg.UploadsDir)
	if err != nil {
		return nil, err
	}
	cache := extraction.NewCache(store, logger)
	return scoring.New(cache, &scoring.Options{
		Logger:          logger,
		RankConcurrency: cfg.Concurrency,
	}), nil
}

// loadJSONFile decodes a JSON file into v, rejecting unknown fields so a
// mis-shaped job or applications file fails loudly instead of scoring zeros.
func loadJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeOutput writes JSON bytes to the given path, or stdout when empty.
func writeOutput(outPath string, data []byte) error {
	if outPath == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// validateOutput checks produced JSON against the named schema. A document
// that fails its schema is a bug and aborts; a schema that cannot be found
// or loaded only warns, so the CLI stays usable outside the repo tree.
func validateOutput(schemaRel string, data []byte) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRel)
	if schemaPath == "" {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: schema %s not found, skipping output validation\n", schemaRel)
		return nil
	}

	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: could not read schema %s: %v\n", schemaPath, err)
		return nil
	}

	if err := schemas.ValidateBytes(schemaContent, data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("output does not validate against %s: %w", schemaRel, err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
	}
	return nil
}
