package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if ATLAS_CONFIG is set
//  3. env (prefix ATLAS_)
func Load(_ context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("ATLAS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: ATLAS_ADDR, ATLAS_SCORES_PATH, ...
	// Map env keys like ATLAS_SCORES_PATH -> scores_path (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("ATLAS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "atlas_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.ScoresPath == "" || cfg.GeometryPath == "" || cfg.EventsPath == "":
		return nil, fmt.Errorf("%w: all three source paths must be set", ErrInvalidConfig)
	case cfg.DefaultYear <= 0:
		return nil, fmt.Errorf("%w: default_year must be positive", ErrInvalidConfig)
	case cfg.PrePeriodEnd < cfg.PrePeriodStart:
		return nil, fmt.Errorf("%w: pre period end before start", ErrInvalidConfig)
	}
	return &cfg, nil
}
