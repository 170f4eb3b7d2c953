/*
Package config holds the configuration of the style engine.

Configuration is read from an optional YAML file, by default `restyle.yaml`:

	mode: production          # or development (default)
	units:
	  default: rpx            # unit for bare numbers of dimension properties
	  dimensions:             # replaces the default dimension properties
	    - width
	    - font-size
	trace:
	  level: error            # error | info | debug

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/restyle/css"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file looked up by LoadOptional.
const FileName = "restyle.yaml"

// Mode is the build mode. Diagnostics are suppressed in production mode.
type Mode string

// Build modes
const (
	Development Mode = "development"
	Production  Mode = "production"
)

// Config represents the optional restyle.yaml configuration.
type Config struct {
	Mode  Mode        `yaml:"mode,omitempty"`
	Units UnitsConfig `yaml:"units"`
	Trace TraceConfig `yaml:"trace"`
}

// UnitsConfig configures value normalization for serialized styles.
type UnitsConfig struct {
	Default    string   `yaml:"default,omitempty"`
	Dimensions []string `yaml:"dimensions,omitempty"`
}

// TraceConfig configures tracing.
type TraceConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Default returns the configuration used if no file is present.
func Default() *Config {
	return &Config{
		Mode:  Development,
		Units: UnitsConfig{Default: css.DefaultUnit},
		Trace: TraceConfig{Level: "error"},
	}
}

// Load reads a configuration file. Missing values are set to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOptional reads restyle.yaml from dir if present, otherwise it returns
// the default configuration.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse reads configuration from YAML data and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks a configuration for unknown values and fills in defaults
// for empty ones.
func (cfg *Config) Validate() error {
	cfg.Mode = Mode(strings.ToLower(strings.TrimSpace(string(cfg.Mode))))
	switch cfg.Mode {
	case "":
		cfg.Mode = Development
	case Development, Production:
	default:
		return fmt.Errorf("invalid mode %q: expected %q or %q", cfg.Mode, Development, Production)
	}
	cfg.Units.Default = strings.TrimSpace(cfg.Units.Default)
	if cfg.Units.Default == "" {
		cfg.Units.Default = css.DefaultUnit
	}
	if _, err := traceLevel(cfg.Trace.Level); err != nil {
		return err
	}
	return nil
}

// IsProduction is a predicate: is this a production build?
func (cfg *Config) IsProduction() bool {
	return cfg != nil && cfg.Mode == Production
}

// Normalizer returns the value normalizer for the configured units.
func (cfg *Config) Normalizer() *css.Normalizer {
	if cfg == nil {
		return css.Default()
	}
	return css.NewNormalizer(cfg.Units.Default, cfg.Units.Dimensions...)
}

// TraceLevel returns the configured trace level. It defaults to LevelError.
func (cfg *Config) TraceLevel() tracing.TraceLevel {
	if cfg == nil {
		return tracing.LevelError
	}
	l, _ := traceLevel(cfg.Trace.Level)
	return l
}

// ApplyTraceLevel sets the configured trace level for tracers with the
// given keys.
func (cfg *Config) ApplyTraceLevel(keys ...string) {
	level := cfg.TraceLevel()
	for _, k := range keys {
		tracing.Select(k).SetTraceLevel(level)
	}
}

func traceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("invalid trace level %q", s)
}
