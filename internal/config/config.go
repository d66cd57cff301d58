// SPDX-License-Identifier: MIT

// Package config loads gridgen settings.
//
// Precedence, lowest first:
//
//	defaults → YAML file (--config) → GRIDGEN_* environment → command-line flags
//
// Flags are applied by the command layer (only flags the user actually set
// override), so this package covers the first three layers and validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilegrid/generator"
	"github.com/katalvlaran/tilegrid/internal/logging"
	"github.com/katalvlaran/tilegrid/render"
)

// EnvPrefix prefixes every environment variable, e.g. GRIDGEN_WIDTH.
const EnvPrefix = "GRIDGEN_"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the full gridgen configuration.
type Config struct {
	Seed       int64   `yaml:"seed" env:"SEED"`
	Width      int     `yaml:"width" env:"WIDTH"`
	Height     int     `yaml:"height" env:"HEIGHT"`
	Density    float64 `yaml:"density" env:"DENSITY"`
	Growth     int     `yaml:"growth" env:"GROWTH"`
	MaxPasses  int     `yaml:"max_passes" env:"MAX_PASSES"`
	NoiseScale float64 `yaml:"noise_scale" env:"NOISE_SCALE"`
	Color      string  `yaml:"color" env:"COLOR"`

	Log LogConfig `yaml:"log" envPrefix:"LOG_"`
}

// LogConfig configures CLI logging.
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	JSON  bool   `yaml:"json" env:"JSON"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Seed:       generator.DefaultSeed,
		Width:      64,
		Height:     32,
		Density:    generator.DefaultDensity,
		Growth:     generator.DefaultGrowth,
		NoiseScale: generator.DefaultNoiseScale,
		Color:      "auto",
		Log:        LogConfig{Level: "info"},
	}
}

// Load returns defaults overlaid with the YAML file at path (skipped when
// path is empty) and then the process environment.
func Load(path string) (Config, error) {
	return LoadFrom(path, nil)
}

// LoadFrom is Load with an explicit environment; a nil environ reads the process environment.
func LoadFrom(path string, environ map[string]string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// loadFile decodes YAML over cfg, rejecting unknown keys.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// Validate checks ranges; every error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case !(c.Density >= 0 && c.Density <= 1):
		return fmt.Errorf("%w: density %v must be in [0,1]", ErrInvalidConfig, c.Density)
	case c.Growth < 0:
		return fmt.Errorf("%w: growth %d must be >= 0", ErrInvalidConfig, c.Growth)
	case c.MaxPasses < 0:
		return fmt.Errorf("%w: max_passes %d must be >= 0", ErrInvalidConfig, c.MaxPasses)
	case !(c.NoiseScale > 0) || math.IsInf(c.NoiseScale, 0):
		return fmt.Errorf("%w: noise_scale %v must be positive and finite", ErrInvalidConfig, c.NoiseScale)
	}
	if _, err := render.ParseMode(c.Color); err != nil {
		return fmt.Errorf("%w: color: %v", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Options converts the generator-related fields into generator options.
func (c Config) Options() []generator.Option {
	return []generator.Option{
		generator.WithSeed(c.Seed),
		generator.WithDensity(c.Density),
		generator.WithGrowth(c.Growth),
		generator.WithMaxPasses(c.MaxPasses),
		generator.WithNoise(generator.ValueNoise(c.Seed, c.NoiseScale)),
	}
}
