// Package config resolves colormine settings from defaults and the environment.
// Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colormine/internal/colour"
	"github.com/jmylchreest/colormine/internal/history"
	"github.com/jmylchreest/colormine/internal/wheel"
)

// Environment variables read by WithEnvConfig.
const (
	EnvHistoryFile = "COLORMINE_HISTORY_FILE"
	EnvCenter      = "COLORMINE_CENTER"
	EnvSize        = "COLORMINE_SIZE"
	EnvSampler     = "COLORMINE_SAMPLER"
	EnvLogLevel    = "COLORMINE_LOG_LEVEL"
)

// DefaultSize is the wheel side in pixels when nothing else is configured.
const DefaultSize = 300

// Config holds resolved settings.
type Config struct {
	// HistoryFile is the JSON store path. Empty means history.DefaultStorePath.
	HistoryFile string

	// Center is the initial centre mode.
	Center colour.CenterMode

	// Size is the wheel side in pixels for headless rendering and the initial window.
	Size int

	// Sampler forces a screen picker tool by name.
	Sampler string

	// LogLevel is the base log level before --verbose or --quiet.
	LogLevel hclog.Level
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Center:   colour.CenterWhite,
		Size:     DefaultSize,
		LogLevel: hclog.Info,
	}
}

// HistoryPath returns the configured history file or the default location.
func (c Config) HistoryPath() (string, error) {
	if c.HistoryFile != "" {
		return c.HistoryFile, nil
	}
	return history.DefaultStorePath()
}

// Builder provides a fluent interface for resolving a Config.
type Builder struct {
	config Config
	useEnv bool
	lookup func(string) (string, bool)
}

// NewBuilder creates a builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		lookup: os.LookupEnv,
	}
}

// WithConfig replaces the base configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnvConfig applies the COLORMINE_* environment variables on Build.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookup replaces the environment lookup (useful for testing).
func (b *Builder) WithLookup(lookup func(string) (string, bool)) *Builder {
	b.lookup = lookup
	return b
}

// Build resolves the configuration. Invalid environment values are reported
// together; valid ones are still applied.
func (b *Builder) Build() (Config, error) {
	config := b.config
	if !b.useEnv {
		return config, nil
	}

	var errs []error
	env := func(name string) (string, bool) {
		v, ok := b.lookup(name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := env(EnvHistoryFile); ok {
		config.HistoryFile = v
	}
	if v, ok := env(EnvCenter); ok {
		mode, err := colour.ParseCenterMode(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvCenter, err))
		} else {
			config.Center = mode
		}
	}
	if v, ok := env(EnvSize); ok {
		size, err := strconv.Atoi(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: invalid size %q", EnvSize, v))
		case size < wheel.MinSize:
			errs = append(errs, fmt.Errorf("%s: size must be at least %d, got %d", EnvSize, wheel.MinSize, size))
		default:
			config.Size = size
		}
	}
	if v, ok := env(EnvSampler); ok {
		config.Sampler = v
	}
	if v, ok := env(EnvLogLevel); ok {
		level := hclog.LevelFromString(v)
		if level == hclog.NoLevel {
			errs = append(errs, fmt.Errorf("%s: unknown log level %q", EnvLogLevel, v))
		} else {
			config.LogLevel = level
		}
	}

	return config, errors.Join(errs...)
}
