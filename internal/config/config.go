// Package config holds the environment defaults of the command line tool.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/joeshaw/envdecode"
)

// Config holds settings read from the environment. Flags override them.
type Config struct {
	// MappingFile is the mapping file to load. ENV: TYPEMAP_CONFIG
	MappingFile string `env:"TYPEMAP_CONFIG,default=typemap.yaml"`
	// LogLevel is debug, info, warn or error. ENV: TYPEMAP_LOG_LEVEL
	LogLevel string `env:"TYPEMAP_LOG_LEVEL,default=info"`
	// LogFormat is text or json. ENV: TYPEMAP_LOG_FORMAT
	LogFormat string `env:"TYPEMAP_LOG_FORMAT,default=text"`
}

// Default returns the configuration without any environment overrides.
func Default() Config {
	return Config{MappingFile: "typemap.yaml", LogLevel: "info", LogFormat: "text"}
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config

	err := envdecode.Decode(&cfg)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	return cfg, nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}

// NewLogger creates the logger described by c, writing to w.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", c.LogFormat)
	}
}
