package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vk/depgraph/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths []string // manifest files or directories

	LogFormat string
	LogLevel  string

	OutputFormat string
	Pretty       bool
	MaxDepth     int

	Trace         bool
	TraceEndpoint string
}

// NewConfig validates cfg and returns a normalized copy.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("at least one manifest path is required")
	}
	for _, p := range cfg.Paths {
		if strings.TrimSpace(p) == "" {
			return nil, errors.New("manifest paths cannot be empty")
		}
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = strings.ToLower(level.String())

	format, err := render.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return nil, err
	}
	cfg.OutputFormat = string(format)

	if cfg.Pretty && format != render.FormatText {
		return nil, fmt.Errorf("pretty output is only available for the text format, not %s", format)
	}
	if cfg.MaxDepth < 0 {
		return nil, errors.New("max-depth cannot be negative")
	}

	cfg.Paths = append([]string(nil), cfg.Paths...)
	return &cfg, nil
}

// Level returns the slog level named by LogLevel. Unknown names, which
// NewConfig never lets through, fall back to info.
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

// parseLevel accepts the slog level names, case-insensitively and with an
// optional offset such as "debug+2". Empty means info.
func parseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	return level, nil
}
