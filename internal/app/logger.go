package app

import (
	"io"
	"log/slog"
)

// newLogger builds the run's logger from validated settings. The global
// default logger is left untouched so several apps can log independently.
func newLogger(level slog.Level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
