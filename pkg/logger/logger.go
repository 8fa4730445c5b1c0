// Package logger builds the process-wide slog.Logger and provides typed
// attribute helpers so log keys stay consistent across components.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for production log aggregation.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development.
	FormatText Format = "text"
)

// Config controls logger construction via environment variables.
type Config struct {
	Format Format `env:"LOG_FORMAT" envDefault:"json"` // "json" or "text"
	Level  string `env:"LOG_LEVEL" envDefault:"info"`  // debug, info, warn, error
}

// New creates a slog.Logger writing to w according to cfg.
// Unknown formats fall back to JSON and unknown levels to info, so a
// misconfigured variable degrades rather than prevents logging.
func New(cfg Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var h slog.Handler
	switch cfg.Format {
	case FormatText:
		h = slog.NewTextHandler(w, opts)
	default:
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
