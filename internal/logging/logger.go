// internal/logging/logger.go
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// NewLogger creates a new structured logger
func NewLogger(format string, level string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level keyword to a slog level, defaulting to warn.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// WithRun attaches the program name and a fresh run ID.
func WithRun(logger *slog.Logger, program string) *slog.Logger {
	return logger.With("program", program, "run_id", uuid.NewString())
}

// WithFile returns a logger with the file being processed attached
func WithFile(logger *slog.Logger, path string) *slog.Logger {
	return logger.With("file", path)
}

// WithDestination returns a logger with the destination name attached
func WithDestination(logger *slog.Logger, name string) *slog.Logger {
	return logger.With("destination", name)
}
