// Package logging builds the process-wide slog logger shared by the
// pipeline components.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// New creates a console slog.Logger at the given level. Unknown level
// strings fall back to info.
func New(level string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler)
}

// ForComponent tags a child logger with the component name so crawl,
// classification and aggregation lines stay separable in one stream.
func ForComponent(log *slog.Logger, component string) *slog.Logger {
	return log.With("component", component)
}

// ParseLevel maps a config level string onto a slog level.
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
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
