// Package platform holds process-level wiring shared by the CLI and the
// preview API server.
package platform

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// NewLogger builds the process logger. format is "json" for production
// logging or anything else for a tinted console handler suited to CLI use.
func NewLogger(level slog.Level, format string) *slog.Logger {
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{Level: level})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFatal logs the error and exits. For top-level CLI and server failures
// only.
func LogFatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
