// Package logger sets up the JSON slog handler. The TUI sends it to
// LOG_FILE because bubbletea owns stdout; the press command sends it to stderr.
package logger

import (
	"io"
	"log/slog"

	"github.com/alkime/frostslider/internal/config"
)

// SetupLogger configures structured logging to w based on environment.
func SetupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	// Determine log level
	logLevel := slog.LevelInfo
	if cfg.Env == config.EnvDevelopment {
		logLevel = slog.LevelDebug
	}
	if cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}

	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})

	logger := slog.New(handler)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}
