// Package logging sets up the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"

	"globeview/pkg/config"
)

// Init builds the logger from configuration and installs it as the slog
// default.
func Init(cfg *config.LogConfig) *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil {
		switch cfg.Level {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
