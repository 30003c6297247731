package logger

import (
	"log/slog"
	"os"

	"github.com/alkime/shimmer/internal/config"
)

// Setup configures structured logging based on config.
// Logs go to stderr; stdout belongs to the rendered output.
func Setup(cfg *config.Config) *slog.Logger {
	logLevel := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}

	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})

	logger := slog.New(handler)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}
