package app

import (
	"log/slog"

	pipelineservice "github.com/thenoetrevino/admitdesk/internal/services/pipeline"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	saver  pipelineservice.StageSaver
	logger *slog.Logger
}

// WithStageSaver overrides where completed moves are written (the repository by default)
func WithStageSaver(saver pipelineservice.StageSaver) Option {
	return func(cfg *appConfig) {
		cfg.saver = saver
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
