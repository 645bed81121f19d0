package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/admitdesk/internal/database"
	board "github.com/thenoetrevino/admitdesk/internal/pipeline"
	dashboardservice "github.com/thenoetrevino/admitdesk/internal/services/dashboard"
	directoryservice "github.com/thenoetrevino/admitdesk/internal/services/directory"
	pipelineservice "github.com/thenoetrevino/admitdesk/internal/services/pipeline"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore
	db   *sql.DB // Set when the App owns its database (see Open)

	logger *slog.Logger

	// Service layer (business logic)
	PipelineService  pipelineservice.Service
	DirectoryService directoryservice.Service
	DashboardService dashboardservice.Service
}

// New creates a new App with all services initialized from the records in repo.
// This is the single entry point for creating the application container.
func New(ctx context.Context, repo database.DataStore, opts ...Option) (*App, error) {
	cfg := &appConfig{saver: repo}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	stages, err := repo.GetStages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stages: %w", err)
	}
	cards, err := repo.GetAllApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}
	store, err := board.NewStore(stages, cards)
	if err != nil {
		return nil, fmt.Errorf("failed to build pipeline: %w", err)
	}

	pipe := pipelineservice.NewService(store, cfg.saver)

	dir, err := directoryservice.Load(ctx, repo)
	if err != nil {
		return nil, err
	}

	dash, err := dashboardservice.Load(ctx, repo, dir, pipe)
	if err != nil {
		return nil, err
	}

	cfg.logger.Info("application loaded",
		"stages", len(stages),
		"cards", store.Count(),
		"students", dir.StudentCount(),
		"universities", dir.UniversityStats().Total)

	return &App{
		repo:             repo,
		logger:           cfg.logger,
		PipelineService:  pipe,
		DirectoryService: dir,
		DashboardService: dash,
	}, nil
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close performs cleanup of application resources.
// The in-memory database, and every record in it, is gone afterwards.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
