package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/admitdesk/internal/database"
	"github.com/thenoetrevino/admitdesk/internal/seed"
)

// Open creates the in-memory database, seeds it from seedFile (or the built-in
// dataset when empty) and builds the App over it. Close releases the database.
func Open(ctx context.Context, seedFile string, opts ...Option) (*App, error) {
	ds, err := seed.Load(seedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return OpenDataset(ctx, ds, opts...)
}

// OpenDataset is Open for an already loaded dataset
func OpenDataset(ctx context.Context, ds *seed.Dataset, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a, err := openOn(ctx, db, ds, opts...)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
		return nil, err
	}
	return a, nil
}

func openOn(ctx context.Context, db *sql.DB, ds *seed.Dataset, opts ...Option) (*App, error) {
	repo := database.NewRepository(db)
	if err := repo.Seed(ctx, ds); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	a, err := New(ctx, repo, opts...)
	if err != nil {
		return nil, err
	}
	a.db = db
	return a, nil
}
