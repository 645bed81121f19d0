package app

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/admitdesk/internal/database"
	"github.com/thenoetrevino/admitdesk/internal/models"
	"github.com/thenoetrevino/admitdesk/internal/seed"
)

type failingSaver struct{}

func (failingSaver) SaveCardStage(context.Context, int, models.StageID) error {
	return errors.New("save refused")
}

func TestOpen_DefaultDataset(t *testing.T) {
	app, err := Open(context.Background(), "")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = app.Close() }()

	if app.PipelineService == nil || app.DirectoryService == nil || app.DashboardService == nil {
		t.Fatal("Expected all services to be initialized")
	}
	if got := app.PipelineService.Count(); got != 6 {
		t.Errorf("Expected 6 cards, got %d", got)
	}
	if got := app.DirectoryService.StudentCount(); got != 3 {
		t.Errorf("Expected 3 students, got %d", got)
	}
}

func TestOpen_MissingSeedFile(t *testing.T) {
	if _, err := Open(context.Background(), "/nonexistent/dataset.yaml"); err == nil {
		t.Error("Expected error for missing seed file")
	}
}

func TestMoveWritesThroughToRepository(t *testing.T) {
	ctx := context.Background()
	app, err := Open(ctx, "")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = app.Close() }()

	if _, err := app.PipelineService.MoveCard(ctx, 1, models.StageVisa); err != nil {
		t.Fatalf("MoveCard failed: %v", err)
	}

	apps, err := app.Repo().GetAllApplications(ctx)
	if err != nil {
		t.Fatalf("GetAllApplications failed: %v", err)
	}
	for _, a := range apps {
		if a.ID == 1 && a.Stage != models.StageVisa {
			t.Errorf("Expected repository to record visa, got %s", a.Stage)
		}
	}
}

func TestWithStageSaver_FailureKeepsBoard(t *testing.T) {
	ctx := context.Background()
	ds, err := seed.Default()
	if err != nil {
		t.Fatalf("seed.Default failed: %v", err)
	}

	app, err := OpenDataset(ctx, ds, WithStageSaver(failingSaver{}))
	if err != nil {
		t.Fatalf("OpenDataset failed: %v", err)
	}
	defer func() { _ = app.Close() }()

	if _, err := app.PipelineService.MoveCard(ctx, 1, models.StageVisa); err == nil {
		t.Fatal("Expected save failure to surface")
	}
	card, err := app.PipelineService.GetCard(1)
	if err != nil {
		t.Fatalf("GetCard failed: %v", err)
	}
	if card.Stage != models.StageNew {
		t.Errorf("Expected card to stay in new, got %s", card.Stage)
	}
}

func TestNew_OverExistingRepository(t *testing.T) {
	ctx := context.Background()
	db, err := database.InitDB(ctx)
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	ds, _ := seed.Default()
	repo := database.NewRepository(db)
	if err := repo.Seed(ctx, ds); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	app, err := New(ctx, repo)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// Close does not own the database here
	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
	if err := db.PingContext(ctx); err != nil {
		t.Errorf("Expected database to stay open, got %v", err)
	}
}
