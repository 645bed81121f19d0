// Package testutil holds shared helpers for tests that need a seeded App.
package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/admitdesk/internal/app"
	"github.com/thenoetrevino/admitdesk/internal/seed"
)

// SetupTestApp opens an App over an in-memory database seeded with the
// built-in dataset. The App is closed when the test ends.
func SetupTestApp(t *testing.T) *app.App {
	t.Helper()
	ds, err := seed.Default()
	if err != nil {
		t.Fatalf("Failed to load default dataset: %v", err)
	}
	return SetupTestAppWithDataset(t, ds)
}

// SetupTestAppWithDataset is SetupTestApp for a custom dataset
func SetupTestAppWithDataset(t *testing.T, ds *seed.Dataset, opts ...app.Option) *app.App {
	t.Helper()
	a, err := app.OpenDataset(context.Background(), ds, opts...)
	if err != nil {
		t.Fatalf("Failed to open app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}
