package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/admitdesk/internal/app"
	"github.com/thenoetrevino/admitdesk/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App  *app.App // Application container with services
	ctx  context.Context
	owns bool // Close releases App only when NewCLI created it
}

// NewCLI loads the configured dataset into a fresh in-memory database.
// Every invocation starts from the seed; nothing carries over between runs.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.Open(ctx, cfg.SeedFile)
	if err != nil {
		return nil, err
	}

	return &CLI{
		App:  application,
		ctx:  ctx,
		owns: true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owns {
		return nil
	}
	return c.App.Close()
}

type contextKey string

// appKey carries a prepared App through a command's context
const appKey contextKey = "app"

// WithApp returns a context whose commands run against application
// instead of opening their own
func WithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, appKey, application)
}

// GetCLIFromContext returns a CLI over the App stored by WithApp, or a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if application, ok := ctx.Value(appKey).(*app.App); ok && application != nil {
		return &CLI{App: application, ctx: ctx}, nil
	}
	return NewCLI(ctx)
}
