package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/admitdesk/internal/app"
	"github.com/thenoetrevino/admitdesk/internal/config"
	"github.com/thenoetrevino/admitdesk/internal/logging"
	"github.com/thenoetrevino/admitdesk/internal/tui/components"
	"github.com/thenoetrevino/admitdesk/internal/tui/core"
)

// Launch starts the TUI application
func Launch() error {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.Open(ctx, cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("failed to open application: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	components.InitStyles(cfg.ColorScheme)

	tuiApp := core.New(ctx, application, cfg)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received, exiting")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
