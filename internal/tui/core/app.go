// Package core adapts the value-typed tui.Model to the pointer tea.Model that
// the launcher hands to tea.NewProgram.
package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/admitdesk/internal/app"
	"github.com/thenoetrevino/admitdesk/internal/config"
	"github.com/thenoetrevino/admitdesk/internal/tui"
)

var _ tea.Model = (*App)(nil)

// App owns the dashboard model for the lifetime of a program run.
type App struct {
	model *tui.Model
}

// New builds the dashboard over an opened application. The app.App supplies
// the directory, pipeline and dashboard services every page reads from, and
// the pipeline service is the only path board gestures take to the store.
// The caller keeps ownership of application and closes it after the program
// exits; cfg may be nil for the built-in defaults.
func New(ctx context.Context, application *app.App, cfg *config.Config) *App {
	model := tui.InitialModel(ctx, application, cfg)
	return &App{model: &model}
}

func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update runs msg through the model and keeps the result for the next frame.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := a.model.Update(msg)
	if m, ok := updated.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

func (a *App) View() tea.View {
	return a.model.View()
}

// GetModel exposes the current model to integration tests.
func (a *App) GetModel() *tui.Model {
	return a.model
}
