package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/admitdesk/internal/app"
	"github.com/thenoetrevino/admitdesk/internal/config"
	"github.com/thenoetrevino/admitdesk/internal/models"
	"github.com/thenoetrevino/admitdesk/internal/tui/state"
)

// Timeout constant for database operations
const timeoutDB = 30 * time.Second

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	StudentList       *state.ListState
	UniversityList    *state.ListState
	BoardState        *state.BoardState
	NotificationState *state.NotificationState
}

// InitialModel creates the TUI model over an opened application
func InitialModel(ctx context.Context, application *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	ui := state.NewUIState()
	ui.SetLanguage(cfg.Language)
	ui.SetSidebarCollapsed(cfg.SidebarCollapsed)

	return Model{
		Ctx:               ctx,
		App:               application,
		Config:            cfg,
		UiState:           ui,
		StudentList:       state.NewListState("Search by name or email..."),
		UniversityList:    state.NewListState("Search by name or city..."),
		BoardState:        state.NewBoardState(),
		NotificationState: state.NewNotificationState(),
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// dbContext creates a child context with timeout for database operations
func (m Model) dbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, timeoutDB)
}

// activeList returns the list state of the current page, nil off the list pages
func (m Model) activeList() *state.ListState {
	switch m.UiState.Page() {
	case state.StudentsPage:
		return m.StudentList
	case state.UniversitiesPage:
		return m.UniversityList
	}
	return nil
}

// visibleStudents applies the student list's criteria
func (m Model) visibleStudents() []models.Student {
	return m.App.DirectoryService.Students(m.StudentList.Criteria())
}

// visibleUniversities applies the university list's criteria
func (m Model) visibleUniversities() []models.University {
	return m.App.DirectoryService.Universities(m.UniversityList.Criteria())
}

// activeListLen returns the number of rows the current list page shows
func (m Model) activeListLen() int {
	switch m.UiState.Page() {
	case state.StudentsPage:
		return len(m.visibleStudents())
	case state.UniversitiesPage:
		return len(m.visibleUniversities())
	}
	return 0
}

// columnCards returns the cards of the board column at index i
func (m Model) columnCards(i int) []models.Application {
	stages := m.App.PipelineService.Stages()
	if i < 0 || i >= len(stages) {
		return nil
	}
	cards, err := m.App.PipelineService.CardsByStage(stages[i].ID)
	if err != nil {
		return nil
	}
	return cards
}

// currentCard returns the card under the board cursor
func (m Model) currentCard() (models.Application, bool) {
	cards := m.columnCards(m.UiState.SelectedColumn())
	idx := m.UiState.SelectedCard()
	if idx < 0 || idx >= len(cards) {
		return models.Application{}, false
	}
	return cards[idx], true
}

// stageIndex returns the board column index of a stage, -1 if unknown
func (m Model) stageIndex(id models.StageID) int {
	for i, st := range m.App.PipelineService.Stages() {
		if st.ID == id {
			return i
		}
	}
	return -1
}

// selectCard moves the board cursor onto a stage and card index
func (m Model) selectCard(stage models.StageID, index int) {
	col := m.stageIndex(stage)
	if col < 0 {
		return
	}
	m.UiState.SetSelectedColumn(col)
	m.UiState.SetSelectedCard(state.Clamp(index, len(m.columnCards(col))))
}

// notifyError surfaces err as a toast
func (m Model) notifyError(err error) {
	m.NotificationState.Add(state.LevelError, err.Error())
}
