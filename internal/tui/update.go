package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/admitdesk/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.UiState.Mode() {
		case state.HelpMode:
			return m.handleHelpMode(msg)
		case state.SearchMode:
			return m.handleSearchMode(msg)
		case state.MovingMode:
			return m.handleMovingMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	// Cursor blinks and other input messages belong to the focused search field
	if m.UiState.Mode() == state.SearchMode {
		if list := m.activeList(); list != nil {
			_, cmd := list.Search().Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", "space":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleNormalMode handles page navigation and dispatches page keys
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	key := msg.String()

	// Toasts stay up until the next key
	m.NotificationState.Clear()

	switch key {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.NextPage:
		m.UiState.NextPage()
		return m, nil
	case km.PrevPage:
		m.UiState.PrevPage()
		return m, nil
	case "1", "2", "3", "4":
		m.UiState.SetPage(state.Page(key[0] - '1'))
		return m, nil
	case km.ToggleSidebar:
		m.UiState.ToggleSidebar()
		return m, nil
	case km.ToggleLanguage:
		m.UiState.ToggleLanguage()
		return m, nil
	}

	switch m.UiState.Page() {
	case state.StudentsPage, state.UniversitiesPage:
		return m.handleListKey(key)
	case state.ApplicationsPage:
		return m.handleBoardKey(key)
	}
	return m, nil
}
