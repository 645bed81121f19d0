package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/admitdesk/internal/filter"
	"github.com/thenoetrevino/admitdesk/internal/tui/state"
)

// ============================================================================
// LIST PAGES (students, universities)
// ============================================================================

// handleListKey handles normal-mode keys on the Students and Universities pages
func (m Model) handleListKey(key string) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	list := m.activeList()
	if list == nil {
		return m, nil
	}
	students := m.UiState.Page() == state.StudentsPage

	switch key {
	case km.Search:
		m.UiState.SetMode(state.SearchMode)
		return m, list.Search().Activate()
	case "esc":
		list.Search().Clear()
		list.SetSelected(0)
	case km.NextItem, "down":
		list.MoveSelection(1, m.activeListLen())
	case km.PrevItem, "up":
		list.MoveSelection(-1, m.activeListLen())
	case km.ClearFilters:
		list.ClearFilters()
	case km.CycleCountry:
		m.cycleSelector(list, filter.SelectorCountry, students)
	case km.CycleStatus:
		if students {
			m.cycleSelector(list, filter.SelectorStatus, true)
		}
	case km.CyclePartner:
		if !students {
			m.cycleSelector(list, filter.SelectorPartner, false)
		}
	}
	return m, nil
}

// cycleSelector advances one selector to its next option, wrapping through "all"
func (m Model) cycleSelector(list *state.ListState, selector string, students bool) {
	dir := m.App.DirectoryService
	current := list.Selector(selector)

	var next string
	if students {
		next = dir.NextStudentOption(selector, current)
	} else {
		next = dir.NextUniversityOption(selector, current)
	}
	list.SetSelector(selector, next)
}

// handleSearchMode routes keys to the focused search field.
// enter keeps the query, esc clears it; the list filters as the user types.
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	list := m.activeList()
	if list == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	switch msg.String() {
	case "enter":
		list.Search().Deactivate()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case "esc":
		list.Search().Clear()
		list.SetSelected(0)
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	changed, cmd := list.Search().Update(msg)
	if changed {
		list.SetSelected(0)
	}
	return m, cmd
}
