package state

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// SearchState manages the search field of a list page.
// The field is a textinput; the query is whatever it holds, whether or not it
// currently has focus.
type SearchState struct {
	input  textinput.Model
	active bool
}

// NewSearchState creates a new SearchState with an empty, unfocused field.
func NewSearchState(placeholder string) *SearchState {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = placeholder
	return &SearchState{input: ti}
}

// Query returns the current search text.
func (s *SearchState) Query() string {
	return s.input.Value()
}

// SetQuery replaces the search text.
func (s *SearchState) SetQuery(q string) {
	s.input.SetValue(q)
}

// IsActive returns true if the field has focus.
func (s *SearchState) IsActive() bool {
	return s.active
}

// Activate focuses the field.
func (s *SearchState) Activate() tea.Cmd {
	s.active = true
	return s.input.Focus()
}

// Deactivate blurs the field and keeps the query.
func (s *SearchState) Deactivate() {
	s.active = false
	s.input.Blur()
}

// Clear empties the query and blurs the field.
func (s *SearchState) Clear() {
	s.input.Reset()
	s.Deactivate()
}

// Update forwards a message to the field. It reports whether the query changed.
func (s *SearchState) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s.input.Value() != before, cmd
}

// View renders the field.
func (s *SearchState) View() string {
	return s.input.View()
}
