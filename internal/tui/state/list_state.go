package state

import (
	"github.com/thenoetrevino/admitdesk/internal/filter"
	"github.com/thenoetrevino/admitdesk/internal/models"
)

// ListState holds the search field, selector values and selection of one list page.
type ListState struct {
	search   *SearchState
	criteria filter.Criteria
	selected int
}

// NewListState creates a list with no query and every selector at "all".
func NewListState(placeholder string) *ListState {
	return &ListState{
		search:   NewSearchState(placeholder),
		criteria: filter.NewCriteria(),
	}
}

// Search returns the list's search field.
func (s *ListState) Search() *SearchState {
	return s.search
}

// Criteria returns the current query and selector values.
func (s *ListState) Criteria() filter.Criteria {
	c := filter.NewCriteria()
	for name, value := range s.criteria.Selectors {
		c.Selectors[name] = value
	}
	c.Query = s.search.Query()
	return c
}

// Selector returns the value of one selector, "all" when unset.
func (s *ListState) Selector(name string) string {
	return s.criteria.Selected(name)
}

// SetSelector sets one selector and resets the selection.
func (s *ListState) SetSelector(name, value string) {
	s.criteria = s.criteria.With(name, value)
	s.selected = 0
}

// ClearFilters resets the query and every selector to "all".
func (s *ListState) ClearFilters() {
	s.search.Clear()
	s.criteria = filter.NewCriteria()
	s.selected = 0
}

// HasFilters reports whether the query or any selector constrains the list.
func (s *ListState) HasFilters() bool {
	if s.search.Query() != "" {
		return true
	}
	for _, v := range s.criteria.Selectors {
		if v != "" && v != models.SelectorAll {
			return true
		}
	}
	return false
}

// Selected returns the index of the selected row.
func (s *ListState) Selected() int {
	return s.selected
}

// SetSelected updates the selected row index.
func (s *ListState) SetSelected(index int) {
	s.selected = index
}

// MoveSelection moves the selection by delta within a list of n rows.
func (s *ListState) MoveSelection(delta, n int) {
	s.selected = Clamp(s.selected+delta, n)
}
