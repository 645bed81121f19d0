// Package filter implements the search and selector filtering used by the
// roster and directory views. Filtering is a pure function of the records and
// the criteria; the result keeps the records' original relative order.
package filter

import (
	"slices"
	"strings"

	"github.com/thenoetrevino/admitdesk/internal/models"
)

// Field is a text field that free-text search looks at
type Field[T any] struct {
	Name  string
	Value func(T) string
}

// Selector is a categorical criterion. A selector either compares a field
// exactly (Value) or applies a custom predicate (Match), such as the three-way
// partner flag.
type Selector[T any] struct {
	Name string

	// Options is the closed enumeration of accepted values; a value outside
	// it is ignored. When nil the field is open: any selected value constrains
	// the result, and the choices offered are the distinct Values of the records.
	Options []string

	Value func(T) string
	Match func(record T, selected string) bool
}

// View is the filter configuration of one page
type View[T any] struct {
	Name         string
	SearchFields []Field[T]
	Selectors    []Selector[T]
}

// Criteria is what the user has typed and selected
type Criteria struct {
	Query     string
	Selectors map[string]string // selector name -> value ("all" or empty means unconstrained)
}

// NewCriteria returns criteria with every selector set to "all"
func NewCriteria() Criteria {
	return Criteria{Selectors: make(map[string]string)}
}

// With returns a copy of c with one selector set
func (c Criteria) With(name, value string) Criteria {
	out := Criteria{Query: c.Query, Selectors: make(map[string]string, len(c.Selectors)+1)}
	for k, v := range c.Selectors {
		out.Selectors[k] = v
	}
	out.Selectors[name] = value
	return out
}

// Selected returns the value of a selector, "all" when unset
func (c Criteria) Selected(name string) string {
	if v, ok := c.Selectors[name]; ok && v != "" {
		return v
	}
	return models.SelectorAll
}

// activeSelector is a selector that constrains the result
type activeSelector[T any] struct {
	selector Selector[T]
	value    string
}

// Apply returns the records matching every active criterion, in original order.
// A nil or empty collection yields an empty, non-nil result.
func (v View[T]) Apply(records []T, c Criteria) []T {
	out := make([]T, 0, len(records))
	if len(records) == 0 {
		return out
	}

	query := strings.ToLower(c.Query)
	active := v.activeSelectors(c)

	for _, r := range records {
		if !v.matchesSearch(r, query) {
			continue
		}
		if !matchesSelectors(r, active) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Options returns the choices of a selector, "all" first.
// Unknown selector names return only "all".
func (v View[T]) Options(records []T, name string) []string {
	out := []string{models.SelectorAll}
	for _, s := range v.Selectors {
		if s.Name == name {
			return append(out, s.enumerate(records)...)
		}
	}
	return out
}

// Next returns the option after current, wrapping back to "all"
func (v View[T]) Next(records []T, name, current string) string {
	opts := v.Options(records, name)
	idx := slices.Index(opts, current)
	return opts[(idx+1)%len(opts)]
}

// WithOptions returns a copy of v whose named selector accepts only options
func (v View[T]) WithOptions(name string, options []string) View[T] {
	out := v
	out.Selectors = slices.Clone(v.Selectors)
	for i := range out.Selectors {
		if out.Selectors[i].Name == name {
			out.Selectors[i].Options = slices.Clone(options)
		}
	}
	return out
}

// activeSelectors resolves the criteria to the selectors that constrain the
// result. "all" and empty values are dropped, as are values outside a closed
// enumeration.
func (v View[T]) activeSelectors(c Criteria) []activeSelector[T] {
	var active []activeSelector[T]
	for _, s := range v.Selectors {
		selected := c.Selected(s.Name)
		if selected == models.SelectorAll {
			continue
		}
		if s.Options != nil && !slices.Contains(s.Options, selected) {
			continue
		}
		active = append(active, activeSelector[T]{selector: s, value: selected})
	}
	return active
}

// matchesSearch reports whether any search field contains the lowercased query
func (v View[T]) matchesSearch(r T, query string) bool {
	if query == "" {
		return true
	}
	for _, f := range v.SearchFields {
		if strings.Contains(strings.ToLower(f.Value(r)), query) {
			return true
		}
	}
	return false
}

func matchesSelectors[T any](r T, active []activeSelector[T]) bool {
	for _, a := range active {
		if !a.selector.matches(r, a.value) {
			return false
		}
	}
	return true
}

func (s Selector[T]) matches(r T, selected string) bool {
	if s.Match != nil {
		return s.Match(r, selected)
	}
	return s.Value(r) == selected
}

// enumerate returns the accepted values of the selector
func (s Selector[T]) enumerate(records []T) []string {
	if s.Options != nil {
		return s.Options
	}
	if s.Value == nil {
		return nil
	}

	seen := make(map[string]bool)
	var values []string
	for _, r := range records {
		val := s.Value(r)
		if val == "" || seen[val] {
			continue
		}
		seen[val] = true
		values = append(values, val)
	}
	return values
}
