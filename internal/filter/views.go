package filter

import "github.com/thenoetrevino/admitdesk/internal/models"

// View and selector names
const (
	StudentsView     = "students"
	UniversitiesView = "universities"

	SelectorStatus  = "status"
	SelectorCountry = "country"
	SelectorPartner = "partner"
)

// StudentView searches name and email and filters on status and country
var StudentView = View[models.Student]{
	Name: StudentsView,
	SearchFields: []Field[models.Student]{
		{Name: "name", Value: func(s models.Student) string { return s.Name }},
		{Name: "email", Value: func(s models.Student) string { return s.Email }},
	},
	Selectors: []Selector[models.Student]{
		{
			Name:    SelectorStatus,
			Options: []string{models.StatusActive, models.StatusInactive, models.StatusPending},
			Value:   func(s models.Student) string { return s.Status },
		},
		{
			Name:  SelectorCountry,
			Value: func(s models.Student) string { return s.Country },
		},
	},
}

// UniversityView searches name and city and filters on country and partnership
var UniversityView = View[models.University]{
	Name: UniversitiesView,
	SearchFields: []Field[models.University]{
		{Name: "name", Value: func(u models.University) string { return u.Name }},
		{Name: "city", Value: func(u models.University) string { return u.City }},
	},
	Selectors: []Selector[models.University]{
		{
			Name:  SelectorCountry,
			Value: func(u models.University) string { return u.Country },
		},
		{
			Name:    SelectorPartner,
			Options: []string{models.PartnerOnly, models.NonPartnerOnly},
			Match:   matchPartner,
		},
	},
}

func matchPartner(u models.University, selected string) bool {
	switch selected {
	case models.PartnerOnly:
		return u.Partner
	case models.NonPartnerOnly:
		return !u.Partner
	}
	return true
}

// ViewSpec names the fields a view searches and filters on
type ViewSpec struct {
	SearchFields      []string
	CategoricalFields []string
}

// Table returns the per-view filter configuration
func Table() map[string]ViewSpec {
	return map[string]ViewSpec{
		StudentsView:     viewSpec(StudentView),
		UniversitiesView: viewSpec(UniversityView),
	}
}

func viewSpec[T any](v View[T]) ViewSpec {
	var s ViewSpec
	for _, f := range v.SearchFields {
		s.SearchFields = append(s.SearchFields, f.Name)
	}
	for _, sel := range v.Selectors {
		s.CategoricalFields = append(s.CategoricalFields, sel.Name)
	}
	return s
}

// Students filters students with the student view
func Students(records []models.Student, c Criteria) []models.Student {
	return StudentView.Apply(records, c)
}

// Universities filters universities with the university view
func Universities(records []models.University, c Criteria) []models.University {
	return UniversityView.Apply(records, c)
}
