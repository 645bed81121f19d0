// Package directory serves the read-only student roster and university
// directory through the filter engine.
package directory

import (
	"context"
	"fmt"
	"slices"

	"github.com/thenoetrevino/admitdesk/internal/filter"
	"github.com/thenoetrevino/admitdesk/internal/models"
)

// Reader loads the roster and the directory
type Reader interface {
	GetAllStudents(ctx context.Context) ([]models.Student, error)
	GetAllUniversities(ctx context.Context) ([]models.University, error)
}

// UniversityStats are the summary figures above the university list
type UniversityStats struct {
	Total          int `json:"total"`
	Partners       int `json:"partners"`
	Scholarships   int `json:"scholarships"`
	StudentsPlaced int `json:"students_placed"`
}

// Service defines all directory read operations
type Service interface {
	// Students
	Students(c filter.Criteria) []models.Student
	StudentOptions(selector string) []string
	NextStudentOption(selector, current string) string
	GetStudent(id int) (models.Student, error)
	StudentCount() int

	// Universities
	Universities(c filter.Criteria) []models.University
	UniversityOptions(selector string) []string
	NextUniversityOption(selector, current string) string
	GetUniversity(id int) (models.University, error)
	UniversityStats() UniversityStats
}

// service implements Service interface
type service struct {
	students     []models.Student
	universities []models.University

	studentView    filter.View[models.Student]
	universityView filter.View[models.University]
}

// NewService creates a directory over fixed record collections.
// Both views share one country enumeration, taken from the whole dataset.
func NewService(students []models.Student, universities []models.University) Service {
	countries := Countries(students, universities)
	return &service{
		students:       slices.Clone(students),
		universities:   slices.Clone(universities),
		studentView:    filter.StudentView.WithOptions(filter.SelectorCountry, countries),
		universityView: filter.UniversityView.WithOptions(filter.SelectorCountry, countries),
	}
}

// Countries lists the distinct countries of students then universities in
// first-seen order
func Countries(students []models.Student, universities []models.University) []string {
	countries := []string{}
	add := func(c string) {
		if c != "" && !slices.Contains(countries, c) {
			countries = append(countries, c)
		}
	}
	for _, st := range students {
		add(st.Country)
	}
	for _, u := range universities {
		add(u.Country)
	}
	return countries
}

// Load reads the records from r and creates a directory over them
func Load(ctx context.Context, r Reader) (Service, error) {
	students, err := r.GetAllStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load students: %w", err)
	}
	universities, err := r.GetAllUniversities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load universities: %w", err)
	}
	return NewService(students, universities), nil
}

func (s *service) Students(c filter.Criteria) []models.Student {
	return s.studentView.Apply(s.students, c)
}

func (s *service) StudentOptions(selector string) []string {
	return s.studentView.Options(s.students, selector)
}

func (s *service) NextStudentOption(selector, current string) string {
	return s.studentView.Next(s.students, selector, current)
}

func (s *service) GetStudent(id int) (models.Student, error) {
	if id <= 0 {
		return models.Student{}, ErrInvalidStudentID
	}
	i := slices.IndexFunc(s.students, func(st models.Student) bool { return st.ID == id })
	if i < 0 {
		return models.Student{}, fmt.Errorf("%w: %d", ErrStudentNotFound, id)
	}
	return s.students[i], nil
}

func (s *service) StudentCount() int {
	return len(s.students)
}

func (s *service) Universities(c filter.Criteria) []models.University {
	return s.universityView.Apply(s.universities, c)
}

func (s *service) UniversityOptions(selector string) []string {
	return s.universityView.Options(s.universities, selector)
}

func (s *service) NextUniversityOption(selector, current string) string {
	return s.universityView.Next(s.universities, selector, current)
}

func (s *service) GetUniversity(id int) (models.University, error) {
	if id <= 0 {
		return models.University{}, ErrInvalidUniversityID
	}
	i := slices.IndexFunc(s.universities, func(u models.University) bool { return u.ID == id })
	if i < 0 {
		return models.University{}, fmt.Errorf("%w: %d", ErrUniversityNotFound, id)
	}
	u := s.universities[i]
	u.Intakes = slices.Clone(u.Intakes)
	return u, nil
}

func (s *service) UniversityStats() UniversityStats {
	stats := UniversityStats{Total: len(s.universities)}
	for _, u := range s.universities {
		if u.Partner {
			stats.Partners++
		}
		stats.Scholarships += u.Scholarships
		stats.StudentsPlaced += u.Students
	}
	return stats
}
