// Package dashboard computes the headline figures and feeds of the dashboard page
package dashboard

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/admitdesk/internal/models"
	"github.com/thenoetrevino/admitdesk/internal/seed"
	"github.com/thenoetrevino/admitdesk/internal/services/directory"
	"github.com/thenoetrevino/admitdesk/internal/services/pipeline"
)

// KPI titles
const (
	KPITotalStudents         = "Total Students"
	KPIActiveApplications    = "Active Applications"
	KPIPartnerUniversities   = "Partner Universities"
	KPIAvailableScholarships = "Available Scholarships"
)

// FeedReader loads the dashboard feeds
type FeedReader interface {
	GetActivities(ctx context.Context) ([]models.Activity, error)
	GetNotifications(ctx context.Context) ([]models.Notification, error)
	GetTrends(ctx context.Context) (seed.Trends, error)
}

// Overview is everything the dashboard page shows
type Overview struct {
	KPIs          []models.KPI          `json:"kpis"`
	Pipeline      []models.StageSummary `json:"pipeline"`
	Activities    []models.Activity     `json:"activities"`
	Notifications []models.Notification `json:"notifications"`
}

// Service defines the dashboard read operations
type Service interface {
	KPIs() []models.KPI
	PipelineSummary() []models.StageSummary
	Activities() []models.Activity
	Notifications() []models.Notification
	Overview() Overview
}

// service implements Service interface
type service struct {
	directory     directory.Service
	pipeline      pipeline.Service
	activities    []models.Activity
	notifications []models.Notification
	trends        seed.Trends
}

// Load reads the feeds from r and creates a dashboard over the live directory and board
func Load(ctx context.Context, r FeedReader, dir directory.Service, board pipeline.Service) (Service, error) {
	activities, err := r.GetActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}
	notifications, err := r.GetNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}
	trends, err := r.GetTrends(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load trends: %w", err)
	}

	return &service{
		directory:     dir,
		pipeline:      board,
		activities:    activities,
		notifications: notifications,
		trends:        trends,
	}, nil
}

// KPIs computes the four headline figures from the current records.
// Active applications are the cards that have not reached the enrolled stage.
func (s *service) KPIs() []models.KPI {
	active := 0
	for _, sum := range s.pipeline.Summary() {
		if sum.Stage.ID != models.StageEnrolled {
			active += sum.Count
		}
	}
	stats := s.directory.UniversityStats()

	return []models.KPI{
		{Title: KPITotalStudents, Value: s.directory.StudentCount(), Change: s.trends.TotalStudents},
		{Title: KPIActiveApplications, Value: active, Change: s.trends.ActiveApplications},
		{Title: KPIPartnerUniversities, Value: stats.Partners, Change: s.trends.PartnerUniversities},
		{Title: KPIAvailableScholarships, Value: stats.Scholarships, Change: s.trends.AvailableScholarships},
	}
}

func (s *service) PipelineSummary() []models.StageSummary {
	return s.pipeline.Summary()
}

func (s *service) Activities() []models.Activity {
	return s.activities
}

func (s *service) Notifications() []models.Notification {
	return s.notifications
}

func (s *service) Overview() Overview {
	return Overview{
		KPIs:          s.KPIs(),
		Pipeline:      s.PipelineSummary(),
		Activities:    s.Activities(),
		Notifications: s.Notifications(),
	}
}
