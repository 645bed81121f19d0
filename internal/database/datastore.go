package database

import (
	"context"

	"github.com/thenoetrevino/admitdesk/internal/models"
	"github.com/thenoetrevino/admitdesk/internal/seed"
)

// StudentRepository reads the student roster
type StudentRepository interface {
	GetAllStudents(ctx context.Context) ([]models.Student, error)
}

// UniversityRepository reads the university directory
type UniversityRepository interface {
	GetAllUniversities(ctx context.Context) ([]models.University, error)
}

// ApplicationRepository reads pipeline stages and cards and records stage changes
type ApplicationRepository interface {
	GetStages(ctx context.Context) ([]models.Stage, error)
	GetAllApplications(ctx context.Context) ([]models.Application, error)
	SaveCardStage(ctx context.Context, cardID int, stage models.StageID) error
}

// FeedRepository reads the dashboard feed
type FeedRepository interface {
	GetActivities(ctx context.Context) ([]models.Activity, error)
	GetNotifications(ctx context.Context) ([]models.Notification, error)
	GetTrends(ctx context.Context) (seed.Trends, error)
}

// DataStore defines the unified interface for all data operations.
// Consumers can depend on the smaller interfaces for clearer dependencies.
type DataStore interface {
	StudentRepository
	UniversityRepository
	ApplicationRepository
	FeedRepository
}
