package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/admitdesk/internal/models"
	"github.com/thenoetrevino/admitdesk/internal/seed"
)

// Trend metric keys
const (
	trendTotalStudents         = "total_students"
	trendActiveApplications    = "active_applications"
	trendPartnerUniversities   = "partner_universities"
	trendAvailableScholarships = "available_scholarships"
)

// FeedRepo reads the dashboard activity feed, notifications and KPI trends
type FeedRepo struct {
	db *sql.DB
}

// GetActivities returns the recent activity feed in seed order
func (r *FeedRepo) GetActivities(ctx context.Context) ([]models.Activity, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, student, action, time, kind FROM activities ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "error", err)
		}
	}()

	activities := []models.Activity{}
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Student, &a.Action, &a.Time, &a.Kind); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}
	return activities, nil
}

// GetNotifications returns dashboard notifications in seed order
func (r *FeedRepo) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, title, message, level FROM notifications ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "error", err)
		}
	}()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Level); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}
	return notifications, nil
}

// GetTrends returns the KPI trend labels
func (r *FeedRepo) GetTrends(ctx context.Context) (seed.Trends, error) {
	var trends seed.Trends
	rows, err := r.db.QueryContext(ctx, "SELECT metric, label FROM trends")
	if err != nil {
		return trends, fmt.Errorf("failed to query trends: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "error", err)
		}
	}()

	for rows.Next() {
		var metric, label string
		if err := rows.Scan(&metric, &label); err != nil {
			return trends, fmt.Errorf("failed to scan trend: %w", err)
		}
		switch metric {
		case trendTotalStudents:
			trends.TotalStudents = label
		case trendActiveApplications:
			trends.ActiveApplications = label
		case trendPartnerUniversities:
			trends.PartnerUniversities = label
		case trendAvailableScholarships:
			trends.AvailableScholarships = label
		}
	}
	if err := rows.Err(); err != nil {
		return trends, fmt.Errorf("error iterating trends: %w", err)
	}
	return trends, nil
}
