package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/admitdesk/internal/models"
)

// UniversityRepo reads the university directory from the in-memory mirror
type UniversityRepo struct {
	db *sql.DB
}

// GetAllUniversities returns every university in seed order
func (r *UniversityRepo) GetAllUniversities(ctx context.Context) ([]models.University, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, country, city, logo, partner, ranking, students, programs, scholarships,
		       tuition_range, description, website, application_deadline, intakes
		FROM universities
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query universities: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "error", err)
		}
	}()

	universities := []models.University{}
	for rows.Next() {
		var u models.University
		var intakes string
		if err := rows.Scan(&u.ID, &u.Name, &u.Country, &u.City, &u.Logo, &u.Partner, &u.Ranking,
			&u.Students, &u.Programs, &u.Scholarships, &u.TuitionRange, &u.Description, &u.Website,
			&u.ApplicationDeadline, &intakes); err != nil {
			return nil, fmt.Errorf("failed to scan university: %w", err)
		}
		if u.Intakes, err = decodeList(intakes); err != nil {
			return nil, err
		}
		universities = append(universities, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating universities: %w", err)
	}
	return universities, nil
}
