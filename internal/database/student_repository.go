package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/admitdesk/internal/models"
)

// StudentRepo reads students from the in-memory mirror
type StudentRepo struct {
	db *sql.DB
}

// GetAllStudents returns every student in seed order
func (r *StudentRepo) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, phone, status, stage, country, university, gpa, ielts, join_date, counselor
		FROM students
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "error", err)
		}
	}()

	students := []models.Student{}
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Status, &s.Stage, &s.Country,
			&s.University, &s.GPA, &s.IELTS, &s.JoinDate, &s.Counselor); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}
	return students, nil
}
