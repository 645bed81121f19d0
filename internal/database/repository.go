package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/admitdesk/internal/seed"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*StudentRepo
	*UniversityRepo
	*ApplicationRepo
	*FeedRepo
	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StudentRepo:     &StudentRepo{db: db},
		UniversityRepo:  &UniversityRepo{db: db},
		ApplicationRepo: &ApplicationRepo{db: db},
		FeedRepo:        &FeedRepo{db: db},
		db:              db,
	}
}

var _ DataStore = (*Repository)(nil)

// Seed loads a dataset into an empty database in a single transaction.
// It is a no-op when stages already exist.
func (r *Repository) Seed(ctx context.Context, ds *seed.Dataset) error {
	var existing int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM stages").Scan(&existing); err != nil {
		return fmt.Errorf("failed to count stages: %w", err)
	}
	if existing > 0 {
		return nil
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := insertStages(ctx, tx, ds); err != nil {
			return err
		}
		if err := insertStudents(ctx, tx, ds); err != nil {
			return err
		}
		if err := insertUniversities(ctx, tx, ds); err != nil {
			return err
		}
		if err := insertApplications(ctx, tx, ds); err != nil {
			return err
		}
		return insertFeed(ctx, tx, ds)
	})
}

// LoadDataset reads every record back out of the database
func (r *Repository) LoadDataset(ctx context.Context) (*seed.Dataset, error) {
	ds := &seed.Dataset{}
	var err error

	if ds.Stages, err = r.GetStages(ctx); err != nil {
		return nil, err
	}
	if ds.Students, err = r.GetAllStudents(ctx); err != nil {
		return nil, err
	}
	if ds.Universities, err = r.GetAllUniversities(ctx); err != nil {
		return nil, err
	}
	if ds.Applications, err = r.GetAllApplications(ctx); err != nil {
		return nil, err
	}
	if ds.Activities, err = r.GetActivities(ctx); err != nil {
		return nil, err
	}
	if ds.Notifications, err = r.GetNotifications(ctx); err != nil {
		return nil, err
	}
	if ds.Trends, err = r.GetTrends(ctx); err != nil {
		return nil, err
	}
	return ds, nil
}

func insertStages(ctx context.Context, tx *sql.Tx, ds *seed.Dataset) error {
	for i, st := range ds.Stages {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO stages (id, title, color, position) VALUES (?, ?, ?, ?)",
			string(st.ID), st.Title, st.Color, i)
		if err != nil {
			return fmt.Errorf("failed to insert stage %s: %w", st.ID, err)
		}
	}
	return nil
}

func insertStudents(ctx context.Context, tx *sql.Tx, ds *seed.Dataset) error {
	for i, s := range ds.Students {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO students (id, name, email, phone, status, stage, country, university, gpa, ielts, join_date, counselor, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.ID, s.Name, s.Email, s.Phone, s.Status, s.Stage, s.Country, s.University,
			s.GPA, s.IELTS, s.JoinDate, s.Counselor, i)
		if err != nil {
			return fmt.Errorf("failed to insert student %d: %w", s.ID, err)
		}
	}
	return nil
}

func insertUniversities(ctx context.Context, tx *sql.Tx, ds *seed.Dataset) error {
	for i, u := range ds.Universities {
		intakes, err := encodeList(u.Intakes)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO universities (id, name, country, city, logo, partner, ranking, students, programs, scholarships,
			 tuition_range, description, website, application_deadline, intakes, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			u.ID, u.Name, u.Country, u.City, u.Logo, u.Partner, u.Ranking, u.Students, u.Programs, u.Scholarships,
			u.TuitionRange, u.Description, u.Website, u.ApplicationDeadline, intakes, i)
		if err != nil {
			return fmt.Errorf("failed to insert university %d: %w", u.ID, err)
		}
	}
	return nil
}

func insertApplications(ctx context.Context, tx *sql.Tx, ds *seed.Dataset) error {
	for i, a := range ds.Applications {
		docs, err := encodeList(a.Documents)
		if err != nil {
			return err
		}
		missing, err := encodeList(a.MissingDocs)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO applications (id, student_name, university, program, deadline, priority, documents, missing_docs, stage_id, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.StudentName, a.University, a.Program, a.Deadline, a.Priority, docs, missing, string(a.Stage), i)
		if err != nil {
			return fmt.Errorf("failed to insert application %d: %w", a.ID, err)
		}
	}
	return nil
}

func insertFeed(ctx context.Context, tx *sql.Tx, ds *seed.Dataset) error {
	for i, a := range ds.Activities {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO activities (id, student, action, time, kind, position) VALUES (?, ?, ?, ?, ?, ?)",
			a.ID, a.Student, a.Action, a.Time, a.Kind, i)
		if err != nil {
			return fmt.Errorf("failed to insert activity %d: %w", a.ID, err)
		}
	}

	for i, n := range ds.Notifications {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO notifications (id, title, message, level, position) VALUES (?, ?, ?, ?, ?)",
			n.ID, n.Title, n.Message, n.Level, i)
		if err != nil {
			return fmt.Errorf("failed to insert notification %d: %w", n.ID, err)
		}
	}

	trends := map[string]string{
		trendTotalStudents:         ds.Trends.TotalStudents,
		trendActiveApplications:    ds.Trends.ActiveApplications,
		trendPartnerUniversities:   ds.Trends.PartnerUniversities,
		trendAvailableScholarships: ds.Trends.AvailableScholarships,
	}
	for metric, label := range trends {
		_, err := tx.ExecContext(ctx, "INSERT INTO trends (metric, label) VALUES (?, ?)", metric, label)
		if err != nil {
			return fmt.Errorf("failed to insert trend %s: %w", metric, err)
		}
	}
	return nil
}
