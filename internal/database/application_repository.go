package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/admitdesk/internal/models"
)

// ApplicationRepo reads pipeline stages and cards and records stage changes
type ApplicationRepo struct {
	db *sql.DB
}

// GetStages returns the pipeline stages in display order
func (r *ApplicationRepo) GetStages(ctx context.Context) ([]models.Stage, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, title, color FROM stages ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query stages: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "error", err)
		}
	}()

	stages := []models.Stage{}
	for rows.Next() {
		var st models.Stage
		var id string
		if err := rows.Scan(&id, &st.Title, &st.Color); err != nil {
			return nil, fmt.Errorf("failed to scan stage: %w", err)
		}
		st.ID = models.StageID(id)
		stages = append(stages, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stages: %w", err)
	}
	return stages, nil
}

// GetAllApplications returns every card, grouped by stage order and then by position
func (r *ApplicationRepo) GetAllApplications(ctx context.Context) ([]models.Application, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, a.student_name, a.university, a.program, a.deadline, a.priority,
		       a.documents, a.missing_docs, a.stage_id
		FROM applications a
		INNER JOIN stages s ON a.stage_id = s.id
		ORDER BY s.position, a.position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "error", err)
		}
	}()

	apps := []models.Application{}
	for rows.Next() {
		var a models.Application
		var docs, missing, stage string
		if err := rows.Scan(&a.ID, &a.StudentName, &a.University, &a.Program, &a.Deadline, &a.Priority,
			&docs, &missing, &stage); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		if a.Documents, err = decodeList(docs); err != nil {
			return nil, err
		}
		if a.MissingDocs, err = decodeList(missing); err != nil {
			return nil, err
		}
		a.Stage = models.StageID(stage)
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}
	return apps, nil
}

// SaveCardStage moves a card to the end of the target stage
func (r *ApplicationRepo) SaveCardStage(ctx context.Context, cardID int, stage models.StageID) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM stages WHERE id = ?", string(stage)).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to look up stage: %w", err)
		}
		if exists == 0 {
			return fmt.Errorf("%w: %q", models.ErrStageNotFound, stage)
		}

		var next int
		err = tx.QueryRowContext(ctx,
			"SELECT COALESCE(MAX(position), -1) + 1 FROM applications WHERE stage_id = ?",
			string(stage)).Scan(&next)
		if err != nil {
			return fmt.Errorf("failed to compute card position: %w", err)
		}

		result, err := tx.ExecContext(ctx,
			"UPDATE applications SET stage_id = ?, position = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
			string(stage), next, cardID)
		if err != nil {
			return fmt.Errorf("failed to update card stage: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: %d", models.ErrCardNotFound, cardID)
		}
		return nil
	})
}
