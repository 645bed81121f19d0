package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema
func runMigrations(ctx context.Context, db *sql.DB) error {
	schema := `
	-- Pipeline stages, in display order
	CREATE TABLE IF NOT EXISTS stages (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS students (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		stage TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		university TEXT NOT NULL DEFAULT '',
		gpa TEXT NOT NULL DEFAULT '',
		ielts TEXT NOT NULL DEFAULT '',
		join_date TEXT NOT NULL DEFAULT '',
		counselor TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS universities (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		country TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		logo TEXT NOT NULL DEFAULT '',
		partner BOOLEAN NOT NULL DEFAULT 0,
		ranking INTEGER NOT NULL DEFAULT 0,
		students INTEGER NOT NULL DEFAULT 0,
		programs INTEGER NOT NULL DEFAULT 0,
		scholarships INTEGER NOT NULL DEFAULT 0,
		tuition_range TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		application_deadline TEXT NOT NULL DEFAULT '',
		intakes TEXT NOT NULL DEFAULT '[]',
		position INTEGER NOT NULL
	);

	-- Pipeline cards. position orders cards within a stage.
	CREATE TABLE IF NOT EXISTS applications (
		id INTEGER PRIMARY KEY,
		student_name TEXT NOT NULL,
		university TEXT NOT NULL DEFAULT '',
		program TEXT NOT NULL DEFAULT '',
		deadline TEXT NOT NULL DEFAULT '',
		priority TEXT NOT NULL DEFAULT '',
		documents TEXT NOT NULL DEFAULT '[]',
		missing_docs TEXT NOT NULL DEFAULT '[]',
		stage_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (stage_id) REFERENCES stages(id)
	);

	CREATE INDEX IF NOT EXISTS idx_applications_stage
	ON applications(stage_id, position);

	CREATE TABLE IF NOT EXISTS activities (
		id INTEGER PRIMARY KEY,
		student TEXT NOT NULL DEFAULT '',
		action TEXT NOT NULL DEFAULT '',
		time TEXT NOT NULL DEFAULT '',
		kind TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS notifications (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		level TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL
	);

	-- KPI trend labels keyed by metric name
	CREATE TABLE IF NOT EXISTS trends (
		metric TEXT PRIMARY KEY,
		label TEXT NOT NULL DEFAULT ''
	);
	`

	_, err := db.ExecContext(ctx, schema)
	return err
}
