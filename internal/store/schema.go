package store

import (
	"database/sql"
	"fmt"
)

// migrate creates missing tables. All statements are idempotent; the
// schema is simple enough that additive migrations are handled by
// re-running CREATE IF NOT EXISTS on startup.
func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at DATETIME NOT NULL,
			data TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS session_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			task_id INTEGER NOT NULL,
			task_title TEXT NOT NULL,
			planned_minutes INTEGER NOT NULL,
			actual_minutes INTEGER NOT NULL,
			focus_score INTEGER NOT NULL,
			xp_gained INTEGER NOT NULL,
			completed_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS llm_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			provider TEXT NOT NULL,
			model TEXT NOT NULL,
			purpose TEXT NOT NULL,
			input_tokens INTEGER NOT NULL DEFAULT 0,
			output_tokens INTEGER NOT NULL DEFAULT 0,
			latency_ms INTEGER NOT NULL DEFAULT 0,
			success INTEGER NOT NULL,
			error_message TEXT,
			created_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_session_events_completed_at ON session_events(completed_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec schema: %w", err)
		}
	}
	return nil
}
