package history

import "time"

// Entry is one recorded pipeline run.
type Entry struct {
	ID           int64     `json:"id"`
	RunID        string    `json:"run_id"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
	Passed       bool      `json:"passed"`
	FoundCount   int       `json:"found_count"`
	MissingCount int       `json:"missing_count"`
	SkippedCount int       `json:"skipped_count"`
	CopiedCount  int       `json:"copied_count"`
	ReportPath   string    `json:"report_path,omitempty"`
	ErrorText    string    `json:"error_text,omitempty"`
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL UNIQUE,
	started_at DATETIME NOT NULL,
	finished_at DATETIME NOT NULL,
	passed BOOLEAN NOT NULL DEFAULT 0,
	found_count INTEGER NOT NULL DEFAULT 0,
	missing_count INTEGER NOT NULL DEFAULT 0,
	skipped_count INTEGER NOT NULL DEFAULT 0,
	copied_count INTEGER NOT NULL DEFAULT 0,
	report_path TEXT NOT NULL DEFAULT '',
	error_text TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
`
