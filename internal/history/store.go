// Package history persists past run outcomes in a local SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store wraps the run-history database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create history dir: %w", err)
	}
	db, err := sql.Open("sqlite", "file:"+dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one run entry.
func (s *Store) Record(e Entry) error {
	_, err := s.db.Exec(`
		INSERT INTO runs (run_id, started_at, finished_at, passed, found_count,
			missing_count, skipped_count, copied_count, report_path, error_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.StartedAt.UTC(), e.FinishedAt.UTC(), e.Passed, e.FoundCount,
		e.MissingCount, e.SkippedCount, e.CopiedCount, e.ReportPath, e.ErrorText)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, run_id, started_at, finished_at, passed, found_count,
			missing_count, skipped_count, copied_count, report_path, error_text
		FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.RunID, &e.StartedAt, &e.FinishedAt, &e.Passed,
			&e.FoundCount, &e.MissingCount, &e.SkippedCount, &e.CopiedCount,
			&e.ReportPath, &e.ErrorText); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
