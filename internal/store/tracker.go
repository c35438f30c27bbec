package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Attempt statuses recorded by the apply flow.
const (
	StatusSubmitted = "submitted"
	StatusFailed    = "failed"
)

// MigrateTracker creates the application-attempt ledger. The CSV store
// stays the record of truth for scraped postings; this table only keeps
// the apply flow from re-visiting forms it already touched.
func MigrateTracker(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS applications (
  apply_url TEXT PRIMARY KEY,
  status TEXT NOT NULL,
  error TEXT NOT NULL DEFAULT '',
  attempted_at TEXT NOT NULL
);`)
	if err != nil {
		return fmt.Errorf("migrate tracker: %w", err)
	}
	return nil
}

// RecordAttempt upserts the outcome of one application attempt.
func RecordAttempt(ctx context.Context, db *sql.DB, applyURL, status, errMsg string) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO applications(apply_url, status, error, attempted_at)
VALUES(?,?,?,?)
ON CONFLICT(apply_url) DO UPDATE SET
  status = excluded.status,
  error = excluded.error,
  attempted_at = excluded.attempted_at;`,
		applyURL, status, errMsg, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// HasAttempted reports whether an application was already submitted for
// applyURL. Failed attempts do not count; those are retried by hand.
func HasAttempted(ctx context.Context, db *sql.DB, applyURL string) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx, `
SELECT 1 FROM applications WHERE apply_url = ? AND status = ? LIMIT 1;`,
		applyURL, StatusSubmitted).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup attempt: %w", err)
	}
	return true, nil
}
