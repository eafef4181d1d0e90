// Package audit records non-secret operation metadata (what happened, when,
// outcome) for seedqrd. It never stores plaintext, passwords, or derived
// keys -- only the event kind, a caller-supplied correlation label, and the
// outcome.
package audit

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Log persists audit records to a local sqlite database.
type Log struct {
	db *sql.DB
}

// Record is one logged operation.
type Record struct {
	ID        string
	Operation string
	Label     string
	Outcome   string
	CreatedAt time.Time
}

// Open creates or opens the audit database at path.
func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("audit: open db: %w", err)
	}

	l := &Log{db: db}
	if err := l.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("audit: init schema: %w", err)
	}
	return l, nil
}

func (l *Log) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS operations (
		id TEXT PRIMARY KEY,
		operation TEXT NOT NULL,
		label TEXT,
		outcome TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_operations_operation ON operations(operation);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Close closes the underlying database connection.
func (l *Log) Close() error {
	return l.db.Close()
}

// Record inserts one audit row. operation is a short tag like "encrypt",
// "decrypt", "split", "reconstruct"; label is caller context that must never
// itself be secret material (e.g. a request ID, not a password or
// plaintext); outcome is "ok" or a short failure tag.
func (l *Log) Record(operation, label, outcome string) error {
	id := uuid.NewString()
	_, err := l.db.Exec(
		`INSERT INTO operations (id, operation, label, outcome, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, operation, label, outcome, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("audit: insert: %w", err)
	}
	return nil
}

// Recent returns the most recent n operation records, newest first.
func (l *Log) Recent(n int) ([]Record, error) {
	rows, err := l.db.Query(
		`SELECT id, operation, label, outcome, created_at FROM operations ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("audit: query: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var createdUnix int64
		if err := rows.Scan(&r.ID, &r.Operation, &r.Label, &r.Outcome, &createdUnix); err != nil {
			return nil, fmt.Errorf("audit: scan: %w", err)
		}
		r.CreatedAt = time.Unix(createdUnix, 0)
		out = append(out, r)
	}
	return out, rows.Err()
}
