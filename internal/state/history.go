package state

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Invocation is one recorded task run.
type Invocation struct {
	Operation string
	Args      []string
	ExitCode  int
	Duration  time.Duration
	StartedAt time.Time
}

// HistoryStore records task invocations so `meetxctl history` can show what
// ran, when, and how it exited.
type HistoryStore struct {
	db *DB
}

// NewHistoryStore creates the store and ensures the table exists.
func NewHistoryStore(ctx context.Context, database *DB) (*HistoryStore, error) {
	if database == nil {
		return nil, fmt.Errorf("history: database is required")
	}
	s := &HistoryStore{db: database}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

var defaultHistoryStore *HistoryStore

func DefaultHistoryStore(ctx context.Context) (*HistoryStore, error) {
	if defaultHistoryStore == nil {
		db, err := OpenDefault(ctx)
		if err != nil {
			return nil, err
		}
		defaultHistoryStore, err = NewHistoryStore(ctx, db)
		if err != nil {
			return nil, err
		}
	}

	return defaultHistoryStore, nil
}

func (s *HistoryStore) ensureSchema(ctx context.Context) error {
	const createTable = `
CREATE TABLE IF NOT EXISTS task_history (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	operation   TEXT NOT NULL,
	args        TEXT NOT NULL,
	exit_code   INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	started_at  INTEGER NOT NULL
);
`
	_, err := s.db.Raw().ExecContext(ctx, createTable)
	if err != nil {
		return fmt.Errorf("history: ensure schema: %w", err)
	}
	return nil
}

// Record appends one invocation. Args are stored as a JSON array so values
// containing spaces (msg="add users") survive the round trip intact.
func (s *HistoryStore) Record(ctx context.Context, inv Invocation) error {
	args := inv.Args
	if args == nil {
		args = []string{}
	}
	encoded, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("history: encode args: %w", err)
	}

	const stmt = `
INSERT INTO task_history (operation, args, exit_code, duration_ms, started_at)
VALUES (?, ?, ?, ?, ?);
`
	_, err = s.db.Raw().ExecContext(ctx, stmt,
		inv.Operation,
		string(encoded),
		inv.ExitCode,
		inv.Duration.Milliseconds(),
		inv.StartedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("history: record: %w", err)
	}
	return nil
}

// Recent returns up to limit invocations, newest first.
func (s *HistoryStore) Recent(ctx context.Context, limit int) ([]Invocation, error) {
	if limit <= 0 {
		limit = 20
	}

	const q = `
SELECT operation, args, exit_code, duration_ms, started_at
FROM task_history
ORDER BY id DESC
LIMIT ?;
`
	rows, err := s.db.Raw().QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("history: recent: %w", err)
	}
	defer rows.Close()

	var out []Invocation
	for rows.Next() {
		var inv Invocation
		var args string
		var durationMs, startedUnix int64
		if err := rows.Scan(&inv.Operation, &args, &inv.ExitCode, &durationMs, &startedUnix); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		var decoded []string
		if err := json.Unmarshal([]byte(args), &decoded); err != nil {
			return nil, fmt.Errorf("history: decode args: %w", err)
		}
		if len(decoded) > 0 {
			inv.Args = decoded
		}
		inv.Duration = time.Duration(durationMs) * time.Millisecond
		inv.StartedAt = time.Unix(startedUnix, 0).UTC()
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: rows: %w", err)
	}
	return out, nil
}
