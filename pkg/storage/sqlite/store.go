// Package sqlite persists validation history in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/banzg00/bpml/pkg/storage"
)

type Storage struct {
	db *sql.DB
}

var _ storage.Storage = &Storage{}

// NewStorage opens (and if needed creates) the database at dbPath.
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s := &Storage{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *Storage) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS validation_runs (
		id TEXT PRIMARY KEY,
		key INTEGER NOT NULL,
		project_name TEXT NOT NULL,
		resource TEXT,
		checksum TEXT NOT NULL,
		outcome TEXT NOT NULL,
		error TEXT,
		error_kind TEXT,
		started_at DATETIME NOT NULL,
		duration_ms INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_validation_runs_project ON validation_runs(project_name);
	CREATE INDEX IF NOT EXISTS idx_validation_runs_checksum ON validation_runs(checksum);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Storage) SaveValidationRun(ctx context.Context, run storage.ValidationRun) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO validation_runs
		(id, key, project_name, resource, checksum, outcome, error, error_kind, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Key, run.ProjectName, run.Resource, run.Checksum,
		string(run.Outcome), run.Error, run.ErrorKind, run.StartedAt.UTC().Format(time.RFC3339Nano), run.DurationMS,
	)
	if err != nil {
		return fmt.Errorf("failed to save validation run %s: %w", run.ID, err)
	}
	return nil
}

func (s *Storage) FindValidationRuns(ctx context.Context, projectName string, limit int) ([]storage.ValidationRun, error) {
	query := `
		SELECT id, key, project_name, resource, checksum, outcome, error, error_kind, started_at, duration_ms
		FROM validation_runs`
	args := []any{}
	if projectName != "" {
		query += ` WHERE project_name = ?`
		args = append(args, projectName)
	}
	query += ` ORDER BY started_at DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query validation runs: %w", err)
	}
	defer rows.Close()

	var res []storage.ValidationRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, run)
	}
	return res, rows.Err()
}

func (s *Storage) FindLatestRunByChecksum(ctx context.Context, checksum string) (storage.ValidationRun, bool, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, key, project_name, resource, checksum, outcome, error, error_kind, started_at, duration_ms
		FROM validation_runs
		WHERE checksum = ?
		ORDER BY started_at DESC
		LIMIT 1`, checksum)
	if err != nil {
		return storage.ValidationRun{}, false, fmt.Errorf("failed to query validation run: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return storage.ValidationRun{}, false, rows.Err()
	}
	run, err := scanRun(rows)
	if err != nil {
		return storage.ValidationRun{}, false, err
	}
	return run, true, nil
}

func scanRun(rows *sql.Rows) (storage.ValidationRun, error) {
	var run storage.ValidationRun
	var outcome, startedAt string
	var resource, runError, errorKind sql.NullString
	err := rows.Scan(&run.ID, &run.Key, &run.ProjectName, &resource, &run.Checksum,
		&outcome, &runError, &errorKind, &startedAt, &run.DurationMS)
	if err != nil {
		return run, fmt.Errorf("failed to scan validation run: %w", err)
	}
	run.Resource = resource.String
	run.Error = runError.String
	run.ErrorKind = errorKind.String
	run.Outcome = storage.RunOutcome(outcome)
	run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return run, fmt.Errorf("failed to parse started_at: %w", err)
	}
	return run, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
