// Package storage defines the persistence interface for validation history.
// Implementations live in subpackages; the engine works against the
// interface only.
package storage

import (
	"context"
	"time"
)

type RunOutcome string

const (
	RunOutcomePassed RunOutcome = "PASSED"
	RunOutcomeFailed RunOutcome = "FAILED"
)

// ValidationRun is one validation of one model document.
type ValidationRun struct {
	ID          string     `json:"id"`
	Key         int64      `json:"key"`
	ProjectName string     `json:"projectName"`
	Resource    string     `json:"resource,omitempty"`
	Checksum    string     `json:"checksum"`
	Outcome     RunOutcome `json:"outcome"`
	Error       string     `json:"error,omitempty"`
	ErrorKind   string     `json:"errorKind,omitempty"`
	StartedAt   time.Time  `json:"startedAt"`
	DurationMS  int64      `json:"durationMs"`
}

// Storage records validation runs.
type Storage interface {
	// SaveValidationRun persists the run, overwriting prior data stored
	// with the same ID.
	SaveValidationRun(ctx context.Context, run ValidationRun) error

	// FindValidationRuns returns runs for the given project name, newest
	// first. An empty projectName returns all runs.
	FindValidationRuns(ctx context.Context, projectName string, limit int) ([]ValidationRun, error)

	// FindLatestRunByChecksum returns the most recent run for a document
	// checksum, or found=false.
	FindLatestRunByChecksum(ctx context.Context, checksum string) (ValidationRun, bool, error)

	Close() error
}
