// Package inmemory keeps validation history in memory, please use NewStorage
// to create a new object of this type. Used as the default store and in
// tests.
package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/banzg00/bpml/pkg/storage"
)

type Storage struct {
	mu   sync.RWMutex
	runs map[string]storage.ValidationRun
}

var _ storage.Storage = &Storage{}

func NewStorage() *Storage {
	return &Storage{
		runs: make(map[string]storage.ValidationRun),
	}
}

func (mem *Storage) SaveValidationRun(ctx context.Context, run storage.ValidationRun) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	mem.runs[run.ID] = run
	return nil
}

func (mem *Storage) FindValidationRuns(ctx context.Context, projectName string, limit int) ([]storage.ValidationRun, error) {
	mem.mu.RLock()
	defer mem.mu.RUnlock()
	res := make([]storage.ValidationRun, 0, len(mem.runs))
	for _, run := range mem.runs {
		if projectName != "" && run.ProjectName != projectName {
			continue
		}
		res = append(res, run)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].StartedAt.After(res[j].StartedAt)
	})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (mem *Storage) FindLatestRunByChecksum(ctx context.Context, checksum string) (storage.ValidationRun, bool, error) {
	mem.mu.RLock()
	defer mem.mu.RUnlock()
	var latest storage.ValidationRun
	found := false
	for _, run := range mem.runs {
		if run.Checksum != checksum {
			continue
		}
		if !found || run.StartedAt.After(latest.StartedAt) {
			latest = run
			found = true
		}
	}
	return latest, found, nil
}

func (mem *Storage) Close() error {
	return nil
}
