// Package mock provides mock implementations of database interfaces for testing.
package mock

import (
	"context"
	"sync"

	"github.com/kozaktomas/photo-grouper/internal/database"
)

// RunStore is an in-memory implementation of database.RunStore.
type RunStore struct {
	mu   sync.RWMutex
	runs []database.Run

	// Error injection
	SaveError error
	ListError error
}

// NewRunStore creates a new mock run store.
func NewRunStore() *RunStore {
	return &RunStore{}
}

// Save stores a run in memory.
func (m *RunStore) Save(ctx context.Context, run database.Run) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, run)
	return nil
}

// List returns stored runs, most recently saved first.
func (m *RunStore) List(ctx context.Context, limit int) ([]database.Run, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]database.Run, 0, len(m.runs))
	for i := len(m.runs) - 1; i >= 0; i-- {
		out = append(out, m.runs[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
