// Package database defines the storage interfaces for clustering run
// history. The PostgreSQL backend registers itself here to avoid import
// cycles; everything stays functional without a database configured.
package database

import (
	"context"
	"fmt"
)

// RunWriter records finished clustering runs.
type RunWriter interface {
	Save(ctx context.Context, run Run) error
}

// RunReader lists recorded clustering runs, most recent first.
type RunReader interface {
	List(ctx context.Context, limit int) ([]Run, error)
}

// RunStore combines both sides of the run history.
type RunStore interface {
	RunWriter
	RunReader
}

var (
	runStore            func() RunStore
	postgresInitialized bool
)

// RegisterRunStore registers the RunStore constructor. Called by the
// postgres package after a successful Initialize.
func RegisterRunStore(store func() RunStore) {
	runStore = store
	postgresInitialized = true
}

// IsInitialized returns whether the PostgreSQL backend has been initialized.
func IsInitialized() bool {
	return postgresInitialized
}

// GetRunStore returns the registered RunStore.
func GetRunStore(ctx context.Context) (RunStore, error) {
	if !postgresInitialized {
		return nil, fmt.Errorf("PostgreSQL backend not initialized: DATABASE_URL is required")
	}
	if runStore == nil {
		return nil, fmt.Errorf("PostgreSQL run store not registered")
	}
	return runStore(), nil
}
