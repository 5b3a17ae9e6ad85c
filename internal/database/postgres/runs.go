package postgres

import (
	"context"
	"fmt"

	"github.com/kozaktomas/photo-grouper/internal/database"
)

// RunRepository provides PostgreSQL-backed run history storage.
type RunRepository struct {
	pool *Pool
}

// NewRunRepository creates a new PostgreSQL run repository.
func NewRunRepository(pool *Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

// Save stores a finished clustering run.
func (r *RunRepository) Save(ctx context.Context, run database.Run) error {
	query := `
		INSERT INTO runs (
			id, snapshot_path, started_at, finished_at,
			time_threshold_seconds, location_threshold_km,
			total_files, files_with_timestamp, files_with_geotag,
			time_sets, location_sets, event_sets
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		run.ID, run.SnapshotPath, run.StartedAt, run.FinishedAt,
		run.TimeThresholdSeconds, run.LocationThresholdKm,
		run.TotalFiles, run.FilesWithTimestamp, run.FilesWithGeotag,
		run.TimeSets, run.LocationSets, run.EventSets,
	)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

// List returns recorded runs, most recent first.
func (r *RunRepository) List(ctx context.Context, limit int) ([]database.Run, error) {
	query := `
		SELECT id, snapshot_path, started_at, finished_at,
			time_threshold_seconds, location_threshold_km,
			total_files, files_with_timestamp, files_with_geotag,
			time_sets, location_sets, event_sets
		FROM runs
		ORDER BY finished_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []database.Run
	for rows.Next() {
		var run database.Run
		if err := rows.Scan(
			&run.ID, &run.SnapshotPath, &run.StartedAt, &run.FinishedAt,
			&run.TimeThresholdSeconds, &run.LocationThresholdKm,
			&run.TotalFiles, &run.FilesWithTimestamp, &run.FilesWithGeotag,
			&run.TimeSets, &run.LocationSets, &run.EventSets,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
