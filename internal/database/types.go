package database

import "time"

// Run is one recorded clustering run: the thresholds it used and the
// statistics it produced.
type Run struct {
	ID                   string
	SnapshotPath         string
	StartedAt            time.Time
	FinishedAt           time.Time
	TimeThresholdSeconds float64
	LocationThresholdKm  float64
	TotalFiles           int
	FilesWithTimestamp   int
	FilesWithGeotag      int
	TimeSets             int
	LocationSets         int
	EventSets            int
}
