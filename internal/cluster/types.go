// Package cluster computes the T', L' and E' relationship sets: equivalence
// classes of files that are potentially co-temporal, co-located, or both,
// using threshold proximity and transitive closure.
package cluster

import (
	"time"

	"github.com/kozaktomas/photo-grouper/internal/metadata"
)

// FileRecord is one file with its canonical resolved metadata. Keys are
// dense integers starting at 0, assigned in snapshot order and stable for
// the run. Files missing both values still get a key so later stages can
// address them.
type FileRecord struct {
	Key     int
	Path    string
	TakenAt *time.Time
	Geotag  *metadata.Geotag
}

// Thresholds are the hard proximity cutoffs. Both boundaries are inclusive.
type Thresholds struct {
	TimeSeconds float64
	LocationKm  float64
}

// Statistics summarizes a clustering run. Purely informational.
type Statistics struct {
	TotalFiles         int `json:"total_files"`
	FilesWithTimestamp int `json:"files_with_timestamp"`
	FilesWithGeotag    int `json:"files_with_geotag"`
	TimeSets           int `json:"T_prime_sets"`
	LocationSets       int `json:"L_prime_sets"`
	EventSets          int `json:"E_prime_sets"`
}

// Result holds the computed relationship sets. Each class is a sorted list
// of at least two distinct file keys; classes are ordered by first member.
type Result struct {
	Files           []FileRecord
	TimeClasses     [][]int // T'
	LocationClasses [][]int // L'
	EventClasses    [][]int // E'
	Stats           Statistics
}

// BuildRecords assigns dense keys to every file in the snapshot (in document
// order) and resolves canonical metadata for each.
func BuildRecords(snap *metadata.Snapshot, resolver *metadata.Resolver) []FileRecord {
	records := make([]FileRecord, 0, len(snap.Paths))
	for i, path := range snap.Paths {
		rec := FileRecord{Key: i, Path: path}

		bundle := snap.Bundles[path]
		if ts, ok := resolver.ResolveTimestamp(bundle); ok {
			rec.TakenAt = &ts
		}
		if geo, ok := resolver.ResolveGeotag(bundle); ok {
			rec.Geotag = &geo
		}

		records = append(records, rec)
	}
	return records
}
