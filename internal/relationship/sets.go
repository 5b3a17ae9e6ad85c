// Package relationship defines the relationship_sets.json document and its
// atomic writer. The file is written once per run and is read-only for
// every downstream stage.
package relationship

import (
	"sort"
	"strconv"

	"github.com/kozaktomas/photo-grouper/internal/cluster"
)

// FileName is the output file written into the results directory.
const FileName = "relationship_sets.json"

// Thresholds echoes the cutoffs a run was computed with.
type Thresholds struct {
	TimeSeconds float64 `json:"time_seconds"`
	LocationKm  float64 `json:"location_km"`
}

// Sets is the serialized relationship document. File keys appear as strings
// in file_index (JSON object keys must be strings); consumers parse them
// back to integers.
type Sets struct {
	FileIndex    map[string]string  `json:"file_index"`
	TimeSets     [][]int            `json:"T_prime"`
	LocationSets [][]int            `json:"L_prime"`
	EventSets    [][]int            `json:"E_prime"`
	Thresholds   Thresholds         `json:"thresholds"`
	Statistics   cluster.Statistics `json:"statistics"`
}

// IndexedFile is a decoded file_index entry.
type IndexedFile struct {
	Key  int    `json:"key"`
	Path string `json:"path"`
}

// FromResult builds the output document for a clustering result. Class
// lists are never nil so empty runs still serialize as [].
func FromResult(result *cluster.Result, th cluster.Thresholds) *Sets {
	sets := &Sets{
		FileIndex:    make(map[string]string, len(result.Files)),
		TimeSets:     [][]int{},
		LocationSets: [][]int{},
		EventSets:    [][]int{},
		Thresholds: Thresholds{
			TimeSeconds: th.TimeSeconds,
			LocationKm:  th.LocationKm,
		},
		Statistics: result.Stats,
	}
	for _, f := range result.Files {
		sets.FileIndex[strconv.Itoa(f.Key)] = f.Path
	}
	sets.TimeSets = append(sets.TimeSets, result.TimeClasses...)
	sets.LocationSets = append(sets.LocationSets, result.LocationClasses...)
	sets.EventSets = append(sets.EventSets, result.EventClasses...)
	return sets
}

// Files returns the file index as a list sorted by key. Entries with
// non-integer keys are skipped; a well-formed document has none.
func (s *Sets) Files() []IndexedFile {
	files := make([]IndexedFile, 0, len(s.FileIndex))
	for k, path := range s.FileIndex {
		key, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		files = append(files, IndexedFile{Key: key, Path: path})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Key < files[j].Key })
	return files
}

// Path resolves a file key back to its path.
func (s *Sets) Path(key int) (string, bool) {
	path, ok := s.FileIndex[strconv.Itoa(key)]
	return path, ok
}
