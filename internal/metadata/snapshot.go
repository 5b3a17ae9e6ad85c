// Package metadata loads the consolidated metadata snapshot produced by the
// earlier pipeline stages and resolves one canonical timestamp and geotag per
// file using source precedence.
package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Sentinel errors so callers can distinguish "stage not yet run" from a
// broken snapshot.
var (
	ErrSnapshotNotFound = errors.New("metadata snapshot not found")
	ErrSnapshotParse    = errors.New("metadata snapshot is not valid")
)

// SnapshotFileName is the file the metadata consolidation stage writes into
// the results directory.
const SnapshotFileName = "consolidated_metadata.json"

// Geotag is a WGS84 coordinate pair.
type Geotag struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SourceEntry is one observation of a file's metadata from a single source.
// Either field may be null in the snapshot.
type SourceEntry struct {
	Timestamp *string `json:"timestamp"`
	Geotag    *Geotag `json:"geotag"`
}

// Bundle maps a source name (exif, ffprobe, json, filename, propagated) to
// its list of entries for one file. Only entry [0] is ever consulted.
type Bundle map[string][]SourceEntry

// Snapshot is the parsed consolidated metadata document. Paths preserves the
// document's key order so file keys stay stable across identical inputs.
type Snapshot struct {
	Paths   []string
	Bundles map[string]Bundle
}

// Load reads and parses the consolidated metadata snapshot.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, path)
		}
		return nil, fmt.Errorf("opening snapshot %s: %w", path, err)
	}
	defer f.Close()

	// Token-level decoding keeps the document's key order, which encoding
	// into a map would lose.
	dec := json.NewDecoder(f)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSnapshotParse, path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: %s: top-level value is not an object", ErrSnapshotParse, path)
	}

	snap := &Snapshot{Bundles: make(map[string]Bundle)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSnapshotParse, path, err)
		}
		filePath, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s: unexpected key token", ErrSnapshotParse, path)
		}

		var bundle Bundle
		if err := dec.Decode(&bundle); err != nil {
			return nil, fmt.Errorf("%w: %s: entry %q: %v", ErrSnapshotParse, path, filePath, err)
		}

		if _, seen := snap.Bundles[filePath]; !seen {
			snap.Paths = append(snap.Paths, filePath)
		}
		snap.Bundles[filePath] = bundle
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSnapshotParse, path, err)
	}

	return snap, nil
}
