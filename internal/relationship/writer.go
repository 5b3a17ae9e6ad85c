package relationship

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/renameio"
)

// ErrNotFound is returned when no relationship sets have been written yet.
var ErrNotFound = errors.New("relationship sets not found")

// Write serializes the document and replaces the target atomically: the
// bytes go to a temp file in the same directory which is then renamed over
// the target, so readers never observe a partial file. On any failure the
// previous output stays untouched.
func Write(path string, sets *Sets) error {
	data, err := json.MarshalIndent(sets, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling relationship sets: %w", err)
	}
	data = append(data, '\n')

	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Read loads a previously written document.
func Read(path string) (*Sets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var sets Sets
	if err := json.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &sets, nil
}
