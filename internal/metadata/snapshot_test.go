package metadata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), SnapshotFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), SnapshotFileName))

	if !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeSnapshot(t, `{"a.jpg": {`)

	_, err := Load(path)

	if !errors.Is(err, ErrSnapshotParse) {
		t.Errorf("expected ErrSnapshotParse, got %v", err)
	}
}

func TestLoad_TopLevelNotObject(t *testing.T) {
	path := writeSnapshot(t, `["a.jpg"]`)

	_, err := Load(path)

	if !errors.Is(err, ErrSnapshotParse) {
		t.Errorf("expected ErrSnapshotParse, got %v", err)
	}
}

func TestLoad_PreservesDocumentOrder(t *testing.T) {
	path := writeSnapshot(t, `{
		"z.jpg": {"exif": [{"timestamp": "2024-01-15T10:30:00Z", "geotag": null}]},
		"a.jpg": {},
		"m.mp4": {"ffprobe": [{"timestamp": null, "geotag": null}]}
	}`)

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"z.jpg", "a.jpg", "m.mp4"}
	if len(snap.Paths) != len(want) {
		t.Fatalf("expected %d paths, got %d", len(want), len(snap.Paths))
	}
	for i, p := range want {
		if snap.Paths[i] != p {
			t.Errorf("path %d: expected %q, got %q", i, p, snap.Paths[i])
		}
	}
}

func TestLoad_ParsesEntries(t *testing.T) {
	path := writeSnapshot(t, `{
		"a.jpg": {
			"exif": [{"timestamp": "2024-01-15T10:30:00Z", "geotag": {"latitude": 50.08, "longitude": 14.43}}],
			"json": [{"timestamp": null, "geotag": null}]
		}
	}`)

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bundle := snap.Bundles["a.jpg"]
	if bundle == nil {
		t.Fatal("expected bundle for a.jpg")
	}

	exif := bundle["exif"]
	if len(exif) != 1 {
		t.Fatalf("expected 1 exif entry, got %d", len(exif))
	}
	if exif[0].Timestamp == nil || *exif[0].Timestamp != "2024-01-15T10:30:00Z" {
		t.Errorf("unexpected exif timestamp: %v", exif[0].Timestamp)
	}
	if exif[0].Geotag == nil || exif[0].Geotag.Latitude != 50.08 || exif[0].Geotag.Longitude != 14.43 {
		t.Errorf("unexpected exif geotag: %+v", exif[0].Geotag)
	}

	jsonEntries := bundle["json"]
	if len(jsonEntries) != 1 {
		t.Fatalf("expected 1 json entry, got %d", len(jsonEntries))
	}
	if jsonEntries[0].Timestamp != nil || jsonEntries[0].Geotag != nil {
		t.Errorf("expected null json entry, got %+v", jsonEntries[0])
	}
}

func TestLoad_EmptyDocument(t *testing.T) {
	path := writeSnapshot(t, `{}`)

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snap.Paths) != 0 {
		t.Errorf("expected no paths, got %v", snap.Paths)
	}
}
