package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/photo-grouper/internal/cluster"
	"github.com/kozaktomas/photo-grouper/internal/config"
	"github.com/kozaktomas/photo-grouper/internal/relationship"
)

// testConfig creates a minimal config pointing at a results directory.
func testConfig(resultsDir string) *config.Config {
	return &config.Config{
		Paths: config.PathsConfig{ResultsDirectory: resultsDir},
	}
}

// writeTestSets writes a small relationship sets file into a temp results
// directory and returns the directory.
func writeTestSets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	sets := &relationship.Sets{
		FileIndex: map[string]string{
			"0": "a.jpg",
			"1": "b.jpg",
			"2": "c.jpg",
		},
		TimeSets:     [][]int{{0, 1}},
		LocationSets: [][]int{{0, 1, 2}},
		EventSets:    [][]int{{0, 1}},
		Thresholds:   relationship.Thresholds{TimeSeconds: 300, LocationKm: 0.1},
		Statistics: cluster.Statistics{
			TotalFiles:         3,
			FilesWithTimestamp: 3,
			FilesWithGeotag:    3,
			TimeSets:           1,
			LocationSets:       1,
			EventSets:          1,
		},
	}

	if err := relationship.Write(filepath.Join(dir, relationship.FileName), sets); err != nil {
		t.Fatalf("failed to write test sets: %v", err)
	}
	return dir
}

// requestWithChiParams creates a request with chi URL parameters.
func requestWithChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// parseJSONResponse parses a JSON response body into the target type.
func parseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nBody: %s", err, recorder.Body.String())
	}
}

// assertStatusCode checks if the response has the expected status code.
func assertStatusCode(t *testing.T, recorder *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if recorder.Code != expected {
		t.Errorf("expected status %d, got %d\nBody: %s", expected, recorder.Code, recorder.Body.String())
	}
}

// assertContentType checks if the response has the expected content type.
func assertContentType(t *testing.T, recorder *httptest.ResponseRecorder, expected string) {
	t.Helper()
	if ct := recorder.Header().Get("Content-Type"); ct != expected {
		t.Errorf("expected content type %q, got %q", expected, ct)
	}
}
