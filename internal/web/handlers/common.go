package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/kozaktomas/photo-grouper/internal/config"
	"github.com/kozaktomas/photo-grouper/internal/relationship"
)

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// loadSets reads the current relationship sets for a request. A missing
// output file means the clustering stage has not run yet and maps to 404.
func loadSets(w http.ResponseWriter, cfg *config.Config) *relationship.Sets {
	path := filepath.Join(cfg.Paths.ResultsDirectory, relationship.FileName)
	sets, err := relationship.Read(path)
	if err != nil {
		if errors.Is(err, relationship.ErrNotFound) {
			respondError(w, http.StatusNotFound, "relationship sets not computed yet")
		} else {
			respondError(w, http.StatusInternalServerError, "failed to read relationship sets")
		}
		return nil
	}
	return sets
}

// HealthCheck handles the health check endpoint.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
