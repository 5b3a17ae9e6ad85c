package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/photo-grouper/internal/config"
)

// ClustersHandler serves the computed equivalence classes.
type ClustersHandler struct {
	config *config.Config
}

// NewClustersHandler creates a new clusters handler.
func NewClustersHandler(cfg *config.Config) *ClustersHandler {
	return &ClustersHandler{config: cfg}
}

// Cluster is one equivalence class with member paths resolved.
type Cluster struct {
	Keys  []int    `json:"keys"`
	Paths []string `json:"paths"`
}

// ClustersResponse lists the classes of one kind.
type ClustersResponse struct {
	Kind     string    `json:"kind"`
	Count    int       `json:"count"`
	Clusters []Cluster `json:"clusters"`
}

// List returns the classes for a kind: time (T'), location (L') or event (E').
func (h *ClustersHandler) List(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	sets := loadSets(w, h.config)
	if sets == nil {
		return
	}

	var classes [][]int
	switch kind {
	case "time":
		classes = sets.TimeSets
	case "location":
		classes = sets.LocationSets
	case "event":
		classes = sets.EventSets
	default:
		respondError(w, http.StatusBadRequest, "unknown cluster kind (expected time, location or event)")
		return
	}

	resp := ClustersResponse{
		Kind:     kind,
		Count:    len(classes),
		Clusters: make([]Cluster, 0, len(classes)),
	}
	for _, members := range classes {
		c := Cluster{Keys: members, Paths: make([]string, 0, len(members))}
		for _, key := range members {
			path, _ := sets.Path(key)
			c.Paths = append(c.Paths, path)
		}
		resp.Clusters = append(resp.Clusters, c)
	}

	respondJSON(w, http.StatusOK, resp)
}
