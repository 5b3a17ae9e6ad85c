package handlers

import (
	"net/http"

	"github.com/kozaktomas/photo-grouper/internal/cluster"
	"github.com/kozaktomas/photo-grouper/internal/config"
	"github.com/kozaktomas/photo-grouper/internal/relationship"
)

// StatsHandler serves the statistics of the current relationship sets.
type StatsHandler struct {
	config *config.Config
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(cfg *config.Config) *StatsHandler {
	return &StatsHandler{config: cfg}
}

// StatsResponse combines the run statistics with the thresholds the run
// was computed with.
type StatsResponse struct {
	Statistics cluster.Statistics      `json:"statistics"`
	Thresholds relationship.Thresholds `json:"thresholds"`
}

// Get returns the statistics block of the current output.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	sets := loadSets(w, h.config)
	if sets == nil {
		return
	}

	respondJSON(w, http.StatusOK, StatsResponse{
		Statistics: sets.Statistics,
		Thresholds: sets.Thresholds,
	})
}
