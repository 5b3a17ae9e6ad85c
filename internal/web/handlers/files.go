package handlers

import (
	"net/http"
	"strconv"

	"github.com/kozaktomas/photo-grouper/internal/config"
	"github.com/kozaktomas/photo-grouper/internal/constants"
	"github.com/kozaktomas/photo-grouper/internal/relationship"
)

// FilesHandler serves the file index.
type FilesHandler struct {
	config *config.Config
}

// NewFilesHandler creates a new files handler.
func NewFilesHandler(cfg *config.Config) *FilesHandler {
	return &FilesHandler{config: cfg}
}

// FilesResponse is a page of the file index.
type FilesResponse struct {
	Files  []relationship.IndexedFile `json:"files"`
	Total  int                        `json:"total"`
	Limit  int                        `json:"limit"`
	Offset int                        `json:"offset"`
}

// queryInt parses a positive integer query parameter with a default.
func queryInt(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n
	}
	return defaultVal
}

// List returns the file index, paginated by limit/offset.
func (h *FilesHandler) List(w http.ResponseWriter, r *http.Request) {
	sets := loadSets(w, h.config)
	if sets == nil {
		return
	}

	limit := queryInt(r, "limit", constants.DefaultPageSize)
	offset := queryInt(r, "offset", 0)

	files := sets.Files()
	total := len(files)

	if offset > total {
		offset = total
	}
	end := offset + limit
	if limit == 0 || end > total {
		end = total
	}

	respondJSON(w, http.StatusOK, FilesResponse{
		Files:  files[offset:end],
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}
