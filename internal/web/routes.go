package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/photo-grouper/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	filesHandler := handlers.NewFilesHandler(s.config)
	clustersHandler := handlers.NewClustersHandler(s.config)
	statsHandler := handlers.NewStatsHandler(s.config)

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handlers.HealthCheck)
		r.Get("/stats", statsHandler.Get)
		r.Get("/files", filesHandler.List)
		r.Get("/clusters/{kind}", clustersHandler.List)
	})
}
