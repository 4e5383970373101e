package server

import (
	"expvar"

	"github.com/go-chi/chi/v5"

	"github.com/batchwatch/batchwatch/internal/server/handlers"
)

func (s *Server) registerRoutes(r chi.Router) {
	h := handlers.New(s.engine, s.store, s.pinger, s.publisher)
	h.SetLogger(s.logger)

	r.Route("/api", func(r chi.Router) {
		// Health and counters
		r.Get("/health", h.Health)
		r.Method("GET", "/metrics", expvar.Handler())

		// Audits
		r.Post("/audits/{date}", h.RunAudit)

		// Reports
		r.Get("/reports/{date}", h.GetReport)
	})
}
