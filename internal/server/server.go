// Package server implements the batchwatch HTTP API server.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/batchwatch/batchwatch/internal/engine"
	"github.com/batchwatch/batchwatch/internal/provider"
	"github.com/batchwatch/batchwatch/internal/publish"
	"github.com/batchwatch/batchwatch/pkg/types"
)

const defaultMaxBody = 1 << 20 // 1 MiB

// Server is the batchwatch HTTP API server.
type Server struct {
	engine    *engine.Engine
	store     provider.ReportStore
	pinger    provider.Pinger
	publisher publish.Publisher
	router    chi.Router
	logger    *slog.Logger
	addr      string
	srv       *http.Server
}

// New creates a new HTTP server.
func New(cfg *types.ServerConfig, eng *engine.Engine, store provider.ReportStore, pinger provider.Pinger, pub publish.Publisher, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	maxBody := cfg.MaxRequestBody
	if maxBody <= 0 {
		maxBody = defaultMaxBody
	}

	s := &Server{
		engine:    eng,
		store:     store,
		pinger:    pinger,
		publisher: pub,
		logger:    logger,
		addr:      cfg.Addr,
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(APIKeyMiddleware(cfg.APIKey))
	r.Use(MaxBodyMiddleware(maxBody))
	r.Use(middleware.SetHeader("Content-Type", "application/json"))

	s.router = r
	s.registerRoutes(r)
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	s.srv = &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	s.logger.Info("batchwatch server listening", "addr", s.addr)
	return s.srv.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
