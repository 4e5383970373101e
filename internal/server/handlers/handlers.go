// Package handlers implements HTTP request handlers for the batchwatch API.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/batchwatch/batchwatch/internal/engine"
	"github.com/batchwatch/batchwatch/internal/provider"
	"github.com/batchwatch/batchwatch/internal/publish"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	engine    *engine.Engine
	store     provider.ReportStore
	pinger    provider.Pinger
	publisher publish.Publisher
	logger    *slog.Logger
}

// New creates a new Handlers instance.
func New(eng *engine.Engine, store provider.ReportStore, pinger provider.Pinger, pub publish.Publisher) *Handlers {
	return &Handlers{
		engine:    eng,
		store:     store,
		pinger:    pinger,
		publisher: pub,
		logger:    slog.Default(),
	}
}

// SetLogger overrides the default logger.
func (h *Handlers) SetLogger(l *slog.Logger) {
	if l != nil {
		h.logger = l
	}
}

// writeError logs the internal error and returns a sanitized JSON error to the client.
func (h *Handlers) writeError(w http.ResponseWriter, status int, msg string, err error) {
	if err != nil {
		h.logger.Error(msg, "error", err, "status", status)
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
