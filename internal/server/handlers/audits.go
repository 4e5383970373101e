package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/batchwatch/batchwatch/internal/metrics"
	"github.com/batchwatch/batchwatch/internal/provider"
)

// RunAudit runs the full audit for the date in the URL, stores the report
// and hands it to the publisher. The report is returned in the response.
func (h *Handlers) RunAudit(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	report, err := h.engine.Run(r.Context(), date)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "no batch for date", err)
			return
		}
		h.writeError(w, http.StatusInternalServerError, "audit run failed", err)
		return
	}

	if h.store != nil {
		if err := h.store.PutReport(r.Context(), report); err != nil {
			h.writeError(w, http.StatusInternalServerError, "failed to store report", err)
			return
		}
	}

	if h.publisher != nil {
		if err := h.publisher.Publish(r.Context(), report); err != nil {
			// The audit itself succeeded; surface the publish failure in
			// the log and counters but keep the response useful.
			h.logger.Error("publishing report failed", "date", date, "error", err)
			metrics.PublishFailures.Add(1)
		} else {
			metrics.ReportsPublished.Add(1)
		}
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(report)
}
