package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/batchwatch/batchwatch/internal/provider"
)

// GetReport returns the stored consolidated report for a date.
func (h *Handlers) GetReport(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	report, err := h.store.GetReport(r.Context(), date)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "report not found", err)
			return
		}
		h.writeError(w, http.StatusInternalServerError, "failed to load report", err)
		return
	}
	_ = json.NewEncoder(w).Encode(report)
}
