package web

import (
	"net/http"

	"inventory-dashboard/internal/app"
)

// listReports handles GET /api/reports.
func (h *Handler) listReports(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListReports(r.Context(), listParams(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// createReport handles POST /api/reports.
func (h *Handler) createReport(w http.ResponseWriter, r *http.Request) {
	var req app.CreateReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.svc.CreateReport(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	writeBody(w, result)
}
