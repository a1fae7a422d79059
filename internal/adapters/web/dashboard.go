package web

import (
	"net/http"
	"strconv"

	"inventory-dashboard/internal/core"
)

// search handles GET /api/search?q=&scope=.
// A blank q clears the aggregator and returns empty categories.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	scope := core.ParseSearchScope(r.URL.Query().Get("scope"))
	result, err := h.svc.Search(r.Context(), q, scope)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// dashboard handles GET /api/analytics/dashboard.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// salesAnalytics handles GET /api/analytics/sales?window=30.
// window is a trailing number of days; 0 or absent means the full series.
func (h *Handler) salesAnalytics(w http.ResponseWriter, r *http.Request) {
	window, _ := strconv.Atoi(r.URL.Query().Get("window"))
	if window < 0 {
		window = 0
	}
	result, err := h.svc.SalesAnalytics(r.Context(), window)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// theme handles GET /api/settings/theme.
func (h *Handler) theme(w http.ResponseWriter, r *http.Request) {
	claims := authFromContext(r.Context())
	theme, err := h.svc.Theme(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, map[string]string{"theme": theme})
}

// setTheme handles PUT /api/settings/theme.
func (h *Handler) setTheme(w http.ResponseWriter, r *http.Request) {
	claims := authFromContext(r.Context())
	var req struct {
		Theme string `json:"theme"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.svc.SetTheme(r.Context(), claims.UserID, req.Theme); err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]string{"theme": req.Theme})
}
