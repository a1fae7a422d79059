package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// listStock handles GET /api/stock.
// The status buckets (Critical, Low, Optimal) act as the category
// filter; derivation from quantity and reorder point happens in core.
func (h *Handler) listStock(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListStock(r.Context(), listParams(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// getStockItem handles GET /api/stock/{id}.
func (h *Handler) getStockItem(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetStockItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// restockItem handles POST /api/stock/{id}/restock.
func (h *Handler) restockItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.svc.RestockItem(r.Context(), chi.URLParam(r, "id"), req.Quantity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// lowStock handles GET /api/stock/alerts.
func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.LowStock(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
