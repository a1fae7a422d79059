package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// notifications handles GET /api/notifications.
func (h *Handler) notifications(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Notifications(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// markNotificationRead handles POST /api/notifications/{id}/read.
// Unknown ids are a no-op; the current view is returned either way.
func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "notification id must be numeric", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.MarkNotificationRead(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// markAllNotificationsRead handles POST /api/notifications/read-all.
func (h *Handler) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.MarkAllNotificationsRead(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// deleteNotification handles DELETE /api/notifications/{id}.
func (h *Handler) deleteNotification(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "notification id must be numeric", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.DeleteNotification(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// clearNotifications handles DELETE /api/notifications.
func (h *Handler) clearNotifications(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ClearNotifications(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
