package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"inventory-dashboard/internal/app"
	"inventory-dashboard/internal/core"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc       app.ApplicationService
	router    chi.Router
	jwtSecret string
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins, jwtSecret string) http.Handler {
	h := &Handler{
		svc:       svc,
		jwtSecret: jwtSecret,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	// ── Health (public) ───────────────────────────────────────────────────────
	r.Get("/api/health", h.health)

	// ── Auth (public) ─────────────────────────────────────────────────────────
	r.Post("/api/auth/signup", h.signup)
	r.Post("/api/auth/login", h.login)
	r.Post("/api/auth/logout", h.logout)
	r.Post("/api/auth/reset-password", h.resetPassword)

	// ── Protected API routes (401 JSON if unauthenticated) ───────────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)

		// Auth
		r.Get("/api/auth/me", h.me)
		r.Put("/api/auth/profile", h.updateProfile)

		// Orders
		r.Get("/api/orders", h.listOrders)
		r.Post("/api/orders", h.createOrder)
		r.Get("/api/orders/{id}", h.getOrder)
		r.Put("/api/orders/{id}/status", h.updateOrderStatus)
		r.Delete("/api/orders/{id}", h.deleteOrder)

		// Products
		r.Get("/api/products", h.listProducts)
		r.Post("/api/products", h.createProduct)
		r.Get("/api/products/{id}", h.getProduct)
		r.Put("/api/products/{id}", h.updateProduct)
		r.Delete("/api/products/{id}", h.deleteProduct)

		// Stock
		r.Get("/api/stock", h.listStock)
		r.Get("/api/stock/alerts", h.lowStock)
		r.Get("/api/stock/{id}", h.getStockItem)
		r.Post("/api/stock/{id}/restock", h.restockItem)

		// Reports
		r.Get("/api/reports", h.listReports)
		r.Post("/api/reports", h.createReport)

		// Notifications
		r.Get("/api/notifications", h.notifications)
		r.Post("/api/notifications/{id}/read", h.markNotificationRead)
		r.Post("/api/notifications/read-all", h.markAllNotificationsRead)
		r.Delete("/api/notifications/{id}", h.deleteNotification)
		r.Delete("/api/notifications", h.clearNotifications)

		// Search
		r.Get("/api/search", h.search)

		// Analytics
		r.Get("/api/analytics/dashboard", h.dashboard)
		r.Get("/api/analytics/sales", h.salesAnalytics)

		// Settings
		r.Get("/api/settings/theme", h.theme)
		r.Put("/api/settings/theme", h.setTheme)
	})

	h.router = r
	return r
}

// health returns service status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}

// listParams builds core.ListParams from the query string. The category
// filter accepts either ?category= or ?status= (the order table filters on
// status); ?status= wins when both are present.
func listParams(r *http.Request) core.ListParams {
	q := r.URL.Query()
	category := q.Get("category")
	if s := q.Get("status"); s != "" {
		category = s
	}
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))
	return core.ListParams{
		Query:    q.Get("q"),
		Category: category,
		Sort: core.SortState{
			Key:       q.Get("sort"),
			Direction: core.SortDirection(q.Get("dir")),
		},
		Page:     page,
		PageSize: pageSize,
	}
}

// decodeJSON decodes the request body into v and returns false + writes an
// appropriate error response on failure. Returns HTTP 413 when the body
// exceeds the RequestBodyLimit; HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}

// writeServiceError maps an ApplicationService error onto an HTTP response:
// 404 for missing records, 400 for everything else the service rejected.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, app.ErrNotFound) {
		writeError(w, r, err.Error(), "NOT_FOUND", http.StatusNotFound)
		return
	}
	writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
}
