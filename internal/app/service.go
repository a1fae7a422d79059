package app

import (
	"context"

	"inventory-dashboard/internal/core"
)

// ApplicationService is the single interface all UI adapters (REPL, CLI,
// Web) call. It decouples presentation from the core stores; adapters never
// reach into raw collections, only into the derived view-models returned
// here.
type ApplicationService interface {
	// SignUp creates an account and returns its profile.
	SignUp(ctx context.Context, req SignUpRequest) (*UserResult, error)

	// Authenticate verifies credentials and returns the account profile.
	Authenticate(ctx context.Context, email, password string) (*UserResult, error)

	// ResetPassword replaces an account's password. The response is
	// intentionally generic; unknown emails do not error.
	ResetPassword(ctx context.Context, email, newPassword string) error

	// GetUser returns the profile for an account id.
	GetUser(ctx context.Context, id string) (*UserResult, error)

	// UpdateProfile overwrites the mutable profile fields.
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*UserResult, error)

	// ListOrders returns one page of the filtered, sorted order table.
	ListOrders(ctx context.Context, params core.ListParams) (*OrderPageResult, error)

	// GetOrder returns a single order with items and timeline.
	GetOrder(ctx context.Context, id string) (*OrderResult, error)

	// CreateOrder appends a new Pending order and logs the activity.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResult, error)

	// UpdateOrderStatus transitions an order through the status enum.
	UpdateOrderStatus(ctx context.Context, id string, status core.OrderStatus) (*OrderResult, error)

	// DeleteOrder removes an order; unknown ids are a no-op.
	DeleteOrder(ctx context.Context, id string) error

	// ListProducts returns one page of the filtered, sorted catalog.
	ListProducts(ctx context.Context, params core.ListParams) (*ProductPageResult, error)

	// GetProduct returns a single catalog record.
	GetProduct(ctx context.Context, id string) (*ProductResult, error)

	// CreateProduct adds a catalog record.
	CreateProduct(ctx context.Context, req ProductRequest) (*ProductResult, error)

	// UpdateProduct replaces a catalog record's mutable fields.
	UpdateProduct(ctx context.Context, id string, req ProductRequest) (*ProductResult, error)

	// DeleteProduct removes a catalog record; unknown ids are a no-op.
	DeleteProduct(ctx context.Context, id string) error

	// ListStock returns one page of the stock table.
	ListStock(ctx context.Context, params core.ListParams) (*StockPageResult, error)

	// GetStockItem returns a stock record with its movement history.
	GetStockItem(ctx context.Context, id string) (*StockItemResult, error)

	// RestockItem applies a goods receipt, keeps the catalog quantity in
	// sync, and raises a notification when the item leaves its alert state.
	RestockItem(ctx context.Context, id string, qty int) (*StockItemResult, error)

	// LowStock returns the items at or below their reorder point.
	LowStock(ctx context.Context) (*StockAlertsResult, error)

	// ListReports returns one page of the report table.
	ListReports(ctx context.Context, params core.ListParams) (*ReportPageResult, error)

	// CreateReport builds a report record from the report-builder form.
	CreateReport(ctx context.Context, req CreateReportRequest) (*ReportResult, error)

	// Notifications returns the full collection plus the derived unread view.
	Notifications(ctx context.Context) (*NotificationsResult, error)

	// MarkNotificationRead marks one notification read (idempotent no-op
	// for unknown ids).
	MarkNotificationRead(ctx context.Context, id int) (*NotificationsResult, error)

	// MarkAllNotificationsRead marks everything read.
	MarkAllNotificationsRead(ctx context.Context) (*NotificationsResult, error)

	// DeleteNotification removes one notification (no-op for unknown ids).
	DeleteNotification(ctx context.Context, id int) (*NotificationsResult, error)

	// ClearNotifications empties the collection.
	ClearNotifications(ctx context.Context) (*NotificationsResult, error)

	// Search evaluates a global search across the scoped categories.
	Search(ctx context.Context, query string, scope core.SearchScope) (*SearchResult, error)

	// Dashboard assembles the home-screen payload: KPIs, chart series,
	// low-stock alerts, and the recent activity feed.
	Dashboard(ctx context.Context) (*DashboardResult, error)

	// SalesAnalytics returns the sales series for the requested trailing
	// window in days (0 = full series).
	SalesAnalytics(ctx context.Context, windowDays int) (*SalesAnalyticsResult, error)

	// Theme returns a user's persisted theme preference.
	Theme(ctx context.Context, userID string) (string, error)

	// SetTheme stores a user's theme preference.
	SetTheme(ctx context.Context, userID, theme string) error
}
