package app

import "inventory-dashboard/internal/core"

// UserResult is returned by the auth operations.
type UserResult struct {
	User core.Profile `json:"user"`
}

// OrderPageResult is returned by ListOrders.
type OrderPageResult struct {
	core.Page[core.Order]
}

// OrderResult is returned by single-order operations.
type OrderResult struct {
	Order core.Order `json:"order"`
}

// ProductPageResult is returned by ListProducts.
type ProductPageResult struct {
	core.Page[core.Product]
}

// ProductResult is returned by single-product operations.
type ProductResult struct {
	Product core.Product `json:"product"`
}

// StockPageResult is returned by ListStock.
type StockPageResult struct {
	core.Page[core.StockItem]
}

// StockItemResult is returned by single stock-item operations.
type StockItemResult struct {
	Item core.StockItem `json:"item"`
}

// StockAlertsResult is returned by LowStock.
type StockAlertsResult struct {
	Items []core.StockItem `json:"items"`
}

// ReportPageResult is returned by ListReports.
type ReportPageResult struct {
	core.Page[core.Report]
}

// ReportResult is returned by CreateReport.
type ReportResult struct {
	Report core.Report `json:"report"`
}

// NotificationsResult carries the canonical collection plus its derived
// unread view; the view is computed fresh on every call, never cached.
type NotificationsResult struct {
	Notifications []core.Notification `json:"notifications"`
	Unread        []core.Notification `json:"unread"`
	UnreadCount   int                 `json:"unread_count"`
}

// SearchResult is returned by Search.
type SearchResult struct {
	Query     string             `json:"query"`
	Scope     core.SearchScope   `json:"scope"`
	Results   core.SearchResults `json:"results"`
	Searching bool               `json:"searching"`
}

// DashboardResult is the home-screen payload.
type DashboardResult struct {
	KPIs           []core.KPI             `json:"kpis"`
	Sales          []core.SalesPoint      `json:"sales"`
	StockTrend     []core.StockPoint      `json:"stock_trend"`
	Engagement     []core.EngagementPoint `json:"engagement"`
	LowStock       []core.StockItem       `json:"low_stock"`
	RecentActivity []core.ActivityEntry   `json:"recent_activity"`
	OpenOrders     int                    `json:"open_orders"`
	UnreadCount    int                    `json:"unread_count"`
}

// SalesAnalyticsResult is returned by SalesAnalytics.
type SalesAnalyticsResult struct {
	WindowDays int               `json:"window_days"`
	Series     []core.SalesPoint `json:"series"`
	Total      string            `json:"total"` // formatted, e.g. "UGX 1,650,000"
}
