package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"inventory-dashboard/internal/core"
)

// ErrNotFound marks lookups by ids that no longer exist. Mutations stay
// silent no-ops per the store contracts; reads surface this so the web
// layer can answer 404.
var ErrNotFound = errors.New("not found")

// Stores bundles the core state the service operates on.
type Stores struct {
	Orders        *core.OrderStore
	Products      *core.ProductStore
	Stock         *core.StockStore
	Reports       *core.ReportStore
	Activity      *core.ActivityLog
	Notifications *core.NotificationStore
	Users         *core.UserStore
	Themes        *core.ThemeStore
}

type appService struct {
	stores Stores
	search *core.SearchAggregator
}

// NewAppService constructs an appService that satisfies ApplicationService.
// The search aggregator draws its candidates live from the order and
// product stores so results always reflect current collections.
func NewAppService(stores Stores) ApplicationService {
	search := core.NewSearchAggregator(core.SearchSources{
		Orders:    func(context.Context) []core.SearchHit { return stores.Orders.SearchHits() },
		Products:  func(context.Context) []core.SearchHit { return stores.Products.SearchHits() },
		Customers: func(context.Context) []core.SearchHit { return stores.Orders.CustomerHits() },
	})
	return &appService{stores: stores, search: search}
}

// ── Auth ──────────────────────────────────────────────────────────────────────

func (s *appService) SignUp(ctx context.Context, req SignUpRequest) (*UserResult, error) {
	u, err := s.stores.Users.SignUp(ctx, req.Email, req.Password, req.DisplayName)
	if err != nil {
		return nil, err
	}
	return &UserResult{User: u.Profile()}, nil
}

func (s *appService) Authenticate(ctx context.Context, email, password string) (*UserResult, error) {
	u, err := s.stores.Users.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return &UserResult{User: u.Profile()}, nil
}

func (s *appService) ResetPassword(ctx context.Context, email, newPassword string) error {
	// Unknown emails are swallowed so the endpoint cannot be used to probe
	// for accounts.
	_ = s.stores.Users.ResetPassword(ctx, email, newPassword)
	return nil
}

func (s *appService) GetUser(ctx context.Context, id string) (*UserResult, error) {
	u, err := s.stores.Users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return &UserResult{User: u.Profile()}, nil
}

func (s *appService) UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*UserResult, error) {
	u, err := s.stores.Users.UpdateProfile(ctx, id, req.DisplayName, req.PhotoURL)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return &UserResult{User: u.Profile()}, nil
}

// ── Orders ────────────────────────────────────────────────────────────────────

func (s *appService) ListOrders(_ context.Context, params core.ListParams) (*OrderPageResult, error) {
	return &OrderPageResult{Page: core.OrderView.Apply(s.stores.Orders.List(), params)}, nil
}

func (s *appService) GetOrder(_ context.Context, id string) (*OrderResult, error) {
	o, ok := s.stores.Orders.Get(id)
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return &OrderResult{Order: o}, nil
}

func (s *appService) CreateOrder(_ context.Context, req CreateOrderRequest) (*OrderResult, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("an order needs at least one item")
	}
	items := make([]core.OrderItem, 0, len(req.Items))
	for _, in := range req.Items {
		if in.Quantity < 1 {
			return nil, fmt.Errorf("item %q has non-positive quantity", in.Name)
		}
		items = append(items, core.OrderItem{Name: in.Name, Quantity: in.Quantity, Price: in.Price})
	}
	now := time.Now()
	o := s.stores.Orders.Create(core.Order{
		Customer:        req.Customer,
		ShippingAddress: req.ShippingAddress,
		Items:           items,
		Shipping:        req.Shipping,
		Tax:             req.Tax,
	}, now)
	s.stores.Activity.Append(core.ActivityEntry{
		Type:         "Order",
		Content:      fmt.Sprintf("New order %s created.", o.OrderNumber),
		Timestamp:    now,
		RelatedItems: []string{o.ID},
	})
	return &OrderResult{Order: o}, nil
}

func (s *appService) UpdateOrderStatus(ctx context.Context, id string, status core.OrderStatus) (*OrderResult, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown order status %q", status)
	}
	now := time.Now()
	o, ok := s.stores.Orders.UpdateStatus(id, status, now)
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if status == core.OrderShipped {
		s.stores.Notifications.Add(ctx, core.Notification{
			Type:        core.NotificationOrder,
			Title:       "Order Shipped",
			Description: fmt.Sprintf("Order %s has been shipped.", o.OrderNumber),
			Priority:    core.PriorityLow,
		})
	}
	s.stores.Activity.Append(core.ActivityEntry{
		Type:         "Order",
		Content:      fmt.Sprintf("Order %s moved to %s.", o.OrderNumber, status.Label()),
		Timestamp:    now,
		Status:       status.Color(),
		RelatedItems: []string{o.ID},
	})
	return &OrderResult{Order: o}, nil
}

func (s *appService) DeleteOrder(_ context.Context, id string) error {
	s.stores.Orders.Delete(id)
	return nil
}

// ── Products ──────────────────────────────────────────────────────────────────

func (s *appService) ListProducts(_ context.Context, params core.ListParams) (*ProductPageResult, error) {
	return &ProductPageResult{Page: core.ProductView.Apply(s.stores.Products.List(), params)}, nil
}

func (s *appService) GetProduct(_ context.Context, id string) (*ProductResult, error) {
	p, ok := s.stores.Products.Get(id)
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return &ProductResult{Product: p}, nil
}

func (s *appService) CreateProduct(_ context.Context, req ProductRequest) (*ProductResult, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if req.Category != "" && !core.ValidCategory(req.Category) {
		return nil, fmt.Errorf("unknown category %q", req.Category)
	}
	p := s.stores.Products.Create(core.Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
	})
	return &ProductResult{Product: p}, nil
}

func (s *appService) UpdateProduct(_ context.Context, id string, req ProductRequest) (*ProductResult, error) {
	if req.Category != "" && !core.ValidCategory(req.Category) {
		return nil, fmt.Errorf("unknown category %q", req.Category)
	}
	p, ok := s.stores.Products.Update(id, core.Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
	})
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return &ProductResult{Product: p}, nil
}

func (s *appService) DeleteProduct(_ context.Context, id string) error {
	s.stores.Products.Delete(id)
	return nil
}

// ── Stock ─────────────────────────────────────────────────────────────────────

func (s *appService) ListStock(_ context.Context, params core.ListParams) (*StockPageResult, error) {
	return &StockPageResult{Page: core.StockView.Apply(s.stores.Stock.List(), params)}, nil
}

func (s *appService) GetStockItem(_ context.Context, id string) (*StockItemResult, error) {
	it, ok := s.stores.Stock.Get(id)
	if !ok {
		return nil, fmt.Errorf("stock item %s: %w", id, ErrNotFound)
	}
	return &StockItemResult{Item: it}, nil
}

func (s *appService) RestockItem(ctx context.Context, id string, qty int) (*StockItemResult, error) {
	if qty < 1 {
		return nil, fmt.Errorf("restock quantity must be positive, got %d", qty)
	}
	before, ok := s.stores.Stock.Get(id)
	if !ok {
		return nil, fmt.Errorf("stock item %s: %w", id, ErrNotFound)
	}
	now := time.Now()
	it, _ := s.stores.Stock.Restock(id, qty, now)
	// The catalog card shows the same on-hand number; keep it in sync.
	s.stores.Products.SetStock(id, it.Quantity)
	if before.Status != core.StockOptimal && it.Status == core.StockOptimal {
		s.stores.Notifications.Add(ctx, core.Notification{
			Type:        core.NotificationStock,
			Title:       "Stock Replenished",
			Description: fmt.Sprintf("%s is back above its reorder point.", it.Name),
			Priority:    core.PriorityLow,
		})
	}
	s.stores.Activity.Append(core.ActivityEntry{
		Type:         "Stock",
		Content:      fmt.Sprintf("%s stock updated to %d.", it.Name, it.Quantity),
		Timestamp:    now,
		RelatedItems: []string{it.ID},
	})
	return &StockItemResult{Item: it}, nil
}

func (s *appService) LowStock(_ context.Context) (*StockAlertsResult, error) {
	return &StockAlertsResult{Items: s.stores.Stock.LowStock()}, nil
}

// ── Reports ───────────────────────────────────────────────────────────────────

func (s *appService) ListReports(_ context.Context, params core.ListParams) (*ReportPageResult, error) {
	return &ReportPageResult{Page: core.ReportView.Apply(s.stores.Reports.List(), params)}, nil
}

func (s *appService) CreateReport(_ context.Context, req CreateReportRequest) (*ReportResult, error) {
	if req.Name == "" || req.Type == "" {
		return nil, fmt.Errorf("report name and type are required")
	}
	r := s.stores.Reports.Create(req.Name, req.Type, time.Now())
	return &ReportResult{Report: r}, nil
}

// ── Notifications ─────────────────────────────────────────────────────────────

func (s *appService) Notifications(ctx context.Context) (*NotificationsResult, error) {
	return s.notificationView(), nil
}

func (s *appService) MarkNotificationRead(ctx context.Context, id int) (*NotificationsResult, error) {
	s.stores.Notifications.MarkRead(ctx, id)
	return s.notificationView(), nil
}

func (s *appService) MarkAllNotificationsRead(ctx context.Context) (*NotificationsResult, error) {
	s.stores.Notifications.MarkAllRead(ctx)
	return s.notificationView(), nil
}

func (s *appService) DeleteNotification(ctx context.Context, id int) (*NotificationsResult, error) {
	s.stores.Notifications.Delete(ctx, id)
	return s.notificationView(), nil
}

func (s *appService) ClearNotifications(ctx context.Context) (*NotificationsResult, error) {
	s.stores.Notifications.ClearAll(ctx)
	return s.notificationView(), nil
}

func (s *appService) notificationView() *NotificationsResult {
	return &NotificationsResult{
		Notifications: s.stores.Notifications.All(),
		Unread:        s.stores.Notifications.Unread(),
		UnreadCount:   s.stores.Notifications.UnreadCount(),
	}
}

// ── Search / dashboard ────────────────────────────────────────────────────────

func (s *appService) Search(ctx context.Context, query string, scope core.SearchScope) (*SearchResult, error) {
	results := s.search.Search(ctx, query, scope)
	return &SearchResult{
		Query:     s.search.Query(),
		Scope:     scope,
		Results:   results,
		Searching: s.search.IsSearching(),
	}, nil
}

func (s *appService) Dashboard(_ context.Context) (*DashboardResult, error) {
	open := 0
	for _, o := range s.stores.Orders.List() {
		if o.Status == core.OrderPending || o.Status == core.OrderProcessing {
			open++
		}
	}
	return &DashboardResult{
		KPIs:           s.stores.Reports.KPIs(),
		Sales:          s.stores.Reports.Sales(0),
		StockTrend:     s.stores.Reports.StockTrend(),
		Engagement:     s.stores.Reports.Engagement(),
		LowStock:       s.stores.Stock.LowStock(),
		RecentActivity: s.stores.Activity.Recent(10),
		OpenOrders:     open,
		UnreadCount:    s.stores.Notifications.UnreadCount(),
	}, nil
}

func (s *appService) SalesAnalytics(_ context.Context, windowDays int) (*SalesAnalyticsResult, error) {
	series := s.stores.Reports.Sales(windowDays)
	total := decimal.Zero
	for _, p := range series {
		total = total.Add(p.Amount)
	}
	return &SalesAnalyticsResult{
		WindowDays: windowDays,
		Series:     series,
		Total:      core.FormatCurrency(total, ""),
	}, nil
}

// ── Settings ──────────────────────────────────────────────────────────────────

func (s *appService) Theme(ctx context.Context, userID string) (string, error) {
	return s.stores.Themes.Get(ctx, userID), nil
}

func (s *appService) SetTheme(ctx context.Context, userID, theme string) error {
	return s.stores.Themes.Set(ctx, userID, theme)
}
