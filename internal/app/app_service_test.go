package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"inventory-dashboard/internal/app"
	"inventory-dashboard/internal/core"
	"inventory-dashboard/internal/localstore"
)

func newTestService(t *testing.T) app.ApplicationService {
	t.Helper()
	return app.NewAppService(app.NewSeededStores(context.Background(), localstore.NewMemory()))
}

func TestAppService_RestockSyncsCatalogAndNotifies(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Seeded item p001 sits below half its reorder point.
	before, err := svc.GetStockItem(ctx, "p001")
	if err != nil {
		t.Fatalf("GetStockItem: %v", err)
	}
	if before.Item.Status != core.StockCritical {
		t.Fatalf("seed status = %s, want Critical", before.Item.Status)
	}
	unreadBefore, _ := svc.Notifications(ctx)

	result, err := svc.RestockItem(ctx, "p001", 40)
	if err != nil {
		t.Fatalf("RestockItem: %v", err)
	}
	if result.Item.Status != core.StockOptimal {
		t.Fatalf("status after restock = %s, want Optimal", result.Item.Status)
	}

	// The catalog quantity follows the stock record.
	product, err := svc.GetProduct(ctx, "p001")
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if product.Product.Stock != result.Item.Quantity {
		t.Fatalf("catalog stock %d, want %d", product.Product.Stock, result.Item.Quantity)
	}

	// Leaving the alert state raises a notification.
	unreadAfter, _ := svc.Notifications(ctx)
	if unreadAfter.UnreadCount != unreadBefore.UnreadCount+1 {
		t.Fatalf("unread count %d -> %d, want one new notification",
			unreadBefore.UnreadCount, unreadAfter.UnreadCount)
	}

	if _, err := svc.RestockItem(ctx, "p001", 0); err == nil {
		t.Errorf("non-positive restock quantity accepted")
	}
	if _, err := svc.RestockItem(ctx, "nope", 5); !errors.Is(err, app.ErrNotFound) {
		t.Errorf("unknown item error = %v, want ErrNotFound", err)
	}
}

func TestAppService_CreateOrderValidatesAndLogsActivity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateOrder(ctx, app.CreateOrderRequest{}); err == nil {
		t.Errorf("order with no items accepted")
	}
	if _, err := svc.CreateOrder(ctx, app.CreateOrderRequest{
		Items: []app.OrderItemInput{{Name: "x", Quantity: 0, Price: decimal.NewFromInt(10)}},
	}); err == nil {
		t.Errorf("zero-quantity item accepted")
	}

	result, err := svc.CreateOrder(ctx, app.CreateOrderRequest{
		Customer: core.Customer{Name: "New Customer", Email: "new@example.com"},
		Items: []app.OrderItemInput{
			{Name: "Wireless Mouse", Quantity: 2, Price: decimal.NewFromInt(500000)},
		},
		Shipping: decimal.NewFromInt(20000),
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if result.Order.Status != core.OrderPending {
		t.Errorf("new order status = %s, want Pending", result.Order.Status)
	}
	if want := decimal.NewFromInt(1020000); !result.Order.Total.Equal(want) {
		t.Errorf("total = %s, want %s", result.Order.Total, want)
	}

	dash, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	found := false
	for _, a := range dash.RecentActivity {
		if len(a.RelatedItems) == 1 && a.RelatedItems[0] == result.Order.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("order creation missing from activity feed")
	}
}

func TestAppService_UpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.UpdateOrderStatus(ctx, "001", core.OrderStatus("Teleported")); err == nil {
		t.Errorf("unknown status accepted")
	}
	result, err := svc.UpdateOrderStatus(ctx, "002", core.OrderProcessing)
	if err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	if result.Order.Status != core.OrderProcessing {
		t.Errorf("status = %s, want Processing", result.Order.Status)
	}
}

func TestAppService_ListOrdersFiltersByStatus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	all, err := svc.ListOrders(ctx, core.ListParams{})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	shipped, err := svc.ListOrders(ctx, core.ListParams{Category: "shipped"})
	if err != nil {
		t.Fatalf("ListOrders(shipped): %v", err)
	}
	if shipped.TotalItems >= all.TotalItems {
		t.Fatalf("status filter did not narrow results: %d vs %d", shipped.TotalItems, all.TotalItems)
	}
	for _, o := range shipped.Items {
		if o.Status != core.OrderShipped {
			t.Errorf("filtered list contains %s order %s", o.Status, o.ID)
		}
	}
}

func TestAppService_SearchAndSalesAnalytics(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	search, err := svc.Search(ctx, "mouse", core.ScopeAll)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(search.Results.Products) == 0 {
		t.Errorf("seeded catalog search found nothing for %q", "mouse")
	}

	sales, err := svc.SalesAnalytics(ctx, 0)
	if err != nil {
		t.Fatalf("SalesAnalytics: %v", err)
	}
	if len(sales.Series) == 0 {
		t.Fatalf("sales series is empty")
	}
	if sales.Total == "" || sales.Total[:4] != "UGX " {
		t.Errorf("total = %q, want a formatted UGX amount", sales.Total)
	}
}

func TestAppService_ThemeRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	theme, err := svc.Theme(ctx, "u1")
	if err != nil || theme != core.ThemeLight {
		t.Fatalf("default theme = (%q, %v), want light", theme, err)
	}
	if err := svc.SetTheme(ctx, "u1", core.ThemeDark); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	theme, _ = svc.Theme(ctx, "u1")
	if theme != core.ThemeDark {
		t.Fatalf("theme = %q, want dark", theme)
	}
}
