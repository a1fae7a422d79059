package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Built-in seed collections. Each function returns a fresh copy so stores
// can mutate their slices freely. Amounts are whole UGX.

func ugx(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func seedDay(day int, hour int) time.Time {
	return time.Date(2024, time.November, day, hour, 0, 0, 0, time.UTC)
}

// SeedOrders returns the starter order collection.
func SeedOrders() []Order {
	orders := []Order{
		{
			ID:          "001",
			OrderNumber: "ORD-0001",
			OrderDate:   seedDay(8, 10),
			Status:      OrderShipped,
			Customer:    Customer{Name: "Alice Okello", Email: "alice@example.com", Phone: "+256 700 100 001"},
			ShippingAddress: "Plot 14, Kampala Road, Kampala",
			Items: []OrderItem{
				{Name: "Wireless Mouse", Quantity: 2, Price: ugx(75000)},
				{Name: "USB-C Hub", Quantity: 1, Price: ugx(150000)},
			},
			Shipping: ugx(15000),
			Tax:      ugx(54000),
			Timeline: []TimelineStep{
				{Status: OrderPending, Date: seedDay(6, 9), Completed: true},
				{Status: OrderProcessing, Date: seedDay(7, 11), Completed: true},
				{Status: OrderShipped, Date: seedDay(8, 10), Completed: true},
				{Status: OrderDelivered, Date: time.Time{}, Completed: false},
			},
		},
		{
			ID:          "002",
			OrderNumber: "ORD-0002",
			OrderDate:   seedDay(7, 14),
			Status:      OrderPending,
			Customer:    Customer{Name: "Bob Ssentongo", Email: "bob@example.com", Phone: "+256 700 100 002"},
			ShippingAddress: "Ntinda Shopping Centre, Kampala",
			Items: []OrderItem{
				{Name: "Paperback Novel", Quantity: 2, Price: ugx(25000)},
			},
			Shipping: ugx(8000),
			Tax:      ugx(9000),
			Timeline: []TimelineStep{
				{Status: OrderPending, Date: seedDay(7, 14), Completed: true},
			},
		},
		{
			ID:          "003",
			OrderNumber: "ORD-0003",
			OrderDate:   seedDay(6, 16),
			Status:      OrderCancelled,
			Customer:    Customer{Name: "Charlie Mugisha", Email: "charlie@example.com", Phone: "+256 700 100 003"},
			ShippingAddress: "Mbarara High Street, Mbarara",
			Items: []OrderItem{
				{Name: "Denim Jacket", Quantity: 1, Price: ugx(550000)},
			},
			Shipping: ugx(0),
			Tax:      ugx(0),
			Timeline: []TimelineStep{
				{Status: OrderPending, Date: seedDay(5, 10), Completed: true},
				{Status: OrderCancelled, Date: seedDay(6, 16), Completed: true},
			},
		},
	}
	for i := range orders {
		orders[i].RecomputeTotals()
	}
	return orders
}

// SeedProducts returns the starter catalog.
func SeedProducts() []Product {
	return []Product{
		{
			ID:       "p001",
			Name:     "Wireless Mouse",
			SKU:      "ELC-0001",
			Price:    ugx(500000),
			Stock:    50,
			Category: "Electronics",
			Image:    "https://source.unsplash.com/random/150x150?electronics",
		},
		{
			ID:       "p002",
			Name:     "Paperback Novel",
			SKU:      "BKS-0002",
			Price:    ugx(150000),
			Stock:    0,
			Category: "Books",
			Image:    "https://source.unsplash.com/random/150x150?books",
		},
		{
			ID:       "p003",
			Name:     "Denim Jacket",
			SKU:      "APP-0003",
			Price:    ugx(600000),
			Stock:    20,
			Category: "Apparel",
			Image:    "https://source.unsplash.com/random/150x150?apparel",
		},
	}
}

// SeedStockItems returns the starter stock records. Status fields are
// derived by NewStockStore, not trusted from here.
func SeedStockItems() []StockItem {
	return []StockItem{
		{
			ID: "p001", Name: "Wireless Mouse", SKU: "ELC-0001",
			Quantity: 5, ReorderPoint: 10, OptimalStock: 60,
			LastUpdated: seedDay(8, 9),
			Movements: []StockMovement{
				{Type: MovementIncrease, Quantity: 20, Date: seedDay(1, 9)},
				{Type: MovementDecrease, Quantity: 15, Date: seedDay(5, 15)},
			},
		},
		{
			ID: "p002", Name: "Paperback Novel", SKU: "BKS-0002",
			Quantity: 50, ReorderPoint: 20, OptimalStock: 80,
			LastUpdated: seedDay(7, 12),
			Movements: []StockMovement{
				{Type: MovementIncrease, Quantity: 50, Date: seedDay(2, 10)},
			},
		},
		{
			ID: "p003", Name: "Denim Jacket", SKU: "APP-0003",
			Quantity: 8, ReorderPoint: 15, OptimalStock: 40,
			LastUpdated: seedDay(6, 17),
			Movements: []StockMovement{
				{Type: MovementIncrease, Quantity: 12, Date: seedDay(3, 9)},
				{Type: MovementDecrease, Quantity: 4, Date: seedDay(6, 17)},
			},
		},
	}
}

// SeedNotifications returns the starter notification list.
func SeedNotifications() []Notification {
	return []Notification{
		{
			ID: 1, Type: NotificationSystem, Title: "System Maintenance",
			Description: "Scheduled maintenance at midnight.",
			Timestamp:   seedDay(8, 8), Priority: PriorityHigh, Read: false,
		},
		{
			ID: 2, Type: NotificationStock, Title: "Low Stock Alert",
			Description: "Wireless Mouse is low on stock.",
			Timestamp:   seedDay(7, 16), Priority: PriorityMedium, Read: true,
		},
		{
			ID: 3, Type: NotificationOrder, Title: "Order Shipped",
			Description: "Order ORD-0001 has been shipped.",
			Timestamp:   seedDay(8, 10), Priority: PriorityLow, Read: false,
		},
	}
}

// SeedReports returns the starter report list.
func SeedReports() []Report {
	return []Report{
		{ID: "r001", Name: "November Sales", Type: "Sales", Date: seedDay(4, 9), Status: ReportReady},
		{ID: "r002", Name: "Inventory Snapshot", Type: "Inventory", Date: seedDay(6, 9), Status: ReportReady},
		{ID: "r003", Name: "Weekly Sales", Type: "Sales", Date: seedDay(8, 9), Status: ReportProcessing},
	}
}

// SeedActivity returns the starter dashboard feed.
func SeedActivity() []ActivityEntry {
	return []ActivityEntry{
		{Type: "Order", Content: "New order ORD-0002 created.", Timestamp: seedDay(7, 14), RelatedItems: []string{"002"}},
		{Type: "Stock", Content: "Paperback Novel stock updated to 50.", Timestamp: seedDay(7, 12), RelatedItems: []string{"p002"}},
		{Type: "Alert", Content: "Low stock warning for Wireless Mouse.", Timestamp: seedDay(8, 9), Status: "warning", RelatedItems: []string{"p001"}},
	}
}

// SeedSalesSeries returns the sales chart series.
func SeedSalesSeries() []SalesPoint {
	return []SalesPoint{
		{Date: seedDay(1, 0), Amount: ugx(200000)},
		{Date: seedDay(2, 0), Amount: ugx(300000)},
		{Date: seedDay(3, 0), Amount: ugx(250000)},
		{Date: seedDay(4, 0), Amount: ugx(400000)},
		{Date: seedDay(5, 0), Amount: ugx(500000)},
	}
}

// SeedStockSeries returns the inventory trend series.
func SeedStockSeries() []StockPoint {
	return []StockPoint{
		{Label: "Nov 1", Stock: 20},
		{Label: "Nov 2", Stock: 15},
		{Label: "Nov 3", Stock: 10},
		{Label: "Nov 4", Stock: 5},
		{Label: "Nov 5", Stock: 8},
	}
}

// SeedEngagement returns the user-engagement breakdown.
func SeedEngagement() []EngagementPoint {
	return []EngagementPoint{
		{Location: "Kampala", Users: 1500},
		{Location: "Entebbe", Users: 1200},
		{Location: "Mbarara", Users: 800},
		{Location: "Gulu", Users: 900},
	}
}

// SeedKPIs returns the headline analytics metrics.
func SeedKPIs() []KPI {
	return []KPI{
		{Name: "Average Order Value", Value: FormatCurrency(ugx(320000), "")},
		{Name: "Daily Active Users", Value: FormatNumberWithComma(2500)},
		{Name: "Revenue Growth", Value: FormatPercentage(8.5, 1)},
	}
}
