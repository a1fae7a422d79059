package core

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus is the closed set of order lifecycle states. Every screen
// renders a status through Label and Color so no page carries its own
// status-to-style mapping.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCompleted  OrderStatus = "Completed"
	OrderCancelled  OrderStatus = "Cancelled"
)

// ParseOrderStatus normalizes free-form status text into the canonical enum.
// Legacy data mixes casings ("SHIPPED" vs "Shipped") and spellings.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return OrderPending, nil
	case "processing":
		return OrderProcessing, nil
	case "shipped":
		return OrderShipped, nil
	case "delivered":
		return OrderDelivered, nil
	case "completed":
		return OrderCompleted, nil
	case "cancelled", "canceled":
		return OrderCancelled, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

func (s OrderStatus) Valid() bool {
	_, err := ParseOrderStatus(string(s))
	return err == nil
}

// Label returns the display text for the status.
func (s OrderStatus) Label() string { return string(s) }

// Color returns the badge color token for the status.
func (s OrderStatus) Color() string {
	switch s {
	case OrderPending:
		return "yellow"
	case OrderProcessing:
		return "blue"
	case OrderShipped:
		return "indigo"
	case OrderDelivered, OrderCompleted:
		return "green"
	case OrderCancelled:
		return "red"
	}
	return "gray"
}

// StockStatus is derived from quantity vs reorder point and is never stored
// independently. See DeriveStockStatus.
type StockStatus string

const (
	StockCritical StockStatus = "Critical"
	StockLow      StockStatus = "Low"
	StockOptimal  StockStatus = "Optimal"
)

// Label returns the display text for the stock status.
func (s StockStatus) Label() string {
	if s == StockLow {
		return "Low Stock"
	}
	return string(s)
}

// Color returns the badge color token for the stock status.
func (s StockStatus) Color() string {
	switch s {
	case StockCritical:
		return "red"
	case StockLow:
		return "yellow"
	case StockOptimal:
		return "green"
	}
	return "gray"
}

// NotificationType categorizes a notification for filtering and icons.
type NotificationType string

const (
	NotificationSystem NotificationType = "System"
	NotificationStock  NotificationType = "Stock"
	NotificationOrder  NotificationType = "Order"
)

// Priority is the notification urgency level.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ReportStatus tracks a generated report's lifecycle.
type ReportStatus string

const (
	ReportReady      ReportStatus = "Ready"
	ReportProcessing ReportStatus = "Processing"
	ReportFailed     ReportStatus = "Failed"
)

// Report is a generated report record shown on the Reports page.
type Report struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Type   string       `json:"type"`
	Date   time.Time    `json:"date"`
	Status ReportStatus `json:"status"`
}

// ActivityEntry is one row of the dashboard activity feed.
type ActivityEntry struct {
	Type         string    `json:"type"`
	Content      string    `json:"content"`
	Timestamp    time.Time `json:"timestamp"`
	Status       string    `json:"status,omitempty"`
	User         string    `json:"user,omitempty"`
	Details      string    `json:"details,omitempty"`
	RelatedItems []string  `json:"related_items,omitempty"`
}
