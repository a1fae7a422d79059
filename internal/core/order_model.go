package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the contact block attached to an order.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// OrderItem is one line item on an order. Price is the unit price in whole
// UGX; money never leaves decimal form until the display boundary.
type OrderItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
}

// LineTotal returns quantity times unit price.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TimelineStep is one stage in an order's fulfillment timeline.
type TimelineStep struct {
	Status    OrderStatus `json:"status"`
	Date      time.Time   `json:"date"`
	Completed bool        `json:"completed"`
}

// Order is a customer order header with its line items and timeline.
type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	OrderDate       time.Time       `json:"order_date"`
	Status          OrderStatus     `json:"status"`
	Customer        Customer        `json:"customer"`
	ShippingAddress string          `json:"shipping_address"`
	Items           []OrderItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Shipping        decimal.Decimal `json:"shipping"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	Timeline        []TimelineStep  `json:"timeline"`
}

// SearchFields returns the fields free-text order search matches against.
func (o Order) SearchFields() []string {
	return []string{o.OrderNumber, o.Customer.Name}
}

// RecomputeTotals derives subtotal and total from the line items and the
// current shipping/tax amounts.
func (o *Order) RecomputeTotals() {
	sub := decimal.Zero
	for _, it := range o.Items {
		sub = sub.Add(it.LineTotal())
	}
	o.Subtotal = sub
	o.Total = sub.Add(o.Shipping).Add(o.Tax)
}
