package app

import (
	"github.com/shopspring/decimal"

	"inventory-dashboard/internal/core"
)

// SignUpRequest creates an account. Input is pre-validated at the UI
// boundary; the service only enforces structural requirements.
type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// UpdateProfileRequest overwrites profile fields; empty fields are left
// unchanged.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
}

// OrderItemInput is one line of a new order.
type OrderItemInput struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// CreateOrderRequest creates a Pending order; totals are recomputed from
// the items, never trusted from the caller.
type CreateOrderRequest struct {
	Customer        core.Customer    `json:"customer"`
	ShippingAddress string           `json:"shipping_address"`
	Items           []OrderItemInput `json:"items"`
	Shipping        decimal.Decimal  `json:"shipping"`
	Tax             decimal.Decimal  `json:"tax"`
}

// ProductRequest creates or updates a catalog record.
type ProductRequest struct {
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}

// CreateReportRequest is the report-builder form.
type CreateReportRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
