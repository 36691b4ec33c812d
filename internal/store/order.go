package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is the customer-facing amount breakdown of an order.
// Total is the net amount the customer pays, before the platform deduction.
type Price struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// Order is a single laundry job. Everything except Status is immutable
// after ingestion.
type Order struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customer_name"`
	CustomerPhone    string    `json:"customer_phone"`
	ServiceType      string    `json:"service_type"`
	WashKg           float64   `json:"wash_kg"`
	DryKg            float64   `json:"dry_kg"`
	Price            Price     `json:"price"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	EstimatedReadyAt time.Time `json:"estimated_ready_at"`
}
