// Package store holds sample domain types used to exercise the Go package
// source and the closure builder.
package store

import (
	"time"
)

// Order is a customer's purchase. It is the usual discovery root.
type Order struct {
	ID             int32             `json:"id"`
	Customer       *Customer         `json:"customer"`
	Lines          []OrderLine       `json:"lines"`
	Status         OrderStatus       `json:"status"`
	PreviousStatus *OrderStatus      `json:"previous_status,omitempty"`
	Total          Money             `json:"total"`
	Notes          map[string]string `json:"notes,omitempty"`
	OrderedAt      time.Time         `json:"ordered_at"`
	internalRef    string
	AuditTrail     string `json:"-"`
}

// Customer represents the user placing orders.
type Customer struct {
	ID       int32              `json:"id"`
	Email    string             `json:"email"`
	FullName string             `json:"full_name"`
	Address  *string            `json:"address"`
	Shipping map[string]Address `json:"shipping,omitempty"`
}

// Address is a postal address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// OrderLine is one product line within an order.
type OrderLine struct {
	Product   *Product `db:"product_id" json:"product"`
	Quantity  int32    `json:"quantity"`
	UnitPrice Money    `json:"unit_price"`
}

// Product is an item available for sale.
type Product struct {
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Labels    []string  `json:"labels,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Money wraps an amount in the lowest currency unit.
type Money struct {
	Cents int64 `json:"cents"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPaid      OrderStatus = "Paid"
	StatusShipped   OrderStatus = "Shipped"
	StatusCancelled OrderStatus = "Cancelled"
)

// Email is a plain string with no constants; it is not an enum.
type Email string
