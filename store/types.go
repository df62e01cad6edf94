// Package store holds the sample domain types projected by tests, examples
// and the static analyzer.
package store

import (
	"net/url"
	"strings"
	"time"
)

// Audit carries bookkeeping fields embedded in stored records.
type Audit struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Address is a postal address.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
	Geo    *Geo   `json:"geo,omitempty"`
}

// Geo is a coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Customer represents the user placing orders.
type Customer struct {
	Audit

	ID        int64    `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Address   *Address `json:"address"`
	IsActive  bool     `json:"is_active"`
	Tags      []string `json:"tags"`

	passwordHash string
}

// FullName joins first and last name.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// SetPassword stores a password hash. It is not a property.
func (c *Customer) SetPassword(hash string) {
	c.passwordHash = hash
}

// Order represents a transaction made by a customer.
type Order struct {
	ID         int64       `json:"id"`
	Customer   *Customer   `json:"customer"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"total_cents"`
	Items      []OrderItem `json:"items"`
	OrderedAt  time.Time   `json:"ordered_at"`
	Tracking   *url.URL    `json:"tracking,omitempty"`
}

// OrderItem is a product line within an order.
type OrderItem struct {
	SKU       string `json:"sku"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
