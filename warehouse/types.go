// Package warehouse holds a second set of sample types. Its Order shares a
// short name with store.Order, which makes "Order" an ambiguous root.
package warehouse

import "time"

// Order is a picking order in the warehouse.
type Order struct {
	ID       uint       `json:"id"`
	Number   string     `json:"number"`
	Priority Priority   `json:"priority"`
	Items    []Item     `json:"items"`
	Packed   *time.Time `json:"packed,omitempty"`
	Page     Page[Item] `json:"page"`
}

// Item is one pick instruction.
type Item struct {
	Bin      string `json:"bin"`
	Quantity uint16 `json:"quantity"`
}

// Page is a generic container; only its instantiations are referenced.
type Page[T any] struct {
	Entries []T `json:"entries"`
	Next    string
}

// Priority orders picking work.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityUrgent
)
