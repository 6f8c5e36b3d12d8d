package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MenuItem represents a dish offered by the restaurant.
type MenuItem struct {
	// Name is the display name as written in the menu source.
	Name string

	// Price is the unit price, non-negative with two decimal places.
	Price decimal.Decimal
}

// Key returns the case-insensitive identity of the item.
func (m MenuItem) Key() string {
	return ItemKey(m.Name)
}

// ItemKey normalizes a dish name into its catalog identity.
func ItemKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// OrderEntry is one dish on a customer's ledger.
// Price starts at the catalog price and may be rebased once by a discount.
type OrderEntry struct {
	Key   string
	Name  string
	Price decimal.Decimal
}
