// Package ledger tracks the dishes a customer has ordered and what they cost.
package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/diner/internal/models"
)

// ErrItemNotFound is returned when a dish is not on the menu.
var ErrItemNotFound = errors.New("item not found")

// Menu is the catalog lookup the ledger prices against.
type Menu interface {
	Lookup(name string) (models.MenuItem, bool)
}

// Ledger holds a session's order entries keyed by item identity.
// Entries keep the order in which each dish was first ordered.
type Ledger struct {
	menu       Menu
	entries    []models.OrderEntry
	index      map[string]int
	discounted bool
}

// New creates an empty ledger priced against menu.
func New(menu Menu) *Ledger {
	return &Ledger{
		menu:  menu,
		index: make(map[string]int),
	}
}

// Add prices name against the menu and records it. Ordering a dish that is
// already on the ledger replaces its entry at the catalog price.
// Unknown dishes return ErrItemNotFound and leave the ledger unchanged.
func (l *Ledger) Add(name string) (models.OrderEntry, error) {
	item, ok := l.menu.Lookup(name)
	if !ok {
		return models.OrderEntry{}, fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}

	entry := models.OrderEntry{
		Key:   item.Key(),
		Name:  item.Name,
		Price: item.Price,
	}
	if i, exists := l.index[entry.Key]; exists {
		l.entries[i] = entry
		return entry, nil
	}
	l.index[entry.Key] = len(l.entries)
	l.entries = append(l.entries, entry)
	return entry, nil
}

// ApplyDiscount multiplies every entry currently held by factor.
// It is not idempotent: a second call compounds the discount.
func (l *Ledger) ApplyDiscount(factor decimal.Decimal) {
	for i := range l.entries {
		l.entries[i].Price = l.entries[i].Price.Mul(factor)
	}
	l.discounted = true
}

// Discounted reports whether ApplyDiscount has been called.
func (l *Ledger) Discounted() bool {
	return l.discounted
}

// Total sums entry prices at full precision. Callers round for display.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(e.Price)
	}
	return total
}

// Entries returns a copy of the entries in order.
func (l *Ledger) Entries() []models.OrderEntry {
	out := make([]models.OrderEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of distinct dishes ordered.
func (l *Ledger) Len() int {
	return len(l.entries)
}
