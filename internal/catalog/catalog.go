// Package catalog provides the restaurant's immutable menu.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/diner/internal/models"
	"github.com/mmynk/diner/internal/storage"
)

// ErrMalformed is returned when the menu source cannot be parsed.
var ErrMalformed = errors.New("malformed menu")

// Catalog is a read-only lookup of dish name to price.
// Items keep the order in which they were loaded.
type Catalog struct {
	items []models.MenuItem
	index map[string]int
}

// New builds a catalog from items. A later item with the same key
// replaces the earlier one in place.
func New(items []models.MenuItem) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(items))}
	for _, item := range items {
		if item.Key() == "" {
			return nil, fmt.Errorf("%w: empty item name", ErrMalformed)
		}
		if item.Price.IsNegative() {
			return nil, fmt.Errorf("%w: negative price for %q", ErrMalformed, item.Name)
		}
		item.Price = item.Price.Round(2)
		if i, ok := c.index[item.Key()]; ok {
			c.items[i] = item
			continue
		}
		c.index[item.Key()] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

// Lookup finds an item by case-insensitive name.
func (c *Catalog) Lookup(name string) (models.MenuItem, bool) {
	i, ok := c.index[models.ItemKey(name)]
	if !ok {
		return models.MenuItem{}, false
	}
	return c.items[i], true
}

// Items returns a copy of the menu in load order.
func (c *Catalog) Items() []models.MenuItem {
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of dishes on the menu.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Parse reads "name,price" records. Any unreadable or malformed record
// fails the whole parse; partial catalogs are never returned.
func Parse(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var items []models.MenuItem
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("%w: line %d: expected name,price", ErrMalformed, line)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid price %q", ErrMalformed, line, record[1])
		}
		items = append(items, models.MenuItem{
			Name:  strings.TrimSpace(record[0]),
			Price: price,
		})
	}
	return New(items)
}

// Load opens and parses a menu file.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open menu: %w", storage.ErrLoadFailure, err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: menu %s: %w", storage.ErrLoadFailure, path, err)
	}
	return c, nil
}
