// Package console renders the menu and bill as fixed-width text tables.
package console

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/diner/internal/models"
	"github.com/mmynk/diner/internal/money"
)

const (
	nameWidth  = 50
	priceWidth = 6
)

// Rule is the horizontal separator under and over every table.
var Rule = strings.Repeat("-", nameWidth+priceWidth+3)

// Row is one line of a priced table.
type Row struct {
	Name  string
	Price decimal.Decimal
}

// Table renders rows under a FOOD/PRICE header. Names longer than the
// column are not truncated.
func Table(rows []Row) []string {
	lines := []string{
		Rule,
		"|" + center("FOOD", nameWidth) + "|" + fmt.Sprintf("%-*s", priceWidth, "PRICE") + "|",
		Rule,
	}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("|%-*s|%-*s|", nameWidth, r.Name, priceWidth, money.Plain(r.Price)))
	}
	return append(lines, Rule)
}

// Menu renders the catalog.
func Menu(items []models.MenuItem) []string {
	rows := make([]Row, len(items))
	for i, item := range items {
		rows[i] = Row{Name: item.Name, Price: item.Price}
	}
	return Table(rows)
}

// Bill renders the ordered entries and a grand total.
func Bill(entries []models.OrderEntry, total decimal.Decimal) []string {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{Name: e.Name, Price: e.Price}
	}

	lines := []string{
		Rule,
		"|" + center("BILL", len(Rule)-2) + "|",
		Rule,
		"",
	}
	lines = append(lines, Table(rows)...)
	return append(lines, "TOTAL: $"+money.Format(total), Rule)
}

// center pads s with spaces to width; odd padding puts the extra space on the left.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad - pad/2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
