package console

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/diner/internal/models"
)

func TestTable(t *testing.T) {
	lines := Table([]Row{
		{Name: "STEAK", Price: decimal.RequireFromString("15")},
		{Name: "COLA", Price: decimal.RequireFromString("2.5")},
	})

	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d: %q", len(lines), lines)
	}
	if lines[1] != "|                       FOOD                       |PRICE |" {
		t.Errorf("unexpected header: %q", lines[1])
	}
	if lines[3] != "|STEAK"+strings.Repeat(" ", 45)+"|15.00 |" {
		t.Errorf("unexpected row: %q", lines[3])
	}
	if lines[4] != "|COLA"+strings.Repeat(" ", 46)+"|2.50  |" {
		t.Errorf("unexpected row: %q", lines[4])
	}
	for _, i := range []int{0, 2, 5} {
		if lines[i] != Rule {
			t.Errorf("line %d = %q, want rule", i, lines[i])
		}
	}
	for _, l := range lines {
		if len(l) != len(Rule) {
			t.Errorf("line width %d, want %d: %q", len(l), len(Rule), l)
		}
	}
}

func TestBill(t *testing.T) {
	lines := Bill([]models.OrderEntry{
		{Key: "STEAK", Name: "STEAK", Price: decimal.RequireFromString("1275.5")},
	}, decimal.RequireFromString("1275.5"))

	if lines[1] != "|                           BILL                          |" {
		t.Errorf("unexpected bill header: %q", lines[1])
	}
	if got := lines[len(lines)-2]; got != "TOTAL: $1,275.50" {
		t.Errorf("total line = %q", got)
	}
	if lines[len(lines)-1] != Rule {
		t.Errorf("expected closing rule")
	}
}

func TestMenu(t *testing.T) {
	lines := Menu([]models.MenuItem{{Name: "FRIES", Price: decimal.RequireFromString("4.5")}})
	if !strings.Contains(lines[3], "|FRIES") || !strings.HasSuffix(lines[3], "|4.50  |") {
		t.Errorf("unexpected menu row: %q", lines[3])
	}
}
