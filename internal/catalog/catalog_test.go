package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmynk/diner/internal/storage"
)

func TestParse(t *testing.T) {
	c, err := Parse(strings.NewReader("STEAK,15.00\nFRIES,4.5\nCOLA,2\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if c.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", c.Len())
	}

	item, ok := c.Lookup("steak")
	if !ok {
		t.Fatal("expected case-insensitive lookup to find STEAK")
	}
	if item.Price.StringFixed(2) != "15.00" {
		t.Errorf("STEAK price = %s, want 15.00", item.Price.StringFixed(2))
	}

	items := c.Items()
	if items[0].Name != "STEAK" || items[2].Name != "COLA" {
		t.Errorf("items not in load order: %v", items)
	}

	if _, ok := c.Lookup("pizza"); ok {
		t.Error("expected PIZZA to be absent")
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing price", "STEAK\n"},
		{"bad price", "STEAK,abc\n"},
		{"negative price", "STEAK,-1\n"},
		{"empty name", ",3.00\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, storage.ErrLoadFailure) {
		t.Fatalf("expected ErrLoadFailure for missing menu file, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Menu.csv")
	if err := os.WriteFile(path, []byte("SALAD,7.25\n"), 0644); err != nil {
		t.Fatalf("failed to write menu: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := c.Lookup("Salad"); !ok {
		t.Error("expected SALAD on the menu")
	}
}
