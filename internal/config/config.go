// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Store backends.
const (
	StoreCSV    = "csv"
	StoreSQLite = "sqlite"
)

type Config struct {
	MenuPath string
	Store    StoreConfig
	Billing  BillingConfig

	// MetricsAddr serves /metrics when non-empty.
	MetricsAddr string
	LogLevel    string
}

type StoreConfig struct {
	Backend     string
	MembersPath string
	DBPath      string
}

type BillingConfig struct {
	// Discount multiplies member bills; 0.85 is 15% off.
	Discount decimal.Decimal

	// ExactTender completes cash payments at paid >= due instead of paid > due.
	ExactTender bool
}

// Load reads .env if present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an environment lookup function.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	discount, err := decimal.NewFromString(get("DINER_DISCOUNT", "0.85"))
	if err != nil {
		return nil, fmt.Errorf("invalid DINER_DISCOUNT: %w", err)
	}
	if !discount.IsPositive() || discount.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("invalid DINER_DISCOUNT: %s must be in (0, 1]", discount)
	}

	exact, err := strconv.ParseBool(get("DINER_EXACT_TENDER", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DINER_EXACT_TENDER: %w", err)
	}

	backend := strings.ToLower(get("DINER_STORE", StoreCSV))
	if backend != StoreCSV && backend != StoreSQLite {
		return nil, fmt.Errorf("invalid DINER_STORE: %q (want %s or %s)", backend, StoreCSV, StoreSQLite)
	}

	return &Config{
		MenuPath: get("DINER_MENU_PATH", "res/Menu.csv"),
		Store: StoreConfig{
			Backend:     backend,
			MembersPath: get("DINER_MEMBERS_PATH", "res/Members.csv"),
			DBPath:      get("DINER_DB_PATH", "./data/diner.db"),
		},
		Billing: BillingConfig{
			Discount:    discount,
			ExactTender: exact,
		},
		MetricsAddr: get("DINER_METRICS_ADDR", ""),
		LogLevel:    get("LOG_LEVEL", "info"),
	}, nil
}
