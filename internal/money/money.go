// Package money formats decimal amounts for the dialogue.
package money

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Format renders an amount with two decimals and thousands separators,
// e.g. 1234.5 -> "1,234.50". Rounding is half away from zero and no
// precision is lost on large amounts.
func Format(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return sign + fixed
	}
	return sign + humanize.BigComma(n) + "." + frac
}

// Plain renders an amount with two decimals and no separators, as used in
// the menu table's fixed-width price column.
func Plain(d decimal.Decimal) string {
	return d.StringFixed(2)
}
