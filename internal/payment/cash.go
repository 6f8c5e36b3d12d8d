// Package payment settles a bill in cash or by card.
package payment

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"
)

// Denominations lists the notes the till accepts, in dollars.
var Denominations = []int{1, 2, 5, 10, 20, 50, 100}

// CashReconciler accumulates tendered notes against an amount due.
//
// By default the payment only completes once the notes strictly exceed the
// amount due, so an exact payment needs one more note. Exact mode completes
// at paid >= due instead.
type CashReconciler struct {
	due   decimal.Decimal
	paid  decimal.Decimal
	exact bool
}

// NewCashReconciler starts a cash payment of due.
func NewCashReconciler(due decimal.Decimal, exact bool) *CashReconciler {
	return &CashReconciler{
		due:   due,
		paid:  decimal.Zero,
		exact: exact,
	}
}

// ParseNote validates a tendered token. Every character but the last must
// be a digit and the whole token must parse to one of Denominations.
func ParseNote(token string) (int, error) {
	if token == "" {
		return 0, &FormatError{Field: FieldNote}
	}
	for i := 0; i < len(token)-1; i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, &FormatError{Field: FieldNote}
		}
	}
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, &FormatError{Field: FieldNote}
	}
	if !slices.Contains(Denominations, value) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidNote, value)
	}
	return value, nil
}

// Tender adds one note to the amount paid. Rejected tokens leave the
// amount paid unchanged.
func (c *CashReconciler) Tender(token string) (int, error) {
	value, err := ParseNote(token)
	if err != nil {
		return 0, err
	}
	c.paid = c.paid.Add(decimal.NewFromInt(int64(value)))
	return value, nil
}

// Done reports whether enough cash has been tendered.
func (c *CashReconciler) Done() bool {
	if c.exact {
		return c.paid.GreaterThanOrEqual(c.due)
	}
	return c.paid.GreaterThan(c.due)
}

// Due returns the amount being settled.
func (c *CashReconciler) Due() decimal.Decimal {
	return c.due
}

// Paid returns the cash tendered so far.
func (c *CashReconciler) Paid() decimal.Decimal {
	return c.paid
}

// Remaining returns due minus paid. It goes negative once change is owed.
func (c *CashReconciler) Remaining() decimal.Decimal {
	return c.due.Sub(c.paid)
}

// Change returns max(0, paid - due).
func (c *CashReconciler) Change() decimal.Decimal {
	change := c.paid.Sub(c.due)
	if change.IsNegative() {
		return decimal.Zero
	}
	return change
}
