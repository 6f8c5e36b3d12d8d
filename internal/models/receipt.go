package models

import "github.com/shopspring/decimal"

// PaymentMethod identifies how a bill was settled.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Receipt records the settled outcome of one session.
type Receipt struct {
	// ID is the unique identifier for the receipt (UUID format).
	ID string

	// MemberID is the membership used for the discount, empty if none.
	MemberID string

	Entries []OrderEntry

	// Subtotal is the undiscounted bill.
	Subtotal decimal.Decimal

	// Due is the amount charged, after any membership discount.
	Due decimal.Decimal

	Discounted bool
	Method     PaymentMethod

	// Tendered and Change are only meaningful for cash payments.
	Tendered decimal.Decimal
	Change   decimal.Decimal

	// CardMasked shows only the last four digits; CardFingerprint is a bcrypt
	// digest of the full number. Both empty for cash payments.
	CardMasked      string
	CardFingerprint string

	// CreatedAt is the Unix timestamp when the receipt was recorded.
	CreatedAt int64
}
