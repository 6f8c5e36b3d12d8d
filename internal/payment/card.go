package payment

import (
	"strings"
)

const (
	cardNumberLength   = 16
	expiryLength       = 4
	securityCodeLength = 3
)

func validateDigits(field Field, value string, length int) error {
	if len(value) != length {
		return &FormatError{Field: field, WrongLength: true, Want: length}
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return &FormatError{Field: field, Want: length}
		}
	}
	return nil
}

// ValidateCardNumber requires exactly 16 digits.
func ValidateCardNumber(number string) error {
	return validateDigits(FieldCardNumber, number, cardNumberLength)
}

// ValidateExpiry requires exactly 4 digits (MMYY). Month and year ranges
// are not checked.
func ValidateExpiry(expiry string) error {
	return validateDigits(FieldExpiry, expiry, expiryLength)
}

// ValidateSecurityCode requires exactly 3 digits.
func ValidateSecurityCode(code string) error {
	return validateDigits(FieldSecurityCode, code, securityCodeLength)
}

// FormatCardNumber groups digits in runs of four separated by one space.
func FormatCardNumber(number string) string {
	var b strings.Builder
	for i := 0; i < len(number); i++ {
		b.WriteByte(number[i])
		if (i+1)%4 == 0 && i != len(number)-1 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// MaskCardNumber hides all but the last four digits, keeping the grouping.
func MaskCardNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	masked := strings.Repeat("*", len(number)-4) + number[len(number)-4:]
	return FormatCardNumber(masked)
}
