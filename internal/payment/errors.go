package payment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is the parent of every input shape violation.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidNote is returned for a well-formed number that is not a note.
	ErrInvalidNote = errors.New("not a valid cash note")

	ErrOutOfSequence = errors.New("card terminal is not expecting this input")
)

// Field names a piece of card or cash input.
type Field string

const (
	FieldNote         Field = "note"
	FieldCardNumber   Field = "card number"
	FieldExpiry       Field = "expiry"
	FieldSecurityCode Field = "security code"
)

// FormatError describes a rejected input. WrongLength distinguishes a
// length violation from a non-digit character.
type FormatError struct {
	Field       Field
	WrongLength bool
	Want        int
}

func (e *FormatError) Error() string {
	if e.WrongLength {
		return fmt.Sprintf("%s must be %d digits long", e.Field, e.Want)
	}
	return fmt.Sprintf("%s must contain only digits", e.Field)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}
