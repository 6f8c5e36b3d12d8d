package payment

import (
	"errors"
	"testing"
)

func TestTerminal_HappyPath(t *testing.T) {
	term := NewTerminal()

	steps := []struct {
		value string
		next  Stage
	}{
		{"1234567890123456", StageExpiry},
		{"1221", StageSecurityCode},
		{"123", StageConfirm},
	}
	for _, s := range steps {
		if err := term.Enter(s.value); err != nil {
			t.Fatalf("Enter(%q) failed: %v", s.value, err)
		}
		if term.Stage() != s.next {
			t.Fatalf("stage = %s, want %s", term.Stage(), s.next)
		}
	}

	if err := term.Confirm(true); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if !term.Approved() {
		t.Error("expected terminal to be approved")
	}
	if term.Number() != "1234567890123456" || term.Expiry() != "1221" {
		t.Errorf("captured %s/%s", term.Number(), term.Expiry())
	}
}

func TestTerminal_InvalidFieldStays(t *testing.T) {
	term := NewTerminal()
	if err := term.Enter("1234"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
	if term.Stage() != StageCardNumber {
		t.Errorf("stage = %s, want card_number", term.Stage())
	}
}

func TestTerminal_DeclineRestarts(t *testing.T) {
	term := NewTerminal()
	term.Enter("1234567890123456")
	term.Enter("1221")
	term.Enter("123")

	if err := term.Confirm(false); err != nil {
		t.Fatalf("Confirm(false) failed: %v", err)
	}
	if term.Stage() != StageCardNumber {
		t.Errorf("stage = %s, want card_number", term.Stage())
	}
	if term.Number() != "" || term.Expiry() != "" {
		t.Error("expected captured fields to be cleared")
	}
}

func TestTerminal_OutOfSequence(t *testing.T) {
	term := NewTerminal()
	if err := term.Confirm(true); !errors.Is(err, ErrOutOfSequence) {
		t.Errorf("expected ErrOutOfSequence, got %v", err)
	}
}
