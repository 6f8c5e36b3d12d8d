package payment

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		token      string
		want       int
		wantFormat bool
		wantNote   bool
	}{
		{token: "1", want: 1},
		{token: "5", want: 5},
		{token: "20", want: 20},
		{token: "100", want: 100},
		{token: "05", want: 5},
		{token: "3", wantNote: true},
		{token: "25", wantNote: true},
		{token: "1000", wantNote: true},
		{token: "", wantFormat: true},
		{token: "a", wantFormat: true},
		{token: "$5", wantFormat: true},
		{token: "5a", wantFormat: true},
		{token: "1 0", wantFormat: true},
		{token: "-5", wantFormat: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseNote(tt.token)
			switch {
			case tt.wantFormat:
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("ParseNote(%q) error = %v, want ErrInvalidFormat", tt.token, err)
				}
			case tt.wantNote:
				if !errors.Is(err, ErrInvalidNote) {
					t.Errorf("ParseNote(%q) error = %v, want ErrInvalidNote", tt.token, err)
				}
			default:
				if err != nil {
					t.Fatalf("ParseNote(%q) failed: %v", tt.token, err)
				}
				if got != tt.want {
					t.Errorf("ParseNote(%q) = %d, want %d", tt.token, got, tt.want)
				}
			}
		})
	}
}

func TestCashReconciler_ChangeOwed(t *testing.T) {
	c := NewCashReconciler(decimal.RequireFromString("23.50"), false)

	if _, err := c.Tender("20"); err != nil {
		t.Fatalf("Tender(20) failed: %v", err)
	}
	if c.Done() {
		t.Fatal("should not be done after 20 of 23.50")
	}

	if _, err := c.Tender("5"); err != nil {
		t.Fatalf("Tender(5) failed: %v", err)
	}
	if !c.Done() {
		t.Fatal("expected payment to complete at 25 > 23.50")
	}
	if got := c.Paid().StringFixed(2); got != "25.00" {
		t.Errorf("Paid() = %s, want 25.00", got)
	}
	if got := c.Change().StringFixed(2); got != "1.50" {
		t.Errorf("Change() = %s, want 1.50", got)
	}
}

// An exact payment does not complete; one more note is needed.
func TestCashReconciler_ExactPaymentContinues(t *testing.T) {
	c := NewCashReconciler(decimal.RequireFromString("20.00"), false)

	c.Tender("20")
	if c.Done() {
		t.Fatal("20 is not strictly greater than 20; payment should continue")
	}
	if !c.Remaining().IsZero() {
		t.Errorf("Remaining() = %s, want 0", c.Remaining())
	}

	c.Tender("1")
	if !c.Done() {
		t.Fatal("expected payment to complete at 21 > 20")
	}
	if got := c.Change().StringFixed(2); got != "1.00" {
		t.Errorf("Change() = %s, want 1.00", got)
	}
}

func TestCashReconciler_ExactMode(t *testing.T) {
	c := NewCashReconciler(decimal.RequireFromString("20.00"), true)
	c.Tender("20")
	if !c.Done() {
		t.Fatal("exact mode should complete at paid == due")
	}
	if !c.Change().IsZero() {
		t.Errorf("Change() = %s, want 0", c.Change())
	}
}

func TestCashReconciler_ZeroDue(t *testing.T) {
	strict := NewCashReconciler(decimal.Zero, false)
	if strict.Done() {
		t.Error("strict mode needs a note even when nothing is due")
	}

	exact := NewCashReconciler(decimal.Zero, true)
	if !exact.Done() {
		t.Error("exact mode should complete immediately when nothing is due")
	}
}

func TestCashReconciler_RejectedNoteLeavesPaid(t *testing.T) {
	c := NewCashReconciler(decimal.RequireFromString("10"), false)
	c.Tender("5")

	for _, token := range []string{"3", "abc", ""} {
		if _, err := c.Tender(token); err == nil {
			t.Errorf("Tender(%q) should fail", token)
		}
	}
	if got := c.Paid().StringFixed(2); got != "5.00" {
		t.Errorf("Paid() = %s, want 5.00", got)
	}
}
