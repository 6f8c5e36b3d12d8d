package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"1.5", "1.50"},
		{"15", "15.00"},
		{"12.75", "12.75"},
		{"1234.5", "1,234.50"},
		{"1234567.891", "1,234,567.89"},
		{"12.745", "12.75"},
		{"999.995", "1,000.00"},
		{"-1234.5", "-1,234.50"},
		{"123456789012345678.99", "123,456,789,012,345,678.99"},
		{"0.004", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Format(decimal.RequireFromString(tt.in))
			if got != tt.want {
				t.Errorf("Format(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlain(t *testing.T) {
	if got := Plain(decimal.RequireFromString("1234.5")); got != "1234.50" {
		t.Errorf("Plain(1234.5) = %q, want %q", got, "1234.50")
	}
}
