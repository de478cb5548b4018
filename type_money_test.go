package cashpilot

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_Arithmetic(t *testing.T) {
	if got := USD(100).Add(USD(0.1)); !got.Equal(USD(100.1)) {
		t.Errorf("Add() = %s", got.Decimal())
	}
	if got := USD(1).Sub(USD(0.42)); !got.Equal(USD(0.58)) {
		t.Errorf("Sub() = %s, floats would miss this", got.Decimal())
	}
	if got := USD(500).Mul(decimal.RequireFromString("1.05")); !got.Equal(USD(525)) {
		t.Errorf("Mul() = %s", got.Decimal())
	}
	if got := USD(10).Neg(); !got.Equal(USD(-10)) {
		t.Errorf("Neg() = %s", got.Decimal())
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	// The empty currency is weak: it never wins a binary operation.
	if got := NO(10).Add(EUR(5)); got.Currency() != "EUR" {
		t.Errorf("currency = %q, want EUR", got.Currency())
	}
	if got := EUR(10).Add(NO(5)); got.Currency() != "EUR" {
		t.Errorf("currency = %q, want EUR", got.Currency())
	}
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		money Money
		want  string
	}{
		{USD(1234.56), "$1,234.56"},
		{EUR(1234.56), "€1.234,56"},
		{NO(1), "$1.00"}, // untagged money formats as USD
	}
	for _, tt := range tests {
		if got := tt.money.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	tests := []struct {
		money Money
		want  string
	}{
		{USD(10), "+$10.00"},
		{USD(-10), "-$10.00"},
		{USD(0), "-"},
	}
	for _, tt := range tests {
		if got := tt.money.SignedString(); got != tt.want {
			t.Errorf("SignedString() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(USD(12.34))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != "12.34" {
		t.Errorf("json.Marshal() = %s, want a bare number", data)
	}

	var m Money
	if err := json.Unmarshal([]byte("56.78"), &m); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !m.Equal(NO(56.78)) || m.Currency() != "" {
		t.Errorf("json.Unmarshal() = %s %q, want 56.78 with no currency", m.Decimal(), m.Currency())
	}
}
