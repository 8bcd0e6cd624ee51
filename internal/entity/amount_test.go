package entity

import (
	"errors"
	"math/big"
	"testing"
)

func TestAmountAddSameCurrency(t *testing.T) {
	a := NewToken(56, addrOne, 18, "AAA", "")
	x := NewAmount(a, big.NewInt(1000))
	y := NewAmount(a, big.NewInt(2000))

	sum, err := x.Add(y)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if sum.Quotient().Int64() != 3000 {
		t.Fatalf("sum = %s, want 3000", sum.Quotient())
	}
}

func TestAmountAddCurrencyMismatch(t *testing.T) {
	a := NewToken(56, addrOne, 18, "AAA", "")
	b := NewToken(56, addrTwo, 18, "BBB", "")

	_, err := NewAmount(a, big.NewInt(1)).Add(NewAmount(b, big.NewInt(1)))
	if !errors.Is(err, ErrCurrencyMismatch) {
		t.Fatalf("expected currency mismatch, got %v", err)
	}
	_, err = NewAmount(a, big.NewInt(1)).Sub(NewAmount(b, big.NewInt(1)))
	if !errors.Is(err, ErrCurrencyMismatch) {
		t.Fatalf("expected currency mismatch, got %v", err)
	}
}

func TestAmountFractionalDivision(t *testing.T) {
	a := NewToken(56, addrOne, 18, "AAA", "")
	amount := NewAmount(a, big.NewInt(90))

	// 90 / 0.8 = 112.5, held exactly with no truncation
	divided := amount.DivFraction(NewFractionFromInt64(8, 10))
	if !divided.Fraction.Equal(NewFractionFromInt64(225, 2)) {
		t.Fatalf("90 / 0.8 = %s/%s, want 225/2", divided.Num, divided.Den)
	}
	if divided.Quotient().Int64() != 112 {
		t.Fatalf("quotient = %s, want 112", divided.Quotient())
	}
}

func TestAmountDecimalString(t *testing.T) {
	a := NewToken(56, addrOne, 6, "USDX", "")
	amount := NewAmount(a, big.NewInt(1_500_000))
	if got := amount.DecimalString(); got != "1.500000" {
		t.Fatalf("decimal string = %s, want 1.500000", got)
	}

	raw := NewToken(56, addrTwo, 0, "RAW", "")
	if got := NewAmount(raw, big.NewInt(42)).DecimalString(); got != "42" {
		t.Fatalf("decimal string = %s, want 42", got)
	}
}
