package entity

import (
	"errors"
	"math/big"
	"testing"
)

func TestPriceQuoteExact(t *testing.T) {
	a := NewToken(56, addrOne, 18, "AAA", "")
	b := NewToken(56, addrTwo, 18, "BBB", "")

	// 2 BBB per AAA
	price := NewPrice(a, b, big.NewInt(100), big.NewInt(200))
	quoted, err := price.Quote(NewAmount(a, big.NewInt(1500)))
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !quoted.Currency.Equal(b) {
		t.Fatalf("quoted currency = %s, want BBB", quoted.Currency.Symbol())
	}
	if quoted.Quotient().Int64() != 3000 {
		t.Fatalf("quoted = %s, want 3000", quoted.Quotient())
	}
}

func TestPriceQuoteCurrencyMismatch(t *testing.T) {
	a := NewToken(56, addrOne, 18, "AAA", "")
	b := NewToken(56, addrTwo, 18, "BBB", "")

	price := NewPrice(a, b, big.NewInt(1), big.NewInt(1))
	if _, err := price.Quote(NewAmount(b, big.NewInt(1))); !errors.Is(err, ErrCurrencyMismatch) {
		t.Fatalf("expected currency mismatch, got %v", err)
	}
}

func TestPriceInvert(t *testing.T) {
	a := NewToken(56, addrOne, 18, "AAA", "")
	b := NewToken(56, addrTwo, 18, "BBB", "")

	price := NewPrice(a, b, big.NewInt(100), big.NewInt(300))
	inverted := price.Invert()

	if !inverted.BaseCurrency.Equal(b) || !inverted.QuoteCurrency.Equal(a) {
		t.Fatalf("inverted currencies not swapped")
	}
	if !inverted.Fraction.Equal(NewFractionFromInt64(1, 3)) {
		t.Fatalf("inverted fraction = %s/%s, want 1/3", inverted.Num, inverted.Den)
	}
}
