package entity

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrCurrencyMismatch is returned when an operation mixes amounts or
// prices of different currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// CurrencyAmount is an exact quantity of base units of a currency. Amounts
// are integral at rest; intermediate computations may carry an exact
// non-integer fraction, truncated only where a caller asks for Quotient.
type CurrencyAmount struct {
	Currency Currency
	Fraction
}

// NewAmount builds an amount from a raw integer quantity of base units.
func NewAmount(currency Currency, raw *big.Int) CurrencyAmount {
	return CurrencyAmount{Currency: currency, Fraction: NewFractionFromBig(raw)}
}

// NewAmountFromFraction builds an amount from an exact fraction of base units.
func NewAmountFromFraction(currency Currency, f Fraction) CurrencyAmount {
	return CurrencyAmount{Currency: currency, Fraction: f}
}

// ZeroAmount returns a zero amount of the currency.
func ZeroAmount(currency Currency) CurrencyAmount {
	return NewAmount(currency, big.NewInt(0))
}

// Add returns a + other. Both amounts must share a currency.
func (a CurrencyAmount) Add(other CurrencyAmount) (CurrencyAmount, error) {
	if !a.Currency.Equal(other.Currency) {
		return CurrencyAmount{}, fmt.Errorf("add %s to %s: %w",
			other.Currency.Symbol(), a.Currency.Symbol(), ErrCurrencyMismatch)
	}
	return NewAmountFromFraction(a.Currency, a.Fraction.Add(other.Fraction)), nil
}

// Sub returns a - other. Both amounts must share a currency.
func (a CurrencyAmount) Sub(other CurrencyAmount) (CurrencyAmount, error) {
	if !a.Currency.Equal(other.Currency) {
		return CurrencyAmount{}, fmt.Errorf("subtract %s from %s: %w",
			other.Currency.Symbol(), a.Currency.Symbol(), ErrCurrencyMismatch)
	}
	return NewAmountFromFraction(a.Currency, a.Fraction.Sub(other.Fraction)), nil
}

// MulFraction returns the amount scaled by an exact fraction.
func (a CurrencyAmount) MulFraction(f Fraction) CurrencyAmount {
	return NewAmountFromFraction(a.Currency, a.Fraction.Mul(f))
}

// DivFraction returns the amount divided by an exact non-zero fraction,
// without truncation.
func (a CurrencyAmount) DivFraction(f Fraction) CurrencyAmount {
	return NewAmountFromFraction(a.Currency, a.Fraction.Div(f))
}

// DecimalString renders the amount scaled down by the currency decimals.
func (a CurrencyAmount) DecimalString() string {
	decimals := a.Currency.Decimals()
	if decimals == 0 {
		return a.Quotient().String()
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	scaled := a.Fraction.Div(NewFractionFromBig(scale))
	return scaled.FloatString(int(decimals))
}
