package entity

import (
	"fmt"
	"math/big"
)

// Price is an exact exchange rate between a currency pair, expressed as
// quote-currency amount per base-currency amount.
type Price struct {
	BaseCurrency  Currency
	QuoteCurrency Currency
	Fraction
}

// NewPrice builds a price from raw amounts of base and quote currency.
func NewPrice(base, quote Currency, baseRaw, quoteRaw *big.Int) Price {
	return Price{
		BaseCurrency:  base,
		QuoteCurrency: quote,
		Fraction:      NewFraction(quoteRaw, baseRaw),
	}
}

// NewPriceFromFraction builds a price from an existing quote-per-base fraction.
func NewPriceFromFraction(base, quote Currency, f Fraction) Price {
	return Price{BaseCurrency: base, QuoteCurrency: quote, Fraction: f}
}

// Invert returns the price with base and quote sides swapped.
func (p Price) Invert() Price {
	return Price{
		BaseCurrency:  p.QuoteCurrency,
		QuoteCurrency: p.BaseCurrency,
		Fraction:      p.Fraction.Invert(),
	}
}

// Quote returns amount multiplied by the price, exactly, as an amount of
// the quote currency. The amount must be denominated in the base currency.
func (p Price) Quote(amount CurrencyAmount) (CurrencyAmount, error) {
	if !amount.Currency.Equal(p.BaseCurrency) {
		return CurrencyAmount{}, fmt.Errorf("quote %s with %s price: %w",
			amount.Currency.Symbol(), p.BaseCurrency.Symbol(), ErrCurrencyMismatch)
	}
	return NewAmountFromFraction(p.QuoteCurrency, amount.Fraction.Mul(p.Fraction)), nil
}
