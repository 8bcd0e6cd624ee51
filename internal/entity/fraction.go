package entity

import "math/big"

// Fraction is an exact rational number backed by arbitrary-precision
// integers. Values are immutable: every operation returns a new Fraction
// and never mutates its operands. The denominator is kept positive.
type Fraction struct {
	Num *big.Int
	Den *big.Int
}

// NewFraction builds a fraction from numerator and denominator.
// The denominator must be non-zero.
func NewFraction(num, den *big.Int) Fraction {
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	return Fraction{Num: n, Den: d}
}

// NewFractionFromInt64 builds a fraction from int64 parts.
func NewFractionFromInt64(num, den int64) Fraction {
	return NewFraction(big.NewInt(num), big.NewInt(den))
}

// NewFractionFromBig builds a whole-number fraction.
func NewFractionFromBig(value *big.Int) Fraction {
	return NewFraction(value, big.NewInt(1))
}

// Add returns f + other.
func (f Fraction) Add(other Fraction) Fraction {
	num := new(big.Int).Mul(f.Num, other.Den)
	num.Add(num, new(big.Int).Mul(other.Num, f.Den))
	den := new(big.Int).Mul(f.Den, other.Den)
	return NewFraction(num, den)
}

// Sub returns f - other.
func (f Fraction) Sub(other Fraction) Fraction {
	num := new(big.Int).Mul(f.Num, other.Den)
	num.Sub(num, new(big.Int).Mul(other.Num, f.Den))
	den := new(big.Int).Mul(f.Den, other.Den)
	return NewFraction(num, den)
}

// Mul returns f * other.
func (f Fraction) Mul(other Fraction) Fraction {
	return NewFraction(
		new(big.Int).Mul(f.Num, other.Num),
		new(big.Int).Mul(f.Den, other.Den),
	)
}

// Div returns f / other. The other fraction must be non-zero.
func (f Fraction) Div(other Fraction) Fraction {
	return NewFraction(
		new(big.Int).Mul(f.Num, other.Den),
		new(big.Int).Mul(f.Den, other.Num),
	)
}

// Invert returns 1 / f. The fraction must be non-zero.
func (f Fraction) Invert() Fraction {
	return NewFraction(f.Den, f.Num)
}

// Sign returns -1, 0, or 1 according to the sign of the fraction.
func (f Fraction) Sign() int {
	return f.Num.Sign()
}

// Cmp compares f and other, returning -1, 0, or 1.
func (f Fraction) Cmp(other Fraction) int {
	left := new(big.Int).Mul(f.Num, other.Den)
	right := new(big.Int).Mul(other.Num, f.Den)
	return left.Cmp(right)
}

// Equal reports whether f and other represent the same rational value.
func (f Fraction) Equal(other Fraction) bool {
	return f.Cmp(other) == 0
}

// Quotient returns Num/Den as a truncating integer division.
func (f Fraction) Quotient() *big.Int {
	return new(big.Int).Quo(f.Num, f.Den)
}

// Remainder returns Num mod Den.
func (f Fraction) Remainder() *big.Int {
	return new(big.Int).Rem(f.Num, f.Den)
}

// FloatString renders the fraction as a decimal string with prec digits.
func (f Fraction) FloatString(prec int) string {
	return new(big.Rat).SetFrac(f.Num, f.Den).FloatString(prec)
}
