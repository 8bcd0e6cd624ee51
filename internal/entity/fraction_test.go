package entity

import (
	"math/big"
	"testing"
)

func TestFractionArithmeticExact(t *testing.T) {
	a := NewFractionFromInt64(1, 3)
	b := NewFractionFromInt64(1, 6)

	sum := a.Add(b)
	if !sum.Equal(NewFractionFromInt64(1, 2)) {
		t.Fatalf("1/3 + 1/6 = %s/%s, want 1/2", sum.Num, sum.Den)
	}

	diff := a.Sub(b)
	if !diff.Equal(NewFractionFromInt64(1, 6)) {
		t.Fatalf("1/3 - 1/6 = %s/%s, want 1/6", diff.Num, diff.Den)
	}

	product := a.Mul(b)
	if !product.Equal(NewFractionFromInt64(1, 18)) {
		t.Fatalf("1/3 * 1/6 = %s/%s, want 1/18", product.Num, product.Den)
	}

	quot := a.Div(b)
	if !quot.Equal(NewFractionFromInt64(2, 1)) {
		t.Fatalf("(1/3) / (1/6) = %s/%s, want 2", quot.Num, quot.Den)
	}
}

func TestFractionImmutable(t *testing.T) {
	a := NewFractionFromInt64(1, 3)
	b := NewFractionFromInt64(1, 6)
	_ = a.Add(b)

	if a.Num.Int64() != 1 || a.Den.Int64() != 3 {
		t.Fatalf("operand mutated: %s/%s", a.Num, a.Den)
	}
}

func TestFractionSignNormalization(t *testing.T) {
	f := NewFractionFromInt64(3, -4)
	if f.Den.Sign() <= 0 {
		t.Fatalf("denominator not normalized: %s/%s", f.Num, f.Den)
	}
	if f.Sign() != -1 {
		t.Fatalf("sign = %d, want -1", f.Sign())
	}
	if !f.Equal(NewFractionFromInt64(-3, 4)) {
		t.Fatalf("3/-4 should equal -3/4")
	}
}

func TestFractionQuotientTruncates(t *testing.T) {
	f := NewFractionFromInt64(150, 100)
	if got := f.Quotient().Int64(); got != 1 {
		t.Fatalf("quotient = %d, want 1", got)
	}

	neg := NewFractionFromInt64(-150, 100)
	if got := neg.Quotient().Int64(); got != -1 {
		t.Fatalf("negative quotient = %d, want -1 (truncation toward zero)", got)
	}
}

func TestFractionCmp(t *testing.T) {
	a := NewFractionFromInt64(1, 3)
	b := NewFractionFromInt64(2, 5)
	if a.Cmp(b) != -1 {
		t.Fatalf("1/3 should be less than 2/5")
	}
	if b.Cmp(a) != 1 {
		t.Fatalf("2/5 should be greater than 1/3")
	}
}

func TestFractionFloatString(t *testing.T) {
	f := NewFractionFromInt64(1, 8)
	if got := f.FloatString(4); got != "0.1250" {
		t.Fatalf("float string = %s, want 0.1250", got)
	}
}

func TestFractionBigOperands(t *testing.T) {
	big1, ok := new(big.Int).SetString("340282366920938463463374607431768211456", 10)
	if !ok {
		t.Fatalf("parse big int failed")
	}
	f := NewFraction(big1, big.NewInt(2))
	half := f.Mul(NewFractionFromInt64(1, 2))
	expected, _ := new(big.Int).SetString("85070591730234615865843651857942052864", 10)
	if half.Quotient().Cmp(expected) != 0 {
		t.Fatalf("big quotient = %s, want %s", half.Quotient(), expected)
	}
}

func TestPercentFromBps(t *testing.T) {
	p := NewPercentFromBps(50)
	if !p.Fraction.Equal(NewFractionFromInt64(1, 200)) {
		t.Fatalf("50 bps = %s/%s, want 1/200", p.Num, p.Den)
	}
	if !NewPercentFromBps(10_000).Fraction.Equal(HundredPercent().Fraction) {
		t.Fatalf("10000 bps should be exactly 100%%")
	}
	if ZeroPercent().Sign() != 0 {
		t.Fatalf("zero percent should have zero sign")
	}
}
