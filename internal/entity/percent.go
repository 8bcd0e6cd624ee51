package entity

import "math/big"

const bpsDenominator = 10_000

// Percent is an exact fraction interpreted as a proportion (1/1 = 100%).
type Percent struct {
	Fraction
}

// NewPercent builds a percent from int64 numerator and denominator.
func NewPercent(num, den int64) Percent {
	return Percent{NewFractionFromInt64(num, den)}
}

// NewPercentFromFraction wraps an existing fraction as a percent.
func NewPercentFromFraction(f Fraction) Percent {
	return Percent{f}
}

// NewPercentFromBps builds a percent from basis points.
func NewPercentFromBps(bps uint32) Percent {
	return Percent{NewFraction(new(big.Int).SetUint64(uint64(bps)), big.NewInt(bpsDenominator))}
}

// ZeroPercent returns an exact 0%.
func ZeroPercent() Percent {
	return NewPercent(0, 1)
}

// HundredPercent returns an exact 100%.
func HundredPercent() Percent {
	return NewPercent(1, 1)
}
