package trade

import "errors"

var (
	// ErrNoRoutes is returned when a trade is constructed with no swaps.
	ErrNoRoutes = errors.New("trade has no routes")

	// ErrInvalidRouteType is returned when a swap carries a route of an
	// unrecognized protocol variant.
	ErrInvalidRouteType = errors.New("invalid route type")

	// ErrInputCurrencyMismatch is returned when swaps disagree on the
	// shared input currency in canonical form.
	ErrInputCurrencyMismatch = errors.New("input currency mismatch")

	// ErrOutputCurrencyMismatch is returned when swaps disagree on the
	// shared output currency in canonical form.
	ErrOutputCurrencyMismatch = errors.New("output currency mismatch")

	// ErrDuplicatePool is returned when the same liquidity venue appears
	// in more than one route of a trade.
	ErrDuplicatePool = errors.New("duplicate pool across routes")

	// ErrNegativeSlippageTolerance is returned by the slippage-bounding
	// methods when the tolerance is below zero.
	ErrNegativeSlippageTolerance = errors.New("negative slippage tolerance")

	// ErrZeroInputAmount is returned by the price accessors when the
	// aggregate input amount is zero and no exchange rate is defined.
	ErrZeroInputAmount = errors.New("zero input amount")
)
