package quote

import (
	"errors"
	"fmt"
	"math/big"

	"tradeScope/internal/entity"
	"tradeScope/internal/pool"
	"tradeScope/internal/route"
	"tradeScope/internal/trade"
)

var (
	// ErrInsufficientLiquidity is returned when an exact-output leg asks
	// for at least the whole out-side reserve of a pool.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")
)

// Quoter resolves realized amounts for a route: given one fixed side, it
// returns the other. Implementations may fail when a route cannot carry
// the requested size.
type Quoter interface {
	QuoteExactInput(r route.Route, amountIn entity.CurrencyAmount) (entity.CurrencyAmount, error)
	QuoteExactOutput(r route.Route, amountOut entity.CurrencyAmount) (entity.CurrencyAmount, error)
}

// ReserveQuoter quotes routes against pool reserve snapshots using the
// constant-product formula with the pool fee applied on the input side.
type ReserveQuoter struct{}

// NewReserveQuoter returns a reserve-based quoter.
func NewReserveQuoter() *ReserveQuoter {
	return &ReserveQuoter{}
}

// QuoteExactInput walks the route forward, returning the realized output
// amount for a fixed input.
func (q *ReserveQuoter) QuoteExactInput(r route.Route, amountIn entity.CurrencyAmount) (entity.CurrencyAmount, error) {
	if !amountIn.Currency.Wrapped().Equal(r.Input().Wrapped()) {
		return entity.CurrencyAmount{}, fmt.Errorf("quote %s on %s route: %w",
			amountIn.Currency.Symbol(), r.Input().Symbol(), entity.ErrCurrencyMismatch)
	}

	path := r.Path()
	amount := amountIn.Quotient()
	for i, p := range r.Pools() {
		reserveIn, reserveOut, err := p.ReservesOf(path[i])
		if err != nil {
			return entity.CurrencyAmount{}, fmt.Errorf("hop %d: %w", i, err)
		}
		amount = GetAmountOut(amount, reserveIn, reserveOut, p.Fee)
	}
	return entity.NewAmount(r.Output(), amount), nil
}

// QuoteExactOutput walks the route backward, returning the input amount
// required for a fixed output.
func (q *ReserveQuoter) QuoteExactOutput(r route.Route, amountOut entity.CurrencyAmount) (entity.CurrencyAmount, error) {
	if !amountOut.Currency.Wrapped().Equal(r.Output().Wrapped()) {
		return entity.CurrencyAmount{}, fmt.Errorf("quote %s on %s route: %w",
			amountOut.Currency.Symbol(), r.Output().Symbol(), entity.ErrCurrencyMismatch)
	}

	pools := r.Pools()
	path := r.Path()
	amount := amountOut.Quotient()
	for i := len(pools) - 1; i >= 0; i-- {
		reserveIn, reserveOut, err := pools[i].ReservesOf(path[i])
		if err != nil {
			return entity.CurrencyAmount{}, fmt.Errorf("hop %d: %w", i, err)
		}
		amount, err = GetAmountIn(amount, reserveIn, reserveOut, pools[i].Fee)
		if err != nil {
			return entity.CurrencyAmount{}, fmt.Errorf("hop %d: %w", i, err)
		}
	}
	return entity.NewAmount(r.Input(), amount), nil
}

// GetAmountOut applies the constant-product formula with the fee charged
// on the input, truncating to integer base units.
func GetAmountOut(amountIn, reserveIn, reserveOut *big.Int, fee uint32) *big.Int {
	feeDen := big.NewInt(pool.FeeDenominator)
	inWithFee := new(big.Int).Mul(amountIn, big.NewInt(int64(pool.FeeDenominator-fee)))
	numerator := new(big.Int).Mul(inWithFee, reserveOut)
	denominator := new(big.Int).Mul(reserveIn, feeDen)
	denominator.Add(denominator, inWithFee)
	return numerator.Div(numerator, denominator)
}

// GetAmountIn inverts GetAmountOut, rounding the required input up. Fails
// when amountOut cannot be drawn from the out-side reserve.
func GetAmountIn(amountOut, reserveIn, reserveOut *big.Int, fee uint32) (*big.Int, error) {
	if amountOut.Cmp(reserveOut) >= 0 {
		return nil, fmt.Errorf("need %s of reserve %s: %w",
			amountOut.String(), reserveOut.String(), ErrInsufficientLiquidity)
	}
	numerator := new(big.Int).Mul(reserveIn, amountOut)
	numerator.Mul(numerator, big.NewInt(pool.FeeDenominator))
	denominator := new(big.Int).Sub(reserveOut, amountOut)
	denominator.Mul(denominator, big.NewInt(int64(pool.FeeDenominator-fee)))
	amountIn := numerator.Div(numerator, denominator)
	return amountIn.Add(amountIn, big.NewInt(1)), nil
}

// RouteAmount pairs a route with the fixed-side amount to quote it for.
type RouteAmount struct {
	Route  route.Route
	Amount entity.CurrencyAmount
}

// FromRoute quotes a single route and constructs the trade. A quoting
// failure aborts construction and propagates unmodified.
func FromRoute(q Quoter, r route.Route, amount entity.CurrencyAmount, tradeType trade.Type) (*trade.Trade, error) {
	return FromRoutes(q, []RouteAmount{{Route: r, Amount: amount}}, tradeType)
}

// FromRoutes quotes every route for its fixed side, then constructs the
// aggregate trade. All quotes must resolve before construction begins.
func FromRoutes(q Quoter, routes []RouteAmount, tradeType trade.Type) (*trade.Trade, error) {
	swaps := make([]trade.Swap, 0, len(routes))
	for i, ra := range routes {
		var s trade.Swap
		s.Route = ra.Route

		switch tradeType {
		case trade.ExactInput:
			out, err := q.QuoteExactInput(ra.Route, ra.Amount)
			if err != nil {
				return nil, fmt.Errorf("quote route %d: %w", i, err)
			}
			s.InputAmount = ra.Amount
			s.OutputAmount = out
		case trade.ExactOutput:
			in, err := q.QuoteExactOutput(ra.Route, ra.Amount)
			if err != nil {
				return nil, fmt.Errorf("quote route %d: %w", i, err)
			}
			s.InputAmount = in
			s.OutputAmount = ra.Amount
		default:
			return nil, fmt.Errorf("unknown trade type %s", tradeType)
		}

		swaps = append(swaps, s)
	}
	return trade.New(swaps, tradeType)
}
