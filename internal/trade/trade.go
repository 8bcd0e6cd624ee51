package trade

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"tradeScope/internal/entity"
	"tradeScope/internal/route"
)

// Type fixes which side of every swap was the originally specified
// quantity.
type Type uint8

const (
	ExactInput Type = iota
	ExactOutput
)

func (t Type) String() string {
	switch t {
	case ExactInput:
		return "exact_input"
	case ExactOutput:
		return "exact_output"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// Swap is one route's contribution to a trade: the route plus the realized
// amounts quoted for it.
type Swap struct {
	Route        route.Route
	InputAmount  entity.CurrencyAmount
	OutputAmount entity.CurrencyAmount
}

// Trade aggregates one or more quoted swaps sharing an input and output
// currency. It is immutable after construction; derived fields are
// computed on first access and cached.
type Trade struct {
	swaps     []Swap
	tradeType Type

	inputAmount    *entity.CurrencyAmount
	outputAmount   *entity.CurrencyAmount
	executionPrice *entity.Price
	priceImpact    *entity.Percent
}

// New validates the swap set and builds a trade. Construction is
// all-or-nothing: any violation fails with the matching sentinel and no
// trade is returned.
func New(swaps []Swap, tradeType Type) (*Trade, error) {
	if len(swaps) == 0 {
		return nil, ErrNoRoutes
	}

	for i, s := range swaps {
		if s.Route == nil || !s.Route.Protocol().Known() {
			return nil, fmt.Errorf("swap %d: %w", i, ErrInvalidRouteType)
		}
	}

	input := swaps[0].Route.Input().Wrapped()
	output := swaps[0].Route.Output().Wrapped()
	for i, s := range swaps[1:] {
		if !s.Route.Input().Wrapped().Equal(input) {
			return nil, fmt.Errorf("swap %d routes %s, expected %s: %w",
				i+1, s.Route.Input().Symbol(), input.Symbol(), ErrInputCurrencyMismatch)
		}
		if !s.Route.Output().Wrapped().Equal(output) {
			return nil, fmt.Errorf("swap %d routes to %s, expected %s: %w",
				i+1, s.Route.Output().Symbol(), output.Symbol(), ErrOutputCurrencyMismatch)
		}
	}

	seen := make(map[common.Address]struct{})
	poolCount := 0
	for _, s := range swaps {
		for _, p := range s.Route.Pools() {
			seen[p.Address()] = struct{}{}
			poolCount++
		}
	}
	if len(seen) < poolCount {
		return nil, fmt.Errorf("%d pools across %d routes: %w", poolCount, len(swaps), ErrDuplicatePool)
	}

	return &Trade{
		swaps:     append([]Swap(nil), swaps...),
		tradeType: tradeType,
	}, nil
}

// Swaps returns the trade's swaps in construction order.
func (t *Trade) Swaps() []Swap {
	return t.swaps
}

// Type returns the trade direction tag.
func (t *Trade) Type() Type {
	return t.tradeType
}

// InputCurrency returns the trade's logical input currency.
func (t *Trade) InputCurrency() entity.Currency {
	return t.swaps[0].Route.Input()
}

// OutputCurrency returns the trade's logical output currency.
func (t *Trade) OutputCurrency() entity.Currency {
	return t.swaps[0].Route.Output()
}

// InputAmount returns the exact sum of per-swap input amounts.
func (t *Trade) InputAmount() entity.CurrencyAmount {
	if t.inputAmount != nil {
		return *t.inputAmount
	}
	total := entity.ZeroAmount(t.InputCurrency())
	for _, s := range t.swaps {
		total = entity.NewAmountFromFraction(total.Currency, total.Fraction.Add(s.InputAmount.Fraction))
	}
	t.inputAmount = &total
	return total
}

// OutputAmount returns the exact sum of per-swap output amounts.
func (t *Trade) OutputAmount() entity.CurrencyAmount {
	if t.outputAmount != nil {
		return *t.outputAmount
	}
	total := entity.ZeroAmount(t.OutputCurrency())
	for _, s := range t.swaps {
		total = entity.NewAmountFromFraction(total.Currency, total.Fraction.Add(s.OutputAmount.Fraction))
	}
	t.outputAmount = &total
	return total
}

// ExecutionPrice returns the realized aggregate price, output per input,
// in exact integer ratio form. A trade whose aggregate input is zero has
// no defined exchange rate and fails with ErrZeroInputAmount.
func (t *Trade) ExecutionPrice() (entity.Price, error) {
	if t.executionPrice != nil {
		return *t.executionPrice, nil
	}
	if t.InputAmount().Sign() == 0 {
		return entity.Price{}, ErrZeroInputAmount
	}
	price := entity.NewPrice(
		t.InputCurrency(), t.OutputCurrency(),
		t.InputAmount().Quotient(), t.OutputAmount().Quotient(),
	)
	t.executionPrice = &price
	return price, nil
}

// InputTax returns the input currency's sell transfer fee. Native assets
// and fee-free tokens tax exactly 0%.
func (t *Trade) InputTax() entity.Percent {
	input := t.InputCurrency()
	if input.IsNative() || input.Wrapped().SellFeeBps() == 0 {
		return entity.ZeroPercent()
	}
	return entity.NewPercentFromBps(input.Wrapped().SellFeeBps())
}

// OutputTax returns the output currency's buy transfer fee. Native assets
// and fee-free tokens tax exactly 0%.
func (t *Trade) OutputTax() entity.Percent {
	output := t.OutputCurrency()
	if output.IsNative() || output.Wrapped().BuyFeeBps() == 0 {
		return entity.ZeroPercent()
	}
	return entity.NewPercentFromBps(output.Wrapped().BuyFeeBps())
}

// PriceImpact returns the relative drop of the execution price below the
// routes' spot price, with transfer taxes factored out so the result
// reflects pool-curve slippage only.
//
// When the output tax is 100% no pre-tax reference amount is recoverable,
// and when the spot output is zero the trade moves no price; both cases
// are defined as exactly 0%.
func (t *Trade) PriceImpact() (entity.Percent, error) {
	if t.priceImpact != nil {
		return *t.priceImpact, nil
	}

	one := entity.NewFractionFromInt64(1, 1)
	outputTax := t.OutputTax()
	if outputTax.Fraction.Equal(one) {
		zero := entity.ZeroPercent()
		t.priceImpact = &zero
		return zero, nil
	}

	inputRetained := one.Sub(t.InputTax().Fraction)
	spotOutput := entity.ZeroAmount(t.OutputCurrency())
	for i, s := range t.swaps {
		postTaxInput := s.InputAmount.MulFraction(inputRetained)
		contribution, err := s.Route.MidPrice().Quote(postTaxInput)
		if err != nil {
			return entity.Percent{}, fmt.Errorf("swap %d spot output: %w", i, err)
		}
		spotOutput = entity.NewAmountFromFraction(spotOutput.Currency, spotOutput.Fraction.Add(contribution.Fraction))
	}

	if spotOutput.Sign() == 0 {
		zero := entity.ZeroPercent()
		t.priceImpact = &zero
		return zero, nil
	}

	preTaxOutput := t.OutputAmount().DivFraction(one.Sub(outputTax.Fraction))
	impactFraction := spotOutput.Fraction.Sub(preTaxOutput.Fraction).Div(spotOutput.Fraction)
	impact := entity.NewPercentFromFraction(impactFraction)
	t.priceImpact = &impact
	return impact, nil
}

// MinimumAmountOut returns the least output amount acceptable under the
// slippage tolerance. For exact-output trades the output side was fixed
// by construction and is returned unchanged.
func (t *Trade) MinimumAmountOut(tolerance entity.Percent) (entity.CurrencyAmount, error) {
	if tolerance.Sign() < 0 {
		return entity.CurrencyAmount{}, ErrNegativeSlippageTolerance
	}
	out := t.OutputAmount()
	if t.tradeType == ExactOutput {
		return out, nil
	}
	one := entity.NewFractionFromInt64(1, 1)
	bounded := one.Add(tolerance.Fraction).Invert().Mul(entity.NewFractionFromBig(out.Quotient()))
	return entity.NewAmount(out.Currency, bounded.Quotient()), nil
}

// MaximumAmountIn returns the greatest input amount acceptable under the
// slippage tolerance. For exact-input trades the input side was fixed by
// construction and is returned unchanged.
func (t *Trade) MaximumAmountIn(tolerance entity.Percent) (entity.CurrencyAmount, error) {
	if tolerance.Sign() < 0 {
		return entity.CurrencyAmount{}, ErrNegativeSlippageTolerance
	}
	in := t.InputAmount()
	if t.tradeType == ExactInput {
		return in, nil
	}
	one := entity.NewFractionFromInt64(1, 1)
	bounded := one.Add(tolerance.Fraction).Mul(entity.NewFractionFromBig(in.Quotient()))
	return entity.NewAmount(in.Currency, bounded.Quotient()), nil
}

// WorstExecutionPrice returns the least favorable price consistent with
// the slippage tolerance.
func (t *Trade) WorstExecutionPrice(tolerance entity.Percent) (entity.Price, error) {
	maxIn, err := t.MaximumAmountIn(tolerance)
	if err != nil {
		return entity.Price{}, err
	}
	minOut, err := t.MinimumAmountOut(tolerance)
	if err != nil {
		return entity.Price{}, err
	}
	if maxIn.Quotient().Sign() == 0 {
		return entity.Price{}, ErrZeroInputAmount
	}
	return entity.NewPrice(t.InputCurrency(), t.OutputCurrency(), maxIn.Quotient(), minOut.Quotient()), nil
}
