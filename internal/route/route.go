package route

import (
	"fmt"

	"tradeScope/internal/entity"
	"tradeScope/internal/pool"
)

// Protocol tags the pool variant a route trades through. The trade
// aggregator only depends on the Route capability set and rejects
// unrecognized tags.
type Protocol string

// ProtocolV2 is the fee-tiered constant-product pool variant.
const ProtocolV2 Protocol = "v2"

// Known reports whether the protocol is a supported variant.
func (p Protocol) Known() bool {
	return p == ProtocolV2
}

// Route is the uniform, read-only shape of a quoted exchange route: an
// ordered pool chain connecting an input currency to an output currency,
// with a pre-trade spot mid price.
type Route interface {
	Protocol() Protocol
	Pools() []*pool.Pool
	Path() []*entity.Token
	Input() entity.Currency
	Output() entity.Currency
	MidPrice() entity.Price
}

// V2Route is a route over constant-product pools. The constructor derives
// and validates the token path once; accessors copy references and never
// re-derive.
type V2Route struct {
	pools  []*pool.Pool
	path   []*entity.Token
	input  entity.Currency
	output entity.Currency

	midPrice *entity.Price
}

// NewV2Route builds a route from an ordered pool chain. The first pool
// must involve the input's wrapped token, each subsequent pool must
// connect to the previous one, and the chain must end at the output's
// wrapped token.
func NewV2Route(pools []*pool.Pool, input, output entity.Currency) (*V2Route, error) {
	if len(pools) == 0 {
		return nil, fmt.Errorf("route must have at least one pool")
	}
	if input == nil || output == nil {
		return nil, fmt.Errorf("route currencies must not be nil")
	}

	path := make([]*entity.Token, 0, len(pools)+1)
	path = append(path, input.Wrapped())
	for i, p := range pools {
		next, err := p.Opposite(path[i])
		if err != nil {
			return nil, fmt.Errorf("pool %d does not connect to path: %w", i, err)
		}
		path = append(path, next)
	}
	if !path[len(path)-1].Equal(output.Wrapped()) {
		return nil, fmt.Errorf("route ends at %s, expected %s",
			path[len(path)-1].Symbol(), output.Wrapped().Symbol())
	}

	return &V2Route{
		pools:  append([]*pool.Pool(nil), pools...),
		path:   path,
		input:  input,
		output: output,
	}, nil
}

func (r *V2Route) Protocol() Protocol { return ProtocolV2 }
func (r *V2Route) Pools() []*pool.Pool { return r.pools }
func (r *V2Route) Path() []*entity.Token { return r.path }
func (r *V2Route) Input() entity.Currency { return r.input }
func (r *V2Route) Output() entity.Currency { return r.output }

// MidPrice returns the route's spot price from input to output: the exact
// product of per-hop spot prices, re-based to the route currencies.
// Computed once and cached.
func (r *V2Route) MidPrice() entity.Price {
	if r.midPrice != nil {
		return *r.midPrice
	}

	product := entity.NewFractionFromInt64(1, 1)
	for i, p := range r.pools {
		if p.Token0.Equal(r.path[i]) {
			product = product.Mul(p.Token0Price().Fraction)
		} else {
			product = product.Mul(p.Token1Price().Fraction)
		}
	}

	price := entity.NewPriceFromFraction(r.input, r.output, product)
	r.midPrice = &price
	return price
}
