package model

// TokenRecord declares a token used by a trade quote request. Decimals may
// be omitted when an RPC URL is configured; transfer fees always come from
// the feed since standard ERC20 does not expose them.
type TokenRecord struct {
	Address    string `json:"address"`
	Decimals   *uint8 `json:"decimals,omitempty"`
	Symbol     string `json:"symbol,omitempty"`
	SellFeeBps uint32 `json:"sell_fee_bps,omitempty"`
	BuyFeeBps  uint32 `json:"buy_fee_bps,omitempty"`
}

// PoolRecord is a reserve snapshot of one pool. Reserves are decimal
// strings in base units, in argument token order.
type PoolRecord struct {
	TokenA   string `json:"token_a"`
	TokenB   string `json:"token_b"`
	Fee      uint32 `json:"fee"`
	ReserveA string `json:"reserve_a"`
	ReserveB string `json:"reserve_b"`
}

// RouteRecord is one quoted route of a trade request. The amount on the
// non-fixed side may be empty, in which case the pricer quotes it from
// the pool reserves.
type RouteRecord struct {
	Pools     []PoolRecord `json:"pools"`
	Input     string       `json:"input"`
	Output    string       `json:"output"`
	AmountIn  string       `json:"amount_in,omitempty"`
	AmountOut string       `json:"amount_out,omitempty"`
}

// TradeQuoteRecord is one input line of the pricer feed: a full route set
// for a single trade.
type TradeQuoteRecord struct {
	ID          string        `json:"id"`
	ChainID     uint64        `json:"chain_id"`
	TradeType   string        `json:"trade_type"`
	SlippageBps uint32        `json:"slippage_bps,omitempty"`
	Tokens      []TokenRecord `json:"tokens"`
	Routes      []RouteRecord `json:"routes"`
}
