package model

// PricedTrade is the priced result of one trade quote record. Amounts are
// decimal strings in base units; ratios are fixed-precision decimal
// strings.
type PricedTrade struct {
	ID               string `json:"id"`
	ChainID          uint64 `json:"chain_id"`
	TradeType        string `json:"trade_type"`
	InputToken       string `json:"input_token"`
	OutputToken      string `json:"output_token"`
	RouteCount       int    `json:"route_count"`
	AmountIn         string `json:"amount_in"`
	AmountOut        string `json:"amount_out"`
	ExecutionPrice   string `json:"execution_price"`
	PriceImpact      string `json:"price_impact"`
	InputTaxBps      uint32 `json:"input_tax_bps"`
	OutputTaxBps     uint32 `json:"output_tax_bps"`
	SlippageBps      uint32 `json:"slippage_bps"`
	MinimumAmountOut string `json:"minimum_amount_out"`
	MaximumAmountIn  string `json:"maximum_amount_in"`
	WorstPrice       string `json:"worst_price"`
	PricedAt         string `json:"priced_at"`
}
