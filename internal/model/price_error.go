package model

// PriceError records a pricing failure for one input line.
type PriceError struct {
	ID      string `json:"id,omitempty"`
	Line    int    `json:"line"`
	ChainID uint64 `json:"chain_id,omitempty"`
	Error   string `json:"error"`
}
