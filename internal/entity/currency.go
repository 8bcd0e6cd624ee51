package entity

import "github.com/ethereum/go-ethereum/common"

// Currency is an opaque token identity: either a contract-addressed token
// or the chain-native asset. Equality on canonical form goes through
// Wrapped().
type Currency interface {
	IsNative() bool
	ChainID() uint64
	Decimals() uint8
	Symbol() string
	Wrapped() *Token
	Equal(other Currency) bool
}

// Token is a contract-addressed currency. Transfer-fee basis points are
// optional; zero means the token charges no fee on that side.
type Token struct {
	chainID    uint64
	address    common.Address
	decimals   uint8
	symbol     string
	name       string
	sellFeeBps uint32
	buyFeeBps  uint32
}

// NewToken builds a token with no transfer fees.
func NewToken(chainID uint64, address common.Address, decimals uint8, symbol, name string) *Token {
	return &Token{
		chainID:  chainID,
		address:  address,
		decimals: decimals,
		symbol:   symbol,
		name:     name,
	}
}

// NewTaxedToken builds a token that charges transfer fees, in basis points,
// on sell and/or buy.
func NewTaxedToken(chainID uint64, address common.Address, decimals uint8, symbol, name string, sellFeeBps, buyFeeBps uint32) *Token {
	token := NewToken(chainID, address, decimals, symbol, name)
	token.sellFeeBps = sellFeeBps
	token.buyFeeBps = buyFeeBps
	return token
}

func (t *Token) IsNative() bool { return false }
func (t *Token) ChainID() uint64 { return t.chainID }
func (t *Token) Decimals() uint8 { return t.decimals }
func (t *Token) Symbol() string { return t.symbol }
func (t *Token) Name() string { return t.name }
func (t *Token) SellFeeBps() uint32 { return t.sellFeeBps }
func (t *Token) BuyFeeBps() uint32 { return t.buyFeeBps }

// Address returns the token contract address.
func (t *Token) Address() common.Address { return t.address }

// Wrapped returns the token itself; tokens are their own canonical form.
func (t *Token) Wrapped() *Token { return t }

// Equal reports whether other is the same token on the same chain.
func (t *Token) Equal(other Currency) bool {
	if other == nil || other.IsNative() {
		return false
	}
	wrapped := other.Wrapped()
	return t.chainID == wrapped.chainID && t.address == wrapped.address
}

// SortsBefore reports whether t orders before other by address, the
// canonical pool token ordering.
func (t *Token) SortsBefore(other *Token) bool {
	return t.address.Cmp(other.address) < 0
}

// Native is the chain-native asset. Its canonical form is the wrapped
// token it trades as on pools.
type Native struct {
	chainID  uint64
	decimals uint8
	symbol   string
	name     string
	wrapped  *Token
}

// NewNative builds a native currency backed by its wrapped token.
func NewNative(chainID uint64, decimals uint8, symbol, name string, wrapped *Token) *Native {
	return &Native{
		chainID:  chainID,
		decimals: decimals,
		symbol:   symbol,
		name:     name,
		wrapped:  wrapped,
	}
}

func (n *Native) IsNative() bool { return true }
func (n *Native) ChainID() uint64 { return n.chainID }
func (n *Native) Decimals() uint8 { return n.decimals }
func (n *Native) Symbol() string { return n.symbol }
func (n *Native) Name() string { return n.name }

// Wrapped returns the canonical wrapped token.
func (n *Native) Wrapped() *Token { return n.wrapped }

// Equal reports whether other is the native asset of the same chain.
func (n *Native) Equal(other Currency) bool {
	return other != nil && other.IsNative() && other.ChainID() == n.chainID
}
