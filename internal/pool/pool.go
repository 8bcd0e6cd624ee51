package pool

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"tradeScope/internal/entity"
)

// FeeDenominator is the fee unit: hundredths of a basis point.
const FeeDenominator = 1_000_000

// Factory deployment parameters used for canonical pool addressing.
var (
	FactoryAddress   = common.HexToAddress("0x1F98431c8aD98523631AE4a59f267346ea31F984")
	PoolInitCodeHash = common.HexToHash("0xe34f199b19b2b4f47f68442619d555527d244f78a3297ea89325f843f87b8b54")
)

// Pool is a liquidity venue between two tokens at a fee tier. Identity is
// the canonical address derived from (token0, token1, fee); reserves are a
// state snapshot and carry no identity.
type Pool struct {
	Token0   *entity.Token
	Token1   *entity.Token
	Fee      uint32
	Reserve0 *big.Int
	Reserve1 *big.Int

	address common.Address
}

// New builds a pool, ordering tokens canonically by address. Reserves are
// given in token order of the arguments, not canonical order.
func New(tokenA, tokenB *entity.Token, fee uint32, reserveA, reserveB *big.Int) (*Pool, error) {
	if tokenA == nil || tokenB == nil {
		return nil, fmt.Errorf("pool tokens must not be nil")
	}
	if tokenA.Equal(tokenB) {
		return nil, fmt.Errorf("pool tokens must differ: %s", tokenA.Symbol())
	}
	if fee >= FeeDenominator {
		return nil, fmt.Errorf("pool fee %d out of range", fee)
	}
	if reserveA == nil || reserveB == nil || reserveA.Sign() <= 0 || reserveB.Sign() <= 0 {
		return nil, fmt.Errorf("pool reserves must be positive")
	}

	p := &Pool{Fee: fee}
	if tokenA.SortsBefore(tokenB) {
		p.Token0, p.Token1 = tokenA, tokenB
		p.Reserve0 = new(big.Int).Set(reserveA)
		p.Reserve1 = new(big.Int).Set(reserveB)
	} else {
		p.Token0, p.Token1 = tokenB, tokenA
		p.Reserve0 = new(big.Int).Set(reserveB)
		p.Reserve1 = new(big.Int).Set(reserveA)
	}
	p.address = deriveAddress(p.Token0, p.Token1, fee)
	return p, nil
}

// deriveAddress computes the CREATE2 pool address from the factory, the
// abi-encoded (token0, token1, fee) salt, and the pool init code hash.
func deriveAddress(token0, token1 *entity.Token, fee uint32) common.Address {
	encoded := make([]byte, 0, 96)
	encoded = append(encoded, common.LeftPadBytes(token0.Address().Bytes(), 32)...)
	encoded = append(encoded, common.LeftPadBytes(token1.Address().Bytes(), 32)...)
	encoded = append(encoded, common.LeftPadBytes(new(big.Int).SetUint64(uint64(fee)).Bytes(), 32)...)
	salt := crypto.Keccak256Hash(encoded)
	return crypto.CreateAddress2(FactoryAddress, salt, PoolInitCodeHash.Bytes())
}

// Address returns the canonical pool address. Two pools are the same venue
// iff their addresses match.
func (p *Pool) Address() common.Address {
	return p.address
}

// InvolvesToken reports whether the token is one of the pool's pair.
func (p *Pool) InvolvesToken(token *entity.Token) bool {
	return p.Token0.Equal(token) || p.Token1.Equal(token)
}

// Token0Price returns the spot price of token0 denominated in token1.
func (p *Pool) Token0Price() entity.Price {
	return entity.NewPrice(p.Token0, p.Token1, p.Reserve0, p.Reserve1)
}

// Token1Price returns the spot price of token1 denominated in token0.
func (p *Pool) Token1Price() entity.Price {
	return entity.NewPrice(p.Token1, p.Token0, p.Reserve1, p.Reserve0)
}

// PriceOf returns the spot price of the given pair member.
func (p *Pool) PriceOf(token *entity.Token) (entity.Price, error) {
	switch {
	case p.Token0.Equal(token):
		return p.Token0Price(), nil
	case p.Token1.Equal(token):
		return p.Token1Price(), nil
	default:
		return entity.Price{}, fmt.Errorf("token %s not in pool %s", token.Symbol(), p.address.Hex())
	}
}

// ReservesOf returns the in-side and out-side reserves for a swap entering
// with the given token.
func (p *Pool) ReservesOf(tokenIn *entity.Token) (reserveIn, reserveOut *big.Int, err error) {
	switch {
	case p.Token0.Equal(tokenIn):
		return p.Reserve0, p.Reserve1, nil
	case p.Token1.Equal(tokenIn):
		return p.Reserve1, p.Reserve0, nil
	default:
		return nil, nil, fmt.Errorf("token %s not in pool %s", tokenIn.Symbol(), p.address.Hex())
	}
}

// Opposite returns the pair member other than the given token.
func (p *Pool) Opposite(token *entity.Token) (*entity.Token, error) {
	switch {
	case p.Token0.Equal(token):
		return p.Token1, nil
	case p.Token1.Equal(token):
		return p.Token0, nil
	default:
		return nil, fmt.Errorf("token %s not in pool %s", token.Symbol(), p.address.Hex())
	}
}
