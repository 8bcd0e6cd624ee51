package route

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"tradeScope/internal/entity"
	"tradeScope/internal/pool"
)

var (
	tokenA = entity.NewToken(56, common.HexToAddress("0x0000000000000000000000000000000000000001"), 18, "AAA", "")
	tokenB = entity.NewToken(56, common.HexToAddress("0x0000000000000000000000000000000000000002"), 18, "BBB", "")
	tokenC = entity.NewToken(56, common.HexToAddress("0x0000000000000000000000000000000000000003"), 18, "CCC", "")
)

func newPool(t *testing.T, a, b *entity.Token, fee uint32, reserveA, reserveB int64) *pool.Pool {
	t.Helper()
	p, err := pool.New(a, b, fee, big.NewInt(reserveA), big.NewInt(reserveB))
	if err != nil {
		t.Fatalf("new pool failed: %v", err)
	}
	return p
}

func TestNewV2RoutePath(t *testing.T) {
	poolAB := newPool(t, tokenA, tokenB, 3000, 100, 200)
	poolBC := newPool(t, tokenB, tokenC, 3000, 200, 600)

	r, err := NewV2Route([]*pool.Pool{poolAB, poolBC}, tokenA, tokenC)
	if err != nil {
		t.Fatalf("new route failed: %v", err)
	}

	path := r.Path()
	if len(path) != 3 {
		t.Fatalf("path length = %d, want 3", len(path))
	}
	if !path[0].Equal(tokenA) || !path[1].Equal(tokenB) || !path[2].Equal(tokenC) {
		t.Fatalf("path not derived through pool connections")
	}
	if r.Protocol() != ProtocolV2 {
		t.Fatalf("protocol = %s, want %s", r.Protocol(), ProtocolV2)
	}
}

func TestNewV2RouteRejectsBrokenChain(t *testing.T) {
	poolAB := newPool(t, tokenA, tokenB, 3000, 100, 200)

	if _, err := NewV2Route(nil, tokenA, tokenB); err == nil {
		t.Fatalf("expected error for empty pool chain")
	}
	if _, err := NewV2Route([]*pool.Pool{poolAB}, tokenC, tokenB); err == nil {
		t.Fatalf("expected error when first pool misses the input token")
	}
	if _, err := NewV2Route([]*pool.Pool{poolAB}, tokenA, tokenC); err == nil {
		t.Fatalf("expected error when chain does not end at output")
	}
}

func TestMidPriceChainsHops(t *testing.T) {
	// 2 BBB per AAA, then 3 CCC per BBB: 6 CCC per AAA
	poolAB := newPool(t, tokenA, tokenB, 3000, 100, 200)
	poolBC := newPool(t, tokenB, tokenC, 3000, 200, 600)

	r, err := NewV2Route([]*pool.Pool{poolAB, poolBC}, tokenA, tokenC)
	if err != nil {
		t.Fatalf("new route failed: %v", err)
	}

	mid := r.MidPrice()
	if !mid.Fraction.Equal(entity.NewFractionFromInt64(6, 1)) {
		t.Fatalf("mid price = %s/%s, want 6", mid.Num, mid.Den)
	}
	if !mid.BaseCurrency.Equal(tokenA) || !mid.QuoteCurrency.Equal(tokenC) {
		t.Fatalf("mid price not based on route currencies")
	}

	quoted, err := mid.Quote(entity.NewAmount(tokenA, big.NewInt(10)))
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if quoted.Quotient().Int64() != 60 {
		t.Fatalf("quoted = %s, want 60", quoted.Quotient())
	}
}

func TestMidPriceReversedPool(t *testing.T) {
	// route enters the pool on the token1 side
	poolAB := newPool(t, tokenA, tokenB, 3000, 100, 200)

	r, err := NewV2Route([]*pool.Pool{poolAB}, tokenB, tokenA)
	if err != nil {
		t.Fatalf("new route failed: %v", err)
	}
	if !r.MidPrice().Fraction.Equal(entity.NewFractionFromInt64(1, 2)) {
		t.Fatalf("reversed mid price = %s/%s, want 1/2", r.MidPrice().Num, r.MidPrice().Den)
	}
}

func TestMidPriceNativeInput(t *testing.T) {
	wbnb := entity.NewToken(56, common.HexToAddress("0x0000000000000000000000000000000000000004"), 18, "WBNB", "")
	bnb := entity.NewNative(56, 18, "BNB", "BNB", wbnb)
	poolWB := newPool(t, wbnb, tokenB, 3000, 100, 500)

	r, err := NewV2Route([]*pool.Pool{poolWB}, bnb, tokenB)
	if err != nil {
		t.Fatalf("new route failed: %v", err)
	}

	mid := r.MidPrice()
	if !mid.BaseCurrency.Equal(bnb) {
		t.Fatalf("mid price should be based on the native input currency")
	}
	quoted, err := mid.Quote(entity.NewAmount(bnb, big.NewInt(10)))
	if err != nil {
		t.Fatalf("quote native amount failed: %v", err)
	}
	if quoted.Quotient().Int64() != 50 {
		t.Fatalf("quoted = %s, want 50", quoted.Quotient())
	}
}

func TestProtocolKnown(t *testing.T) {
	if !ProtocolV2.Known() {
		t.Fatalf("v2 should be a known protocol")
	}
	if Protocol("v99").Known() {
		t.Fatalf("v99 should not be a known protocol")
	}
}
