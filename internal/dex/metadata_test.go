package dex

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

func TestBytes32ToString(t *testing.T) {
	var raw [32]byte
	copy(raw[:], "MKR")

	got, ok := bytes32ToString(raw)
	if !ok || got != "MKR" {
		t.Fatalf("bytes32 symbol = %q (%v), want MKR", got, ok)
	}

	got, ok = bytes32ToString([]byte("DAI\x00\x00"))
	if !ok || got != "DAI" {
		t.Fatalf("byte slice symbol = %q (%v), want DAI", got, ok)
	}

	if _, ok := bytes32ToString(42); ok {
		t.Fatalf("unsupported type should not convert")
	}
}

func TestAsUint8(t *testing.T) {
	for _, value := range []interface{}{uint8(18), uint16(18), uint32(18), uint64(18)} {
		got, err := asUint8(value)
		if err != nil {
			t.Fatalf("as uint8 %T failed: %v", value, err)
		}
		if got != 18 {
			t.Fatalf("as uint8 %T = %d, want 18", value, got)
		}
	}

	if _, err := asUint8("18"); err == nil {
		t.Fatalf("string should not convert to uint8")
	}
}

func TestWithRetryEventualSuccess(t *testing.T) {
	attempts := 0
	err := withRetry(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
}

func TestWithRetryExhausted(t *testing.T) {
	attempts := 0
	permanent := errors.New("permanent")
	err := withRetry(context.Background(), 2, time.Millisecond, func(ctx context.Context) error {
		attempts++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("expected last error, got %v", err)
	}
	// initial attempt plus two retries
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
}

func TestWithRetryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := withRetry(ctx, 3, time.Millisecond, func(ctx context.Context) error {
		attempts++
		return errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("attempts = %d, want 1", attempts)
	}
}

func TestTokenMetaCache(t *testing.T) {
	cache := NewTokenMetaCache()
	addr := common.HexToAddress("0x1111111111111111111111111111111111111111")

	if _, ok := cache.Get(addr); ok {
		t.Fatalf("empty cache should miss")
	}

	meta := TokenMeta{Address: addr, Decimals: 18, Symbol: "WBNB"}
	cache.Set(addr, meta)

	got, ok := cache.Get(addr)
	if !ok || got != meta {
		t.Fatalf("cache returned %+v (%v), want %+v", got, ok, meta)
	}
}
