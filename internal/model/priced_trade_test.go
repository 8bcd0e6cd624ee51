package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPricedTradeJSONRoundTrip(t *testing.T) {
	original := PricedTrade{
		ID:               "trade-1",
		ChainID:          56,
		TradeType:        "exact_input",
		InputToken:       "0x1111111111111111111111111111111111111111",
		OutputToken:      "0x2222222222222222222222222222222222222222",
		RouteCount:       2,
		AmountIn:         "1000000000000000000",
		AmountOut:        "1993205109095332000",
		ExecutionPrice:   "1.993205109095332000",
		PriceImpact:      "0.003401360544217687",
		InputTaxBps:      0,
		OutputTaxBps:     200,
		SlippageBps:      50,
		MinimumAmountOut: "1983288665767494527",
		MaximumAmountIn:  "1000000000000000000",
		WorstPrice:       "1.983288665767494527",
		PricedAt:         "2024-01-01T00:00:00Z",
	}

	b, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded PricedTrade
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round-trip mismatch: %+v != %+v", original, decoded)
	}
}
