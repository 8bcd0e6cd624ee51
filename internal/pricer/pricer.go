package pricer

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"tradeScope/internal/chain"
	"tradeScope/internal/dex"
	"tradeScope/internal/entity"
	"tradeScope/internal/model"
	"tradeScope/internal/pool"
	"tradeScope/internal/quote"
	"tradeScope/internal/route"
	"tradeScope/internal/trade"
)

const ratioScale = 18

// Pricer turns trade quote records into priced trades. Token metadata
// missing from a record is resolved over RPC when a chain client is
// configured.
type Pricer struct {
	quoter      quote.Quoter
	chainClient *chain.Client
	tokenCache  *dex.TokenMetaCache
	slippageBps uint32
	logger      *zap.Logger
}

func New(chainClient *chain.Client, slippageBps uint32, logger *zap.Logger) *Pricer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pricer{
		quoter:      quote.NewReserveQuoter(),
		chainClient: chainClient,
		tokenCache:  dex.NewTokenMetaCache(),
		slippageBps: slippageBps,
		logger:      logger,
	}
}

// Price validates and prices one trade quote record.
func (p *Pricer) Price(ctx context.Context, record model.TradeQuoteRecord) (model.PricedTrade, error) {
	tradeType, err := parseTradeType(record.TradeType)
	if err != nil {
		return model.PricedTrade{}, err
	}

	tokens, err := p.resolveTokens(ctx, record)
	if err != nil {
		return model.PricedTrade{}, err
	}

	swaps := make([]trade.Swap, 0, len(record.Routes))
	for i, rr := range record.Routes {
		swap, err := p.buildSwap(tokens, rr, tradeType)
		if err != nil {
			return model.PricedTrade{}, fmt.Errorf("route %d: %w", i, err)
		}
		swaps = append(swaps, swap)
	}

	t, err := trade.New(swaps, tradeType)
	if err != nil {
		return model.PricedTrade{}, err
	}

	slippageBps := record.SlippageBps
	if slippageBps == 0 {
		slippageBps = p.slippageBps
	}
	tolerance := entity.NewPercentFromBps(slippageBps)

	execPrice, err := t.ExecutionPrice()
	if err != nil {
		return model.PricedTrade{}, fmt.Errorf("execution price: %w", err)
	}
	impact, err := t.PriceImpact()
	if err != nil {
		return model.PricedTrade{}, fmt.Errorf("price impact: %w", err)
	}
	minOut, err := t.MinimumAmountOut(tolerance)
	if err != nil {
		return model.PricedTrade{}, fmt.Errorf("minimum amount out: %w", err)
	}
	maxIn, err := t.MaximumAmountIn(tolerance)
	if err != nil {
		return model.PricedTrade{}, fmt.Errorf("maximum amount in: %w", err)
	}
	worst, err := t.WorstExecutionPrice(tolerance)
	if err != nil {
		return model.PricedTrade{}, fmt.Errorf("worst execution price: %w", err)
	}

	inputTaxBps := uint32(0)
	if input := t.InputCurrency(); !input.IsNative() {
		inputTaxBps = input.Wrapped().SellFeeBps()
	}
	outputTaxBps := uint32(0)
	if output := t.OutputCurrency(); !output.IsNative() {
		outputTaxBps = output.Wrapped().BuyFeeBps()
	}

	return model.PricedTrade{
		ID:               record.ID,
		ChainID:          record.ChainID,
		TradeType:        tradeType.String(),
		InputToken:       t.InputCurrency().Wrapped().Address().Hex(),
		OutputToken:      t.OutputCurrency().Wrapped().Address().Hex(),
		RouteCount:       len(swaps),
		AmountIn:         t.InputAmount().Quotient().String(),
		AmountOut:        t.OutputAmount().Quotient().String(),
		ExecutionPrice:   execPrice.FloatString(ratioScale),
		PriceImpact:      impact.FloatString(ratioScale),
		InputTaxBps:      inputTaxBps,
		OutputTaxBps:     outputTaxBps,
		SlippageBps:      slippageBps,
		MinimumAmountOut: minOut.Quotient().String(),
		MaximumAmountIn:  maxIn.Quotient().String(),
		WorstPrice:       worst.FloatString(ratioScale),
		PricedAt:         time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (p *Pricer) resolveTokens(ctx context.Context, record model.TradeQuoteRecord) (map[string]*entity.Token, error) {
	tokens := make(map[string]*entity.Token, len(record.Tokens))
	for _, tr := range record.Tokens {
		if !common.IsHexAddress(tr.Address) {
			return nil, fmt.Errorf("invalid token address: %s", tr.Address)
		}
		addr := common.HexToAddress(tr.Address)

		decimals := uint8(0)
		symbol := tr.Symbol
		if tr.Decimals != nil {
			decimals = *tr.Decimals
		} else {
			meta, err := p.fetchMeta(ctx, addr)
			if err != nil {
				return nil, fmt.Errorf("resolve token %s: %w", tr.Address, err)
			}
			decimals = meta.Decimals
			if symbol == "" {
				symbol = meta.Symbol
			}
		}

		tokens[tokenKey(tr.Address)] = entity.NewTaxedToken(
			record.ChainID, addr, decimals, symbol, "", tr.SellFeeBps, tr.BuyFeeBps,
		)
	}
	return tokens, nil
}

func (p *Pricer) fetchMeta(ctx context.Context, addr common.Address) (dex.TokenMeta, error) {
	if meta, ok := p.tokenCache.Get(addr); ok {
		return meta, nil
	}
	if p.chainClient == nil {
		return dex.TokenMeta{}, fmt.Errorf("decimals missing and no rpc configured")
	}
	meta, err := dex.FetchTokenMeta(ctx, p.chainClient, addr, p.logger)
	if err != nil {
		return dex.TokenMeta{}, err
	}
	p.tokenCache.Set(addr, meta)
	return meta, nil
}

func (p *Pricer) buildSwap(tokens map[string]*entity.Token, rr model.RouteRecord, tradeType trade.Type) (trade.Swap, error) {
	input, ok := tokens[tokenKey(rr.Input)]
	if !ok {
		return trade.Swap{}, fmt.Errorf("input token %s not declared", rr.Input)
	}
	output, ok := tokens[tokenKey(rr.Output)]
	if !ok {
		return trade.Swap{}, fmt.Errorf("output token %s not declared", rr.Output)
	}

	pools := make([]*pool.Pool, 0, len(rr.Pools))
	for i, pr := range rr.Pools {
		built, err := p.buildPool(tokens, pr)
		if err != nil {
			return trade.Swap{}, fmt.Errorf("pool %d: %w", i, err)
		}
		pools = append(pools, built)
	}

	r, err := route.NewV2Route(pools, input, output)
	if err != nil {
		return trade.Swap{}, err
	}

	swap := trade.Swap{Route: r}
	switch tradeType {
	case trade.ExactInput:
		amountIn, err := parseBigInt(rr.AmountIn)
		if err != nil {
			return trade.Swap{}, fmt.Errorf("amount_in: %w", err)
		}
		swap.InputAmount = entity.NewAmount(input, amountIn)
		if rr.AmountOut == "" {
			swap.OutputAmount, err = p.quoter.QuoteExactInput(r, swap.InputAmount)
			if err != nil {
				return trade.Swap{}, err
			}
		} else {
			amountOut, err := parseBigInt(rr.AmountOut)
			if err != nil {
				return trade.Swap{}, fmt.Errorf("amount_out: %w", err)
			}
			swap.OutputAmount = entity.NewAmount(output, amountOut)
		}
	case trade.ExactOutput:
		amountOut, err := parseBigInt(rr.AmountOut)
		if err != nil {
			return trade.Swap{}, fmt.Errorf("amount_out: %w", err)
		}
		swap.OutputAmount = entity.NewAmount(output, amountOut)
		if rr.AmountIn == "" {
			swap.InputAmount, err = p.quoter.QuoteExactOutput(r, swap.OutputAmount)
			if err != nil {
				return trade.Swap{}, err
			}
		} else {
			amountIn, err := parseBigInt(rr.AmountIn)
			if err != nil {
				return trade.Swap{}, fmt.Errorf("amount_in: %w", err)
			}
			swap.InputAmount = entity.NewAmount(input, amountIn)
		}
	}
	return swap, nil
}

func (p *Pricer) buildPool(tokens map[string]*entity.Token, pr model.PoolRecord) (*pool.Pool, error) {
	tokenA, ok := tokens[tokenKey(pr.TokenA)]
	if !ok {
		return nil, fmt.Errorf("token %s not declared", pr.TokenA)
	}
	tokenB, ok := tokens[tokenKey(pr.TokenB)]
	if !ok {
		return nil, fmt.Errorf("token %s not declared", pr.TokenB)
	}
	reserveA, err := parseBigInt(pr.ReserveA)
	if err != nil {
		return nil, fmt.Errorf("reserve_a: %w", err)
	}
	reserveB, err := parseBigInt(pr.ReserveB)
	if err != nil {
		return nil, fmt.Errorf("reserve_b: %w", err)
	}
	return pool.New(tokenA, tokenB, pr.Fee, reserveA, reserveB)
}

func parseTradeType(value string) (trade.Type, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "exact_input", "exact_in":
		return trade.ExactInput, nil
	case "exact_output", "exact_out":
		return trade.ExactOutput, nil
	default:
		return 0, fmt.Errorf("unknown trade type: %s", value)
	}
}

func parseBigInt(value string) (*big.Int, error) {
	if value == "" {
		return nil, fmt.Errorf("missing amount")
	}
	parsed, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("invalid int: %s", value)
	}
	return parsed, nil
}

func tokenKey(address string) string {
	return strings.ToLower(address)
}
