package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tradeScope/internal/model"
)

// Store provides Postgres persistence for priced trades.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertPricedTrades inserts or updates priced trades keyed by record id.
func (s *Store) UpsertPricedTrades(ctx context.Context, trades []model.PricedTrade) error {
	if len(trades) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, t := range trades {
		batch.Queue(`
			INSERT INTO priced_trades (
				id, chain_id, trade_type, input_token, output_token, route_count,
				amount_in, amount_out, execution_price, price_impact,
				input_tax_bps, output_tax_bps, slippage_bps,
				minimum_amount_out, maximum_amount_in, worst_price,
				priced_at, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,now(),now())
			ON CONFLICT (id)
			DO UPDATE SET
				chain_id = EXCLUDED.chain_id,
				trade_type = EXCLUDED.trade_type,
				input_token = EXCLUDED.input_token,
				output_token = EXCLUDED.output_token,
				route_count = EXCLUDED.route_count,
				amount_in = EXCLUDED.amount_in,
				amount_out = EXCLUDED.amount_out,
				execution_price = EXCLUDED.execution_price,
				price_impact = EXCLUDED.price_impact,
				input_tax_bps = EXCLUDED.input_tax_bps,
				output_tax_bps = EXCLUDED.output_tax_bps,
				slippage_bps = EXCLUDED.slippage_bps,
				minimum_amount_out = EXCLUDED.minimum_amount_out,
				maximum_amount_in = EXCLUDED.maximum_amount_in,
				worst_price = EXCLUDED.worst_price,
				priced_at = EXCLUDED.priced_at,
				updated_at = now()
		`,
			t.ID,
			int64(t.ChainID),
			t.TradeType,
			t.InputToken,
			t.OutputToken,
			t.RouteCount,
			t.AmountIn,
			t.AmountOut,
			t.ExecutionPrice,
			t.PriceImpact,
			int64(t.InputTaxBps),
			int64(t.OutputTaxBps),
			int64(t.SlippageBps),
			t.MinimumAmountOut,
			t.MaximumAmountIn,
			t.WorstPrice,
			t.PricedAt,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range trades {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
