package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "pricer",
		Short:        "Multi-route swap trade pricer",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	priceCmd := &cobra.Command{
		Use:   "price",
		Short: "Price trades from a route-quote JSONL feed",
		RunE:  runPrice,
	}

	priceCmd.Flags().String("rpc", "", "RPC URL for token metadata lookups (optional)")
	priceCmd.Flags().String("in", "", "input route quotes JSONL")
	priceCmd.Flags().String("out", "./data/priced_trades.jsonl", "output priced trades JSONL")
	priceCmd.Flags().String("errors", "./data/price_errors.jsonl", "pricing errors JSONL")
	priceCmd.Flags().String("pg-dsn", "", "Postgres DSN (optional)")
	priceCmd.Flags().Uint32("slippage-bps", 50, "default slippage tolerance in basis points")
	priceCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(priceCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
