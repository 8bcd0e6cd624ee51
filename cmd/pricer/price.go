package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradeScope/internal/chain"
	"tradeScope/internal/config"
	"tradeScope/internal/model"
	"tradeScope/internal/pricer"
	"tradeScope/internal/storage"
	"tradeScope/internal/storage/postgres"
)

const putBatchSize = 256

func runPrice(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadPrice(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Input == "" {
		return fmt.Errorf("input path is required")
	}
	if cfg.Out == "" {
		return fmt.Errorf("output path is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var chainClient *chain.Client
	if cfg.RPCURL != "" {
		chainClient, err = chain.NewClient(ctx, cfg.RPCURL)
		if err != nil {
			return fmt.Errorf("connect rpc: %w", err)
		}
		defer chainClient.Close()
	}

	var pgStore *postgres.Store
	if cfg.PGDSN != "" {
		pgStore, err = postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pgStore.Close()
	}

	inputFile, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inputFile.Close()

	errWriter, err := newJSONLWriter(cfg.Errors, false)
	if err != nil {
		return err
	}
	defer errWriter.Close()

	sink := storage.NewJsonlStorage(cfg.Out)
	tradePricer := pricer.New(chainClient, cfg.SlippageBps, logger)

	logger.Info("price start",
		zap.String("in", cfg.Input),
		zap.String("out", cfg.Out),
		zap.String("errors", cfg.Errors),
		zap.Bool("rpc", cfg.RPCURL != ""),
		zap.Bool("postgres", cfg.PGDSN != ""),
		zap.Uint32("slippage_bps", cfg.SlippageBps),
	)

	scanner := bufio.NewScanner(inputFile)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	flush := func(batch []model.PricedTrade) error {
		if len(batch) == 0 {
			return nil
		}
		if err := sink.PutTradeBatch(batch); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if pgStore != nil {
			if err := pgStore.UpsertPricedTrades(ctx, batch); err != nil {
				return fmt.Errorf("upsert postgres: %w", err)
			}
		}
		return nil
	}

	batch := make([]model.PricedTrade, 0, putBatchSize)
	var total, priced, failed int
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		total++

		var record model.TradeQuoteRecord
		if err := json.Unmarshal(line, &record); err != nil {
			failed++
			writePriceError(errWriter, model.PriceError{Line: total, Error: err.Error()})
			continue
		}

		result, err := tradePricer.Price(ctx, record)
		if err != nil {
			failed++
			logger.Warn("price failed", zap.String("id", record.ID), zap.Error(err))
			writePriceError(errWriter, model.PriceError{
				ID:      record.ID,
				Line:    total,
				ChainID: record.ChainID,
				Error:   err.Error(),
			})
			continue
		}

		batch = append(batch, result)
		priced++
		if len(batch) >= putBatchSize {
			if err := flush(batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan input: %w", err)
	}
	if err := flush(batch); err != nil {
		return err
	}

	logger.Info("price complete",
		zap.Int("total", total),
		zap.Int("priced", priced),
		zap.Int("failed", failed),
	)

	return nil
}

type jsonlWriter struct {
	file   *os.File
	writer *bufio.Writer
}

func newJSONLWriter(path string, appendMode bool) (*jsonlWriter, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create dir: %w", err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	return &jsonlWriter{
		file:   file,
		writer: bufio.NewWriter(file),
	}, nil
}

func (w *jsonlWriter) Write(value interface{}) error {
	line, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := w.writer.Write(line); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}

func (w *jsonlWriter) Close() error {
	if w == nil {
		return nil
	}
	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

func writePriceError(writer *jsonlWriter, errRecord model.PriceError) {
	if writer == nil {
		return
	}
	_ = writer.Write(errRecord)
}
