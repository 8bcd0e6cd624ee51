package storage

import "tradeScope/internal/model"

// Storage defines a sink for priced trades.
type Storage interface {
	PutTradeBatch(trades []model.PricedTrade) error
}
