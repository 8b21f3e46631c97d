package service

import (
	"context"

	"github.com/retailstack/backend/internal/core/domain"
	"github.com/retailstack/backend/internal/core/logger"
	"github.com/retailstack/backend/internal/core/port"
	"github.com/retailstack/backend/internal/core/serviceerrors"
)

// StockService coordinates the ledger write with the best-effort push to
// the product-cache service. The durable mutation always happens before
// the sync attempt, and a failed sync never changes what the caller sees.
type StockService struct {
	ledger    port.StockLedgerPort
	cacheSync port.CacheSyncPort
}

func NewStockService(ledger port.StockLedgerPort, cacheSync port.CacheSyncPort) *StockService {
	return &StockService{ledger: ledger, cacheSync: cacheSync}
}

func (s *StockService) GetStock(ctx context.Context, productID domain.ProductID) (*domain.StockRecord, error) {
	return s.ledger.Get(ctx, productID)
}

func (s *StockService) SetStock(ctx context.Context, productID domain.ProductID, quantity int) (*domain.StockRecord, error) {
	if quantity < 0 {
		return nil, serviceerrors.NewInvalidRequestError("quantity must not be negative")
	}

	record, err := s.ledger.Set(ctx, productID, quantity)
	if err != nil {
		logger.Error(ctx, "stock: set failed", err, map[string]any{
			"product_id": productID,
			"quantity":   quantity,
		})
		return nil, err
	}

	s.logSyncOutcome(ctx, "set", record.ProductID, s.cacheSync.PushSet(ctx, record.ProductID, record.Quantity))
	return record, nil
}

func (s *StockService) ReduceStock(ctx context.Context, productID domain.ProductID, amount int) (*domain.StockRecord, error) {
	if amount <= 0 {
		return nil, serviceerrors.NewInvalidRequestError("amount must be positive")
	}

	record, err := s.ledger.Decrement(ctx, productID, amount)
	if err != nil {
		// NotFound and InsufficientStock are caller-visible: the order
		// must not be fulfilled against stock that was never deducted.
		return nil, err
	}

	s.logSyncOutcome(ctx, "reduce", record.ProductID, s.cacheSync.PushReduce(ctx, record.ProductID, amount))
	return record, nil
}

func (s *StockService) RestoreStock(ctx context.Context, productID domain.ProductID, amount int) (*domain.StockRecord, error) {
	if amount <= 0 {
		return nil, serviceerrors.NewInvalidRequestError("amount must be positive")
	}

	record, err := s.ledger.Increment(ctx, productID, amount)
	if err != nil {
		logger.Error(ctx, "stock: restore failed", err, map[string]any{
			"product_id": productID,
			"amount":     amount,
		})
		return nil, err
	}

	// Push the absolute value: the remote copy may have missed the
	// reduce this restore is undoing.
	s.logSyncOutcome(ctx, "restore", record.ProductID, s.cacheSync.PushSet(ctx, record.ProductID, record.Quantity))
	return record, nil
}

func (s *StockService) logSyncOutcome(ctx context.Context, operation string, productID domain.ProductID, outcome domain.SyncOutcome) {
	if outcome.Success {
		return
	}
	logger.Warn(ctx, "stock: product-cache sync failed", map[string]any{
		"operation":  operation,
		"product_id": productID,
		"detail":     outcome.Detail,
	})
}
