package port

import (
	"context"
	"time"

	"github.com/retailstack/backend/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// StockLedgerPort is the authoritative quantity store. Mutations are
// atomic per product: the insufficient-stock check and the write of
// Decrement are a single critical section on the storage side.
type StockLedgerPort interface {
	// Get returns a zero-quantity record for unknown products; absence
	// is a valid initial state, never an error.
	Get(ctx context.Context, productID domain.ProductID) (*domain.StockRecord, error)
	// Set unconditionally overwrites the quantity, creating the record
	// if needed.
	Set(ctx context.Context, productID domain.ProductID, quantity int) (*domain.StockRecord, error)
	// Decrement fails with KindNotFound when no record exists and with
	// KindInsufficientStock when the stored quantity is below amount.
	// It never creates a record.
	Decrement(ctx context.Context, productID domain.ProductID, amount int) (*domain.StockRecord, error)
	// Increment adds amount to the stored quantity, creating the record
	// if needed. Used to restore stock released by a failed placement.
	Increment(ctx context.Context, productID domain.ProductID, amount int) (*domain.StockRecord, error)
	// UpdatedSince lists records mutated at or after the given instant,
	// for the reconciliation sweep.
	UpdatedSince(ctx context.Context, since time.Time) ([]*domain.StockRecord, error)
}
