package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/retailstack/backend/internal/adapters/mongo/repository"
	"github.com/retailstack/backend/internal/core/domain"
	"github.com/retailstack/backend/internal/core/serviceerrors"
)

var stockProductSeq int64 = 1000

// nextProductID hands out distinct product IDs so tests sharing testDB
// never collide on the unique product_id index.
func nextProductID() domain.ProductID {
	stockProductSeq++
	return domain.ProductID(stockProductSeq)
}

func TestStockRepository_Get(t *testing.T) {
	repo := repository.NewStockRepository(testDB)
	ctx := context.Background()

	t.Run("unknown product reads as zero quantity", func(t *testing.T) {
		productID := nextProductID()

		record, err := repo.Get(ctx, productID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if record.ProductID != productID {
			t.Fatalf("expected product %d, got %d", productID, record.ProductID)
		}
		if record.Quantity != 0 {
			t.Fatalf("expected quantity 0, got %d", record.Quantity)
		}
	})

	t.Run("returns stored quantity", func(t *testing.T) {
		productID := nextProductID()
		if _, err := repo.Set(ctx, productID, 42); err != nil {
			t.Fatalf("setup: set failed: %v", err)
		}

		record, err := repo.Get(ctx, productID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if record.Quantity != 42 {
			t.Fatalf("expected quantity 42, got %d", record.Quantity)
		}
	})
}

func TestStockRepository_Set(t *testing.T) {
	repo := repository.NewStockRepository(testDB)
	ctx := context.Background()

	t.Run("creates record on first set", func(t *testing.T) {
		productID := nextProductID()

		record, err := repo.Set(ctx, productID, 10)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if record.Quantity != 10 {
			t.Fatalf("expected quantity 10, got %d", record.Quantity)
		}
	})

	t.Run("overwrites existing quantity", func(t *testing.T) {
		productID := nextProductID()
		_, _ = repo.Set(ctx, productID, 10)

		record, err := repo.Set(ctx, productID, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if record.Quantity != 3 {
			t.Fatalf("expected quantity 3, got %d", record.Quantity)
		}
	})

	t.Run("zero is a valid quantity", func(t *testing.T) {
		productID := nextProductID()

		record, err := repo.Set(ctx, productID, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if record.Quantity != 0 {
			t.Fatalf("expected quantity 0, got %d", record.Quantity)
		}
	})
}

func TestStockRepository_Decrement(t *testing.T) {
	repo := repository.NewStockRepository(testDB)
	ctx := context.Background()

	t.Run("decrements successfully", func(t *testing.T) {
		productID := nextProductID()
		_, _ = repo.Set(ctx, productID, 10)

		record, err := repo.Decrement(ctx, productID, 4)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if record.Quantity != 6 {
			t.Fatalf("expected quantity 6, got %d", record.Quantity)
		}
	})

	t.Run("decrements exact quantity to zero", func(t *testing.T) {
		productID := nextProductID()
		_, _ = repo.Set(ctx, productID, 5)

		record, err := repo.Decrement(ctx, productID, 5)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if record.Quantity != 0 {
			t.Fatalf("expected quantity 0, got %d", record.Quantity)
		}
	})

	t.Run("fails when insufficient stock and leaves quantity unchanged", func(t *testing.T) {
		productID := nextProductID()
		_, _ = repo.Set(ctx, productID, 2)

		_, err := repo.Decrement(ctx, productID, 5)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInsufficientStock) {
			t.Fatalf("expected KindInsufficientStock, got %v", err)
		}

		record, _ := repo.Get(ctx, productID)
		if record.Quantity != 2 {
			t.Fatalf("expected quantity 2 (unchanged), got %d", record.Quantity)
		}
	})

	t.Run("fails with not found for unknown product", func(t *testing.T) {
		_, err := repo.Decrement(ctx, nextProductID(), 1)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("never creates a record", func(t *testing.T) {
		productID := nextProductID()

		_, _ = repo.Decrement(ctx, productID, 1)

		record, err := repo.Get(ctx, productID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if record.Quantity != 0 {
			t.Fatalf("expected quantity 0, got %d", record.Quantity)
		}
	})

	t.Run("concurrent decrements never overdraw", func(t *testing.T) {
		productID := nextProductID()
		_, _ = repo.Set(ctx, productID, 10)

		var wg sync.WaitGroup
		succeeded := make(chan struct{}, 20)

		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := repo.Decrement(ctx, productID, 1); err == nil {
					succeeded <- struct{}{}
				}
			}()
		}
		wg.Wait()
		close(succeeded)

		wins := 0
		for range succeeded {
			wins++
		}
		if wins != 10 {
			t.Fatalf("expected exactly 10 successful decrements, got %d", wins)
		}

		record, _ := repo.Get(ctx, productID)
		if record.Quantity != 0 {
			t.Fatalf("expected quantity 0, got %d", record.Quantity)
		}
	})
}

func TestStockRepository_Increment(t *testing.T) {
	repo := repository.NewStockRepository(testDB)
	ctx := context.Background()

	t.Run("increments existing record", func(t *testing.T) {
		productID := nextProductID()
		_, _ = repo.Set(ctx, productID, 6)

		record, err := repo.Increment(ctx, productID, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if record.Quantity != 9 {
			t.Fatalf("expected quantity 9, got %d", record.Quantity)
		}
	})

	t.Run("creates record when missing", func(t *testing.T) {
		productID := nextProductID()

		record, err := repo.Increment(ctx, productID, 4)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if record.Quantity != 4 {
			t.Fatalf("expected quantity 4, got %d", record.Quantity)
		}
	})
}

func TestStockRepository_UpdatedSince(t *testing.T) {
	// Fresh database so older records from other tests stay out of the
	// window.
	freshDB := testClient.Database("test_stock_updatedsince")
	repo := repository.NewStockRepository(freshDB)
	ctx := context.Background()

	before := time.Now().Add(-time.Minute)

	_, _ = repo.Set(ctx, 1, 10)
	_, _ = repo.Set(ctx, 2, 20)

	t.Run("returns records mutated in the window", func(t *testing.T) {
		records, err := repo.UpdatedSince(ctx, before)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
	})

	t.Run("excludes records older than the window", func(t *testing.T) {
		records, err := repo.UpdatedSince(ctx, time.Now().Add(time.Minute))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(records) != 0 {
			t.Fatalf("expected 0 records, got %d", len(records))
		}
	})
}
