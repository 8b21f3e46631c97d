package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/retailstack/backend/internal/core/domain"
	"github.com/retailstack/backend/internal/core/port/mock"
	"go.uber.org/mock/gomock"
)

func setupReconciler(t *testing.T, interval, overlap time.Duration) (*Reconciler, *mock.MockStockLedgerPort, *mock.MockCacheSyncPort) {
	ctrl := gomock.NewController(t)
	ledger := mock.NewMockStockLedgerPort(ctrl)
	cacheSync := mock.NewMockCacheSyncPort(ctrl)
	return NewReconciler(ledger, cacheSync, interval, overlap), ledger, cacheSync
}

func TestReconciler_SweepPushesAbsoluteQuantities(t *testing.T) {
	r, ledger, cacheSync := setupReconciler(t, time.Minute, 30*time.Second)

	records := []*domain.StockRecord{
		{ProductID: 1, Quantity: 10},
		{ProductID: 2, Quantity: 0},
	}

	ledger.EXPECT().
		UpdatedSince(gomock.Any(), gomock.Any()).
		Return(records, nil)

	cacheSync.EXPECT().
		PushSet(gomock.Any(), domain.ProductID(1), 10).
		Return(domain.SyncSucceeded())
	cacheSync.EXPECT().
		PushSet(gomock.Any(), domain.ProductID(2), 0).
		Return(domain.SyncSucceeded())

	r.sweep(context.Background())
}

func TestReconciler_SweepContinuesPastPushFailures(t *testing.T) {
	r, ledger, cacheSync := setupReconciler(t, time.Minute, 30*time.Second)

	records := []*domain.StockRecord{
		{ProductID: 1, Quantity: 10},
		{ProductID: 2, Quantity: 5},
	}

	ledger.EXPECT().
		UpdatedSince(gomock.Any(), gomock.Any()).
		Return(records, nil)

	cacheSync.EXPECT().
		PushSet(gomock.Any(), domain.ProductID(1), 10).
		Return(domain.SyncFailed(errors.New("connection refused")))
	cacheSync.EXPECT().
		PushSet(gomock.Any(), domain.ProductID(2), 5).
		Return(domain.SyncSucceeded())

	r.sweep(context.Background())
}

func TestReconciler_SweepHandlesFetchError(t *testing.T) {
	r, ledger, _ := setupReconciler(t, time.Minute, 30*time.Second)

	before := r.since

	ledger.EXPECT().
		UpdatedSince(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	r.sweep(context.Background())

	// A failed fetch must not advance the window; the next sweep covers
	// the same records again.
	if !r.since.Equal(before) {
		t.Fatalf("expected window to stay at %v, got %v", before, r.since)
	}
}

func TestReconciler_SweepAdvancesWindowWithOverlap(t *testing.T) {
	overlap := 30 * time.Second
	r, ledger, _ := setupReconciler(t, time.Minute, overlap)

	before := r.since

	ledger.EXPECT().
		UpdatedSince(gomock.Any(), before).
		Return(nil, nil)

	start := time.Now()
	r.sweep(context.Background())

	if !r.since.After(before) {
		t.Fatalf("expected window to advance past %v, got %v", before, r.since)
	}
	if r.since.After(start.Add(-overlap).Add(time.Second)) {
		t.Fatalf("expected window to trail the sweep start by the overlap, got %v", r.since)
	}
}

func TestReconciler_StopsOnContextCancel(t *testing.T) {
	r, ledger, _ := setupReconciler(t, 10*time.Millisecond, 30*time.Second)

	ledger.EXPECT().
		UpdatedSince(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reconciler did not stop after context cancellation")
	}
}
