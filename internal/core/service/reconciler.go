package service

import (
	"context"
	"time"

	"github.com/retailstack/backend/internal/core/logger"
	"github.com/retailstack/backend/internal/core/port"
)

// Reconciler periodically re-pushes the absolute quantities of recently
// mutated ledger records to the product cache. Point-in-time pushes are
// best-effort and can be lost; the sweep heals that drift without ever
// reading the remote copy back.
type Reconciler struct {
	ledger    port.StockLedgerPort
	cacheSync port.CacheSyncPort
	interval  time.Duration
	overlap   time.Duration
	since     time.Time
}

func NewReconciler(ledger port.StockLedgerPort, cacheSync port.CacheSyncPort, interval, overlap time.Duration) *Reconciler {
	return &Reconciler{
		ledger:    ledger,
		cacheSync: cacheSync,
		interval:  interval,
		overlap:   overlap,
		since:     time.Now().Add(-overlap),
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reconciler) sweep(ctx context.Context) {
	start := time.Now()

	records, err := r.ledger.UpdatedSince(ctx, r.since)
	if err != nil {
		logger.Error(ctx, "reconciler: fetch failed", err, map[string]any{
			"since": r.since.String(),
		})
		return
	}

	pushed, failed := 0, 0
	for _, record := range records {
		if outcome := r.cacheSync.PushSet(ctx, record.ProductID, record.Quantity); !outcome.Success {
			failed++
			logger.Warn(ctx, "reconciler: push failed", map[string]any{
				"product_id": record.ProductID,
				"detail":     outcome.Detail,
			})
			continue
		}
		pushed++
	}

	if pushed > 0 || failed > 0 {
		logger.Debug(ctx, "reconciler: sweep finished", map[string]any{
			"pushed": pushed,
			"failed": failed,
		})
	}

	// Overlap consecutive windows so a record mutated while a sweep runs
	// is picked up again next time.
	r.since = start.Add(-r.overlap)
}
