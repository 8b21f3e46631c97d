package domain

import "time"

// StockRecord is the authoritative quantity of a product. The ledger is
// the only writer; the product-cache service holds a derived copy that
// is pushed to, never read back.
type StockRecord struct {
	ProductID ProductID
	Quantity  int
	UpdatedAt time.Time
}

// NewStockRecord returns the implicit initial state of a product that
// has never been stocked. Absence is not an error on reads.
func NewStockRecord(productID ProductID) *StockRecord {
	return &StockRecord{ProductID: productID, Quantity: 0}
}

// SyncOutcome is the result of a best-effort push to the product cache.
// It is deliberately not an error: sync failures are advisory and must
// never cross back into the ledger caller's success/failure decision.
type SyncOutcome struct {
	Success bool
	Detail  string
}

func SyncSucceeded() SyncOutcome {
	return SyncOutcome{Success: true}
}

func SyncFailed(err error) SyncOutcome {
	outcome := SyncOutcome{Success: false}
	if err != nil {
		outcome.Detail = err.Error()
	}
	return outcome
}
