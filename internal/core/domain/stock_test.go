package domain

import (
	"errors"
	"testing"
)

func TestNewStockRecord(t *testing.T) {
	record := NewStockRecord(ProductID(9))

	if record.ProductID != 9 {
		t.Fatalf("expected ProductID 9, got %d", record.ProductID)
	}
	if record.Quantity != 0 {
		t.Fatalf("expected zero quantity, got %d", record.Quantity)
	}
}

func TestSyncOutcome(t *testing.T) {
	t.Run("succeeded", func(t *testing.T) {
		outcome := SyncSucceeded()
		if !outcome.Success {
			t.Fatal("expected success")
		}
		if outcome.Detail != "" {
			t.Fatalf("expected empty detail, got %q", outcome.Detail)
		}
	})

	t.Run("failed with error", func(t *testing.T) {
		outcome := SyncFailed(errors.New("connection refused"))
		if outcome.Success {
			t.Fatal("expected failure")
		}
		if outcome.Detail != "connection refused" {
			t.Fatalf("expected detail 'connection refused', got %q", outcome.Detail)
		}
	})

	t.Run("failed with nil error", func(t *testing.T) {
		outcome := SyncFailed(nil)
		if outcome.Success {
			t.Fatal("expected failure")
		}
	})
}
