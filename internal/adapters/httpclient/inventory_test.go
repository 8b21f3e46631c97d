package httpclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/retailstack/backend/internal/adapters/httpclient"
	"github.com/retailstack/backend/internal/core/serviceerrors"
)

func TestInventoryClient_ReduceStock(t *testing.T) {
	t.Run("posts the amount to the reduce endpoint", func(t *testing.T) {
		var gotPath string
		var gotAmount int

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			var body struct {
				Amount int `json:"amount"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			gotAmount = body.Amount
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := httpclient.NewInventoryClient(server.URL, time.Second)

		if err := client.ReduceStock(context.Background(), 42, 3); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotPath != "/api/v1/stock/42/reduce" {
			t.Fatalf("unexpected path %q", gotPath)
		}
		if gotAmount != 3 {
			t.Fatalf("expected amount 3, got %d", gotAmount)
		}
	})

	t.Run("maps 422 to insufficient stock", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "insufficient stock for product 42"})
		}))
		defer server.Close()

		client := httpclient.NewInventoryClient(server.URL, time.Second)

		err := client.ReduceStock(context.Background(), 42, 100)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInsufficientStock) {
			t.Fatalf("expected KindInsufficientStock, got %v", err)
		}
		if err.Error() != "insufficient stock for product 42" {
			t.Fatalf("expected remote message to survive, got %q", err.Error())
		}
	})

	t.Run("maps 404 to not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := httpclient.NewInventoryClient(server.URL, time.Second)

		err := client.ReduceStock(context.Background(), 42, 1)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("maps transport failure to unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := httpclient.NewInventoryClient(server.URL, time.Second)

		err := client.ReduceStock(context.Background(), 42, 1)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindUnavailable) {
			t.Fatalf("expected KindUnavailable, got %v", err)
		}
	})

	t.Run("maps 500 to unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := httpclient.NewInventoryClient(server.URL, time.Second)

		err := client.ReduceStock(context.Background(), 42, 1)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindUnavailable) {
			t.Fatalf("expected KindUnavailable, got %v", err)
		}
	})
}

func TestInventoryClient_RestoreStock(t *testing.T) {
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.NewInventoryClient(server.URL, time.Second)

	if err := client.RestoreStock(context.Background(), 42, 2); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotPath != "/api/v1/stock/42/restore" {
		t.Fatalf("unexpected path %q", gotPath)
	}
}
