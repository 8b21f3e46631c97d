package httpclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/retailstack/backend/internal/adapters/httpclient"
)

func TestProductCacheClient_PushSet(t *testing.T) {
	t.Run("puts the absolute quantity", func(t *testing.T) {
		var gotMethod, gotPath string
		var gotQuantity int

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			var body struct {
				Quantity int `json:"quantity"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			gotQuantity = body.Quantity
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := httpclient.NewProductCacheClient(server.URL, time.Second)

		outcome := client.PushSet(context.Background(), 42, 17)
		if !outcome.Success {
			t.Fatalf("expected success, got detail %q", outcome.Detail)
		}
		if gotMethod != http.MethodPut {
			t.Fatalf("expected PUT, got %s", gotMethod)
		}
		if gotPath != "/api/v1/products/42/stock" {
			t.Fatalf("unexpected path %q", gotPath)
		}
		if gotQuantity != 17 {
			t.Fatalf("expected quantity 17, got %d", gotQuantity)
		}
	})

	t.Run("remote failure is an outcome, not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := httpclient.NewProductCacheClient(server.URL, time.Second)

		outcome := client.PushSet(context.Background(), 42, 17)
		if outcome.Success {
			t.Fatal("expected failure outcome")
		}
		if outcome.Detail == "" {
			t.Fatal("expected failure detail to be populated")
		}
	})

	t.Run("unreachable service is an outcome", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := httpclient.NewProductCacheClient(server.URL, time.Second)

		outcome := client.PushSet(context.Background(), 42, 17)
		if outcome.Success {
			t.Fatal("expected failure outcome")
		}
	})
}

func TestProductCacheClient_PushReduce(t *testing.T) {
	t.Run("puts the delta to the reduce endpoint", func(t *testing.T) {
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

		client := httpclient.NewProductCacheClient(server.URL, time.Second)

		outcome := client.PushReduce(context.Background(), 42, 5)
		if !outcome.Success {
			t.Fatalf("expected success, got detail %q", outcome.Detail)
		}
		if gotPath != "/api/v1/products/42/stock/reduce" {
			t.Fatalf("unexpected path %q", gotPath)
		}
		if gotAmount != 5 {
			t.Fatalf("expected amount 5, got %d", gotAmount)
		}
	})

	t.Run("slow cache service times out into a failure outcome", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := httpclient.NewProductCacheClient(server.URL, 50*time.Millisecond)

		outcome := client.PushReduce(context.Background(), 42, 5)
		if outcome.Success {
			t.Fatal("expected failure outcome")
		}
	})
}
