package httpclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/retailstack/backend/internal/adapters/httpclient"
	"github.com/retailstack/backend/internal/core/domain"
	"github.com/retailstack/backend/internal/core/serviceerrors"
)

func TestNotificationClient_Send(t *testing.T) {
	t.Run("posts the notification payload", func(t *testing.T) {
		var gotPath string
		var gotBody struct {
			CustomerID int64  `json:"customer_id"`
			OrderID    string `json:"order_id"`
			Message    string `json:"message"`
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := httpclient.NewNotificationClient(server.URL, time.Second)
		notification := domain.NewOrderPlacedNotification(&domain.Order{
			ID:         "aabbccddee112233aabbccdd",
			CustomerID: 7,
			Lines:      []domain.OrderLine{{ProductID: 1, Quantity: 2}},
		})

		if err := client.Send(context.Background(), notification); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotPath != "/api/v1/notifications" {
			t.Fatalf("unexpected path %q", gotPath)
		}
		if gotBody.CustomerID != 7 {
			t.Fatalf("expected customer 7, got %d", gotBody.CustomerID)
		}
		if gotBody.OrderID != "aabbccddee112233aabbccdd" {
			t.Fatalf("unexpected order id %q", gotBody.OrderID)
		}
		if gotBody.Message == "" {
			t.Fatal("expected message to be populated")
		}
	})

	t.Run("maps transport failure to unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := httpclient.NewNotificationClient(server.URL, time.Second)

		err := client.Send(context.Background(), domain.NewNotification(7, "", "hello"))
		if !serviceerrors.IsOfKind(err, serviceerrors.KindUnavailable) {
			t.Fatalf("expected KindUnavailable, got %v", err)
		}
	})
}
