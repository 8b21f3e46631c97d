package repository_test

import (
	"context"
	"testing"

	"github.com/retailstack/backend/internal/adapters/mongo/repository"
	"github.com/retailstack/backend/internal/core/domain"
)

func TestNotificationRepository_Create(t *testing.T) {
	repo := repository.NewNotificationRepository(testDB)
	ctx := context.Background()

	t.Run("creates notification and assigns ID", func(t *testing.T) {
		notification := domain.NewNotification(7001, "aabbccddee112233aabbccdd", "Order placed")

		if err := repo.Create(ctx, notification); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if notification.ID == "" {
			t.Fatal("expected notification ID to be assigned")
		}
		if len(string(notification.ID)) != 24 {
			t.Fatalf("expected 24-char hex ID, got %q", notification.ID)
		}
	})

	t.Run("order reference is optional", func(t *testing.T) {
		notification := domain.NewNotification(7002, "", "Welcome")

		if err := repo.Create(ctx, notification); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestNotificationRepository_GetByCustomerID(t *testing.T) {
	freshDB := testClient.Database("test_notification_list")
	repo := repository.NewNotificationRepository(freshDB)
	ctx := context.Background()

	customerID := domain.CustomerID(7100)
	for _, msg := range []string{"first", "second", "third"} {
		if err := repo.Create(ctx, domain.NewNotification(customerID, "", msg)); err != nil {
			t.Fatalf("setup: create failed: %v", err)
		}
	}
	_ = repo.Create(ctx, domain.NewNotification(7999, "", "someone else"))

	t.Run("returns only the customer's notifications", func(t *testing.T) {
		notifications, err := repo.GetByCustomerID(ctx, customerID, 10, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(notifications) != 3 {
			t.Fatalf("expected 3 notifications, got %d", len(notifications))
		}
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		page, err := repo.GetByCustomerID(ctx, customerID, 2, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(page) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(page))
		}

		rest, err := repo.GetByCustomerID(ctx, customerID, 2, 2)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(rest) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(rest))
		}
	})

	t.Run("unknown customer returns empty list", func(t *testing.T) {
		notifications, err := repo.GetByCustomerID(ctx, 8888, 10, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(notifications) != 0 {
			t.Fatalf("expected 0 notifications, got %d", len(notifications))
		}
	})
}
