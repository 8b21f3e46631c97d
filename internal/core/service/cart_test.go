package service

import (
	"context"
	"errors"
	"testing"

	"github.com/retailstack/backend/internal/core/domain"
	"github.com/retailstack/backend/internal/core/dto"
	"github.com/retailstack/backend/internal/core/port/mock"
	"github.com/retailstack/backend/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

func setupCartService(t *testing.T) (*CartService, *mock.MockCartPort, *mock.MockCachePort[[]*domain.CartItem]) {
	ctrl := gomock.NewController(t)
	cartRepo := mock.NewMockCartPort(ctrl)
	cartCache := mock.NewMockCachePort[[]*domain.CartItem](ctrl)
	return NewCartService(cartRepo, cartCache), cartRepo, cartCache
}

func TestCartService_GetCart(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		svc, _, cache := setupCartService(t)
		cached := []*domain.CartItem{
			{CustomerID: 7, ProductID: 1, Quantity: 2},
		}

		cache.EXPECT().
			Get(gomock.Any(), "cart:7").
			Return(&cached, nil)

		items, err := svc.GetCart(context.Background(), 7)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
	})

	t.Run("cache miss - fetches from repo and caches", func(t *testing.T) {
		svc, repo, cache := setupCartService(t)
		stored := []*domain.CartItem{
			{CustomerID: 7, ProductID: 1, Quantity: 2},
			{CustomerID: 7, ProductID: 2, Quantity: 1},
		}

		cache.EXPECT().
			Get(gomock.Any(), "cart:7").
			Return(nil, nil)

		repo.EXPECT().
			GetByCustomerID(gomock.Any(), domain.CustomerID(7)).
			Return(stored, nil)

		cache.EXPECT().
			Set(gomock.Any(), "cart:7", gomock.Any(), cartCacheTTL).
			Return(nil)

		items, err := svc.GetCart(context.Background(), 7)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
	})

	t.Run("cache error - still fetches from repo", func(t *testing.T) {
		svc, repo, cache := setupCartService(t)

		cache.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("redis error"))

		repo.EXPECT().
			GetByCustomerID(gomock.Any(), domain.CustomerID(7)).
			Return([]*domain.CartItem{}, nil)

		cache.EXPECT().
			Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		items, err := svc.GetCart(context.Background(), 7)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected empty cart, got %d items", len(items))
		}
	})
}

func TestCartService_AddItem(t *testing.T) {
	t.Run("adds item and invalidates cache", func(t *testing.T) {
		svc, repo, cache := setupCartService(t)

		repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *domain.CartItem) error {
				if item.CustomerID != 7 || item.ProductID != 1 {
					t.Fatalf("unexpected item %+v", item)
				}
				return nil
			})

		cache.EXPECT().
			Del(gomock.Any(), "cart:7").
			Return(nil)

		item, err := svc.AddItem(context.Background(), &dto.AddCartItemRequest{
			CustomerID:  7,
			ProductID:   1,
			ProductName: "Keyboard",
			Quantity:    2,
			UnitPrice:   4999,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if item.CalculateTotalAmount() != domain.Amount(9998) {
			t.Fatalf("expected total 9998, got %d", item.CalculateTotalAmount())
		}
	})

	t.Run("rejects invalid identifiers", func(t *testing.T) {
		svc, _, _ := setupCartService(t)

		_, err := svc.AddItem(context.Background(), &dto.AddCartItemRequest{
			CustomerID: 0,
			ProductID:  1,
			Quantity:   1,
		})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected invalid request error, got %v", err)
		}
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		svc, _, _ := setupCartService(t)

		_, err := svc.AddItem(context.Background(), &dto.AddCartItemRequest{
			CustomerID: 7,
			ProductID:  1,
			Quantity:   0,
		})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected invalid request error, got %v", err)
		}
	})

	t.Run("repo failure is returned", func(t *testing.T) {
		svc, repo, _ := setupCartService(t)

		repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			Return(errors.New("write failed"))

		_, err := svc.AddItem(context.Background(), &dto.AddCartItemRequest{
			CustomerID: 7,
			ProductID:  1,
			Quantity:   1,
		})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	t.Run("updates quantity and invalidates cache", func(t *testing.T) {
		svc, repo, cache := setupCartService(t)
		updated := &domain.CartItem{CustomerID: 7, ProductID: 1, Quantity: 5}

		repo.EXPECT().
			UpdateQuantity(gomock.Any(), domain.CustomerID(7), domain.ProductID(1), 5).
			Return(updated, nil)

		cache.EXPECT().
			Del(gomock.Any(), "cart:7").
			Return(nil)

		item, err := svc.UpdateQuantity(context.Background(), 7, 1, 5)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if item.Quantity != 5 {
			t.Fatalf("expected quantity 5, got %d", item.Quantity)
		}
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		svc, _, _ := setupCartService(t)

		_, err := svc.UpdateQuantity(context.Background(), 7, 1, 0)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected invalid request error, got %v", err)
		}
	})

	t.Run("missing item is not found", func(t *testing.T) {
		svc, repo, _ := setupCartService(t)

		repo.EXPECT().
			UpdateQuantity(gomock.Any(), domain.CustomerID(7), domain.ProductID(99), 5).
			Return(nil, serviceerrors.NewNotFoundError("cart item not found"))

		_, err := svc.UpdateQuantity(context.Background(), 7, 99, 5)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	t.Run("removes item and invalidates cache", func(t *testing.T) {
		svc, repo, cache := setupCartService(t)

		repo.EXPECT().
			Remove(gomock.Any(), domain.CustomerID(7), domain.ProductID(1)).
			Return(nil)

		cache.EXPECT().
			Del(gomock.Any(), "cart:7").
			Return(nil)

		if err := svc.RemoveItem(context.Background(), 7, 1); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("repo failure skips invalidation", func(t *testing.T) {
		svc, repo, _ := setupCartService(t)

		repo.EXPECT().
			Remove(gomock.Any(), domain.CustomerID(7), domain.ProductID(1)).
			Return(serviceerrors.NewNotFoundError("cart item not found"))

		err := svc.RemoveItem(context.Background(), 7, 1)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}

func TestCartService_ClearCart(t *testing.T) {
	svc, repo, cache := setupCartService(t)

	repo.EXPECT().
		Clear(gomock.Any(), domain.CustomerID(7)).
		Return(nil)

	cache.EXPECT().
		Del(gomock.Any(), "cart:7").
		Return(nil)

	if err := svc.ClearCart(context.Background(), 7); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
