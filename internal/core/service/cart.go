package service

import (
	"context"
	"fmt"
	"time"

	"github.com/retailstack/backend/internal/core/domain"
	"github.com/retailstack/backend/internal/core/dto"
	"github.com/retailstack/backend/internal/core/logger"
	"github.com/retailstack/backend/internal/core/port"
	"github.com/retailstack/backend/internal/core/serviceerrors"
)

const cartCacheTTL = 10 * time.Minute

type CartService struct {
	cartRepository port.CartPort
	cartCache      port.CachePort[[]*domain.CartItem]
}

func NewCartService(cartRepository port.CartPort, cartCache port.CachePort[[]*domain.CartItem]) *CartService {
	return &CartService{cartRepository: cartRepository, cartCache: cartCache}
}

func (s *CartService) getCacheKey(customerID domain.CustomerID) string {
	return fmt.Sprintf("cart:%d", customerID)
}

func (s *CartService) GetCart(ctx context.Context, customerID domain.CustomerID) ([]*domain.CartItem, error) {
	cached, err := s.cartCache.Get(ctx, s.getCacheKey(customerID))
	if err != nil {
		logger.Error(ctx, "cache: get cart failed", err, map[string]any{
			"customer_id": customerID,
		})
	}
	if cached != nil {
		return *cached, nil
	}

	items, err := s.cartRepository.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := s.cartCache.Set(ctx, s.getCacheKey(customerID), &items, cartCacheTTL); err != nil {
		logger.Error(ctx, "cache: set cart failed", err, map[string]any{
			"customer_id": customerID,
		})
	}

	return items, nil
}

func (s *CartService) AddItem(ctx context.Context, request *dto.AddCartItemRequest) (*domain.CartItem, error) {
	if request.CustomerID <= 0 || request.ProductID <= 0 {
		return nil, serviceerrors.NewInvalidRequestError("invalid customer or product ID")
	}
	if request.Quantity <= 0 {
		return nil, serviceerrors.NewInvalidRequestError("quantity must be positive")
	}

	item := domain.NewCartItem(request.CustomerID, request.ProductID, request.ProductName, request.Quantity, domain.NewAmountFromCents(request.UnitPrice))
	if err := s.cartRepository.Upsert(ctx, item); err != nil {
		logger.Error(ctx, "cart: add item failed", err, map[string]any{
			"customer_id": request.CustomerID,
			"product_id":  request.ProductID,
		})
		return nil, err
	}

	s.invalidate(ctx, request.CustomerID)
	return item, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, customerID domain.CustomerID, productID domain.ProductID, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, serviceerrors.NewInvalidRequestError("quantity must be positive")
	}

	item, err := s.cartRepository.UpdateQuantity(ctx, customerID, productID, quantity)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, customerID)
	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, customerID domain.CustomerID, productID domain.ProductID) error {
	if err := s.cartRepository.Remove(ctx, customerID, productID); err != nil {
		return err
	}

	s.invalidate(ctx, customerID)
	return nil
}

func (s *CartService) ClearCart(ctx context.Context, customerID domain.CustomerID) error {
	if err := s.cartRepository.Clear(ctx, customerID); err != nil {
		return err
	}

	s.invalidate(ctx, customerID)
	return nil
}

func (s *CartService) invalidate(ctx context.Context, customerID domain.CustomerID) {
	if err := s.cartCache.Del(ctx, s.getCacheKey(customerID)); err != nil {
		logger.Error(ctx, "cache: invalidate cart failed", err, map[string]any{
			"customer_id": customerID,
		})
	}
}
