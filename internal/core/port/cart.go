package port

import (
	"context"

	"github.com/retailstack/backend/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type CartPort interface {
	GetByCustomerID(ctx context.Context, customerID domain.CustomerID) ([]*domain.CartItem, error)
	// Upsert inserts the item or, when the customer already has the
	// product in the cart, accumulates the quantity.
	Upsert(ctx context.Context, item *domain.CartItem) error
	UpdateQuantity(ctx context.Context, customerID domain.CustomerID, productID domain.ProductID, quantity int) (*domain.CartItem, error)
	Remove(ctx context.Context, customerID domain.CustomerID, productID domain.ProductID) error
	Clear(ctx context.Context, customerID domain.CustomerID) error
}
