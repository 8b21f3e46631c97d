package port

import (
	"context"

	"github.com/retailstack/backend/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// InventoryGatewayPort is the order service's view of the inventory
// service. Errors keep their service-error kinds across the wire:
// KindNotFound, KindInsufficientStock and KindInvalidRequest map back
// from the remote response, transport faults become KindUnavailable.
type InventoryGatewayPort interface {
	ReduceStock(ctx context.Context, productID domain.ProductID, amount int) error
	RestoreStock(ctx context.Context, productID domain.ProductID, amount int) error
}
