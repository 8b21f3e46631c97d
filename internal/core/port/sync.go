package port

import (
	"context"

	"github.com/retailstack/backend/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// CacheSyncPort pushes stock changes to the product-cache service.
// Implementations absorb every failure (timeout, connection fault,
// remote error) into the returned SyncOutcome; they never return an
// error, so a down replica cannot block the caller.
type CacheSyncPort interface {
	PushSet(ctx context.Context, productID domain.ProductID, quantity int) domain.SyncOutcome
	PushReduce(ctx context.Context, productID domain.ProductID, amount int) domain.SyncOutcome
}
