package port

import (
	"context"

	"github.com/retailstack/backend/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type NotificationPort interface {
	Create(ctx context.Context, notification *domain.Notification) error
	GetByCustomerID(ctx context.Context, customerID domain.CustomerID, limit, offset int64) ([]*domain.Notification, error)
}
