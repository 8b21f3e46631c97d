package port

import (
	"context"

	"github.com/retailstack/backend/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// NotifierPort delivers an order notification to the notification
// service. Callers treat a returned error as advisory.
type NotifierPort interface {
	Send(ctx context.Context, notification *domain.Notification) error
}
