package service

import (
	"context"

	"github.com/retailstack/backend/internal/core/domain"
	"github.com/retailstack/backend/internal/core/dto"
	"github.com/retailstack/backend/internal/core/logger"
	"github.com/retailstack/backend/internal/core/port"
	"github.com/retailstack/backend/internal/core/serviceerrors"
)

type NotificationService struct {
	notificationRepository port.NotificationPort
}

func NewNotificationService(notificationRepository port.NotificationPort) *NotificationService {
	return &NotificationService{notificationRepository: notificationRepository}
}

func (s *NotificationService) Send(ctx context.Context, request *dto.SendNotificationRequest) (*domain.Notification, error) {
	if request.CustomerID <= 0 {
		return nil, serviceerrors.NewInvalidRequestError("invalid customer ID")
	}
	if request.Message == "" {
		return nil, serviceerrors.NewInvalidRequestError("message must not be empty")
	}

	notification := domain.NewNotification(request.CustomerID, domain.ID(request.OrderID), request.Message)
	if err := s.notificationRepository.Create(ctx, notification); err != nil {
		logger.Error(ctx, "notification: create failed", err, map[string]any{
			"customer_id": request.CustomerID,
			"order_id":    request.OrderID,
		})
		return nil, err
	}

	// Delivery transport (email, push) is out of scope; recording and
	// logging the message stands in for it.
	logger.Info(ctx, "Notification delivered", map[string]any{
		"notification_id": notification.ID,
		"customer_id":     notification.CustomerID,
		"order_id":        notification.OrderID,
	})
	return notification, nil
}

func (s *NotificationService) GetByCustomer(ctx context.Context, customerID domain.CustomerID, limit, offset int64) ([]*domain.Notification, error) {
	return s.notificationRepository.GetByCustomerID(ctx, customerID, limit, offset)
}
