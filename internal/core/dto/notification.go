package dto

import "github.com/retailstack/backend/internal/core/domain"

type SendNotificationRequest struct {
	CustomerID domain.CustomerID `json:"customer_id" binding:"required"`
	OrderID    string            `json:"order_id"`
	Message    string            `json:"message" binding:"required"`
}
