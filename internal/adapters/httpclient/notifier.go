package httpclient

import (
	"context"
	"net/http"
	"time"

	"github.com/retailstack/backend/internal/core/domain"
	"github.com/retailstack/backend/internal/core/dto"
	"github.com/retailstack/backend/internal/core/port"
)

type NotificationClient struct {
	client *Client
}

func NewNotificationClient(baseURL string, timeout time.Duration) port.NotifierPort {
	return &NotificationClient{client: NewClient(baseURL, timeout)}
}

func (c *NotificationClient) Send(ctx context.Context, notification *domain.Notification) error {
	request := dto.SendNotificationRequest{
		CustomerID: notification.CustomerID,
		OrderID:    string(notification.OrderID),
		Message:    notification.Message,
	}
	return c.client.doJSON(ctx, http.MethodPost, "/api/v1/notifications", request, nil)
}
