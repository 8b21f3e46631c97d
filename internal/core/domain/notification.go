package domain

import (
	"fmt"
	"time"
)

// Notification is the advisory message sent after stock was reserved for
// an order. Delivery is fire-and-forget: losing one never reverts the
// reservation it describes.
type Notification struct {
	ID         ID
	CustomerID CustomerID
	OrderID    ID
	Message    string
	CreatedAt  time.Time
}

func NewNotification(customerID CustomerID, orderID ID, message string) *Notification {
	return &Notification{
		CustomerID: customerID,
		OrderID:    orderID,
		Message:    message,
		CreatedAt:  time.Now(),
	}
}

func NewOrderPlacedNotification(order *Order) *Notification {
	return NewNotification(
		order.CustomerID,
		order.ID,
		fmt.Sprintf("Order %s placed with %d item(s)", order.ID, len(order.Lines)),
	)
}
