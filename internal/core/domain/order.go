package domain

import "time"

type OrderStatus string

const (
	OrderStatusReceived            OrderStatus = "received"
	OrderStatusStockReserving      OrderStatus = "stock_reserving"
	OrderStatusStockReserved       OrderStatus = "stock_reserved"
	OrderStatusStockRejected       OrderStatus = "stock_rejected"
	OrderStatusNotified            OrderStatus = "notified"
	OrderStatusNotificationSkipped OrderStatus = "notification_skipped"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusReceived, OrderStatusStockReserving, OrderStatusStockReserved,
		OrderStatusStockRejected, OrderStatusNotified, OrderStatusNotificationSkipped:
		return true
	}
	return false
}

// IsTerminal reports whether a placement attempt is finished: either the
// order was rejected, or stock is reserved and the notification step ran.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusStockRejected || s == OrderStatusNotified || s == OrderStatusNotificationSkipped
}

type Order struct {
	ID         ID
	CustomerID CustomerID
	Lines      []OrderLine
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderLine is the demand one placement attempt puts on a single
// product. Reserving a line decrements the ledger by Quantity.
type OrderLine struct {
	ID        ID
	ProductID ProductID
	Quantity  int
}

func NewOrderLine(productID ProductID, quantity int) *OrderLine {
	return &OrderLine{
		ProductID: productID,
		Quantity:  quantity,
	}
}

func NewOrder(customerID CustomerID, status OrderStatus, lines []OrderLine) *Order {
	return &Order{
		CustomerID: customerID,
		Lines:      lines,
		Status:     status,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

type OrderStatusEvent struct {
	OrderID    ID          `json:"order_id"`
	Status     OrderStatus `json:"status"`
	OldStatus  OrderStatus `json:"old_status"`
	UpdatedAt  time.Time   `json:"updated_at"`
	CustomerID CustomerID  `json:"customer_id"`
}

func (e *OrderStatusEvent) GetName() string {
	return "order.status_changed"
}

func (e *OrderStatusEvent) GetEntityName() string {
	return "order"
}

func NewOrderStatusEvent(orderID ID, status OrderStatus, oldStatus OrderStatus, updatedAt time.Time, customerID CustomerID) *OrderStatusEvent {
	return &OrderStatusEvent{
		OrderID:    orderID,
		Status:     status,
		OldStatus:  oldStatus,
		UpdatedAt:  updatedAt,
		CustomerID: customerID,
	}
}
