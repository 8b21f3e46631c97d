package service

import (
	"context"
	"fmt"
	"time"

	"github.com/retailstack/backend/internal/core/domain"
	"github.com/retailstack/backend/internal/core/dto"
	"github.com/retailstack/backend/internal/core/logger"
	"github.com/retailstack/backend/internal/core/port"
	"github.com/retailstack/backend/internal/core/serviceerrors"
	"github.com/retailstack/backend/internal/core/utils"
)

const (
	ORDER_MAX_LINES = 100
	orderCacheTTL   = 15 * time.Minute
)

type OrderService struct {
	orderRepository port.OrderPort
	inventory       port.InventoryGatewayPort
	notifier        port.NotifierPort
	orderCache      port.CachePort[domain.Order]
	idempotency     *IdempotencyService[domain.Order]
}

func NewOrderService(
	orderRepository port.OrderPort,
	inventory port.InventoryGatewayPort,
	notifier port.NotifierPort,
	orderCache port.CachePort[domain.Order],
	idempotency *IdempotencyService[domain.Order],
) *OrderService {
	return &OrderService{
		orderRepository: orderRepository,
		inventory:       inventory,
		notifier:        notifier,
		orderCache:      orderCache,
		idempotency:     idempotency,
	}
}

func (s *OrderService) getCacheKey(orderID domain.ID) string {
	return fmt.Sprintf("order:%s", orderID)
}

func (s *OrderService) GetOrderByID(ctx context.Context, orderID domain.ID) (*domain.Order, error) {
	cached, err := s.orderCache.Get(ctx, s.getCacheKey(orderID))
	if err != nil {
		logger.Error(ctx, "cache: get order failed", err, map[string]any{
			"order_id": orderID,
		})
	}
	if cached != nil {
		return cached, nil
	}

	order, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.orderCache.Set(ctx, s.getCacheKey(orderID), order, orderCacheTTL); err != nil {
		logger.Error(ctx, "cache: set order failed", err, map[string]any{
			"order_id": orderID,
		})
	}

	return order, nil
}

func (s *OrderService) GetOrdersByCustomer(ctx context.Context, customerID domain.CustomerID, limit, offset int64) ([]*domain.Order, error) {
	return s.orderRepository.GetByCustomerID(ctx, customerID, limit, offset)
}

func validatePlacement(request *dto.PlaceOrderRequest) error {
	if request.CustomerID <= 0 {
		return serviceerrors.NewInvalidRequestError("invalid customer ID")
	}
	if len(request.Lines) == 0 {
		return serviceerrors.NewInvalidRequestError("order has no lines")
	}
	if len(request.Lines) > ORDER_MAX_LINES {
		return serviceerrors.NewUnprocessableEntityError("order lines limit exceeded")
	}
	for _, line := range request.Lines {
		if line.ProductID <= 0 {
			return serviceerrors.NewInvalidRequestError("invalid product ID")
		}
		if line.Quantity <= 0 {
			return serviceerrors.NewInvalidRequestError("line quantity must be positive")
		}
	}
	return nil
}

// transition persists a status change together with its outbox event and
// mirrors it on the in-memory order.
func (s *OrderService) transition(ctx context.Context, order *domain.Order, status domain.OrderStatus) error {
	event := domain.NewOrderStatusEvent(order.ID, status, order.Status, time.Now(), order.CustomerID)
	if err := s.orderRepository.UpdateStatusWithOutbox(ctx, order.ID, status, event); err != nil {
		return err
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return nil
}

type reservedLine struct {
	productID domain.ProductID
	amount    int
}

// reserveStock decrements every line on the inventory service. On the
// first failure it restores the lines already taken, in reverse order,
// so the placement is all-or-nothing from the caller's perspective.
func (s *OrderService) reserveStock(ctx context.Context, order *domain.Order) error {
	reserved := make([]reservedLine, 0, len(order.Lines))

	for _, line := range order.Lines {
		if err := s.inventory.ReduceStock(ctx, line.ProductID, line.Quantity); err != nil {
			logger.Warn(ctx, "order: stock reservation failed", map[string]any{
				"order_id":   order.ID,
				"product_id": line.ProductID,
				"quantity":   line.Quantity,
				"reason":     err.Error(),
			})
			s.compensate(ctx, order.ID, reserved)
			return err
		}
		reserved = append(reserved, reservedLine{productID: line.ProductID, amount: line.Quantity})
	}

	return nil
}

// compensate replays the recorded restorations newest-first. A failed
// compensation is logged and left for manual reconciliation; the
// placement still reports the original rejection.
func (s *OrderService) compensate(ctx context.Context, orderID domain.ID, reserved []reservedLine) {
	for i := len(reserved) - 1; i >= 0; i-- {
		line := reserved[i]
		if err := s.inventory.RestoreStock(ctx, line.productID, line.amount); err != nil {
			logger.Error(ctx, "order: stock compensation failed", err, map[string]any{
				"order_id":   orderID,
				"product_id": line.productID,
				"amount":     line.amount,
			})
		}
	}
}

func (s *OrderService) notify(ctx context.Context, order *domain.Order) domain.OrderStatus {
	notification := domain.NewOrderPlacedNotification(order)
	if err := s.notifier.Send(ctx, notification); err != nil {
		// Notification is advisory: a lost Send never reverts the
		// reservation or fails the placement.
		logger.Warn(ctx, "order: notification send failed", map[string]any{
			"order_id":    order.ID,
			"customer_id": order.CustomerID,
			"reason":      err.Error(),
		})
		return domain.OrderStatusNotificationSkipped
	}
	return domain.OrderStatusNotified
}

func (s *OrderService) processPlacement(ctx context.Context, request *dto.PlaceOrderRequest) (*domain.Order, error) {
	if err := validatePlacement(request); err != nil {
		return nil, err
	}

	lines := make([]domain.OrderLine, len(request.Lines))
	for i, line := range request.Lines {
		lines[i] = *domain.NewOrderLine(line.ProductID, line.Quantity)
	}

	order := domain.NewOrder(request.CustomerID, domain.OrderStatusReceived, lines)
	if err := s.orderRepository.Create(ctx, order); err != nil {
		logger.Error(ctx, "order: create failed", err, map[string]any{
			"customer_id": request.CustomerID,
		})
		return nil, err
	}

	if err := s.transition(ctx, order, domain.OrderStatusStockReserving); err != nil {
		return nil, err
	}

	if err := s.reserveStock(ctx, order); err != nil {
		if terr := s.transition(ctx, order, domain.OrderStatusStockRejected); terr != nil {
			logger.Error(ctx, "order: rejected-status update failed", terr, map[string]any{
				"order_id": order.ID,
			})
		}
		return nil, err
	}

	if err := s.transition(ctx, order, domain.OrderStatusStockReserved); err != nil {
		return nil, err
	}

	finalStatus := s.notify(ctx, order)
	if err := s.transition(ctx, order, finalStatus); err != nil {
		logger.Error(ctx, "order: final-status update failed", err, map[string]any{
			"order_id": order.ID,
			"status":   finalStatus,
		})
	}

	if err := s.orderCache.Set(ctx, s.getCacheKey(order.ID), order, orderCacheTTL); err != nil {
		logger.Error(ctx, "cache: set order failed", err, map[string]any{
			"order_id": order.ID,
		})
	}

	logger.Info(ctx, "Order placed", map[string]any{
		"order_id": order.ID,
		"status":   order.Status,
	})
	return order, nil
}

func (s *OrderService) PlaceOrder(ctx context.Context, idempotencyKey string, request *dto.PlaceOrderRequest) (*domain.Order, error) {
	if idempotencyKey == "" {
		return s.processPlacement(ctx, request)
	}

	payloadHash := utils.HashJSON(request)

	existing, err := s.idempotency.Claim(ctx, idempotencyKey, payloadHash)
	if err != nil {
		logger.Error(ctx, "idempotency: claim failed", err, map[string]any{
			"idempotency_key": idempotencyKey,
		})
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	order, err := s.processPlacement(ctx, request)
	if err != nil {
		s.idempotency.Release(ctx, idempotencyKey)
		return nil, err
	}

	s.idempotency.Complete(ctx, idempotencyKey, payloadHash, order)

	return order, nil
}
