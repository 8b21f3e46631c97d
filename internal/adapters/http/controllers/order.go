package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/retailstack/backend/internal/adapters/http/handlers"
	"github.com/retailstack/backend/internal/core/domain"
	"github.com/retailstack/backend/internal/core/dto"
	"github.com/retailstack/backend/internal/core/service"
	"github.com/retailstack/backend/internal/core/serviceerrors"
)

type OrderController struct {
	orderService *service.OrderService
}

type OrderLineResponse struct {
	ID        string `json:"id"`
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID int64               `json:"customer_id"`
	Lines      []OrderLineResponse `json:"lines"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewOrderLineResponse(line domain.OrderLine) OrderLineResponse {
	return OrderLineResponse{
		ID:        string(line.ID),
		ProductID: int64(line.ProductID),
		Quantity:  line.Quantity,
	}
}

func NewOrderResponse(order *domain.Order) OrderResponse {
	lines := make([]OrderLineResponse, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = NewOrderLineResponse(line)
	}
	return OrderResponse{
		ID:         string(order.ID),
		CustomerID: int64(order.CustomerID),
		Lines:      lines,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// PlaceOrder godoc
// @Summary     Place an order
// @Description Places an order, reserving stock for every line before confirming
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header   string                false "Idempotency key"
// @Param       request         body     dto.PlaceOrderRequest true  "Order data"
// @Success     201             {object} OrderResponse
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Failure     503             {object} handlers.ErrorResponse
// @Router      /api/v1/orders [post]
func (orderController *OrderController) PlaceOrder(c *gin.Context) {
	var request dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	idempotencyKey := c.GetHeader("Idempotency-Key")
	order, err := orderController.orderService.PlaceOrder(c.Request.Context(), idempotencyKey, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewOrderResponse(order))
}

// GetOrderByID godoc
// @Summary     Get order by ID
// @Description Returns a single order by its ID
// @Tags        orders
// @Produce     json
// @Param       id  path     string true "Order ID"
// @Success     200 {object} OrderResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/orders/{id} [get]
func (orderController *OrderController) GetOrderByID(c *gin.Context) {
	orderID := c.Param("id")
	if !domain.ValidateID(orderID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid order ID"))
		return
	}
	order, err := orderController.orderService.GetOrderByID(c.Request.Context(), domain.ID(orderID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewOrderResponse(order))
}

// GetOrdersByCustomer godoc
// @Summary     List a customer's orders
// @Description Returns the customer's orders, newest first
// @Tags        orders
// @Produce     json
// @Param       customerID path     int true  "Customer ID"
// @Param       limit      query    int false "Page size"
// @Param       offset     query    int false "Page offset"
// @Success     200        {array}  OrderResponse
// @Failure     400        {object} handlers.ErrorResponse
// @Failure     500        {object} handlers.ErrorResponse
// @Router      /api/v1/customers/{customerID}/orders [get]
func (orderController *OrderController) GetOrdersByCustomer(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("customerID"), 10, 64)
	if err != nil || customerID <= 0 {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid customer ID"))
		return
	}
	limit, offset := parsePagination(c)

	orders, err := orderController.orderService.GetOrdersByCustomer(c.Request.Context(), domain.CustomerID(customerID), limit, offset)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = NewOrderResponse(order)
	}
	c.JSON(http.StatusOK, responses)
}

func parsePagination(c *gin.Context) (int64, int64) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
