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

type CartController struct {
	cartService *service.CartService
}

type CartItemResponse struct {
	ID          string    `json:"id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int       `json:"unit_price"`
	TotalPrice  int       `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CartResponse struct {
	CustomerID  int64              `json:"customer_id"`
	Items       []CartItemResponse `json:"items"`
	TotalAmount int                `json:"total_amount"`
}

func NewCartItemResponse(item *domain.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:          string(item.ID),
		ProductID:   int64(item.ProductID),
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		UnitPrice:   int(item.UnitPrice),
		TotalPrice:  int(item.CalculateTotalAmount()),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func NewCartResponse(customerID domain.CustomerID, items []*domain.CartItem) CartResponse {
	itemResponses := make([]CartItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = NewCartItemResponse(item)
	}
	return CartResponse{
		CustomerID:  int64(customerID),
		Items:       itemResponses,
		TotalAmount: int(domain.CalculateCartTotal(items)),
	}
}

func NewCartController(cartService *service.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func parseCustomerID(c *gin.Context) (domain.CustomerID, bool) {
	customerID, err := strconv.ParseInt(c.Param("customerID"), 10, 64)
	if err != nil || customerID <= 0 {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid customer ID"))
		return 0, false
	}
	return domain.CustomerID(customerID), true
}

// GetCart godoc
// @Summary     Get a customer's cart
// @Description Returns the cart items and total for a customer
// @Tags        cart
// @Produce     json
// @Param       customerID path     int true "Customer ID"
// @Success     200        {object} CartResponse
// @Failure     400        {object} handlers.ErrorResponse
// @Failure     500        {object} handlers.ErrorResponse
// @Router      /api/v1/carts/{customerID} [get]
func (cartController *CartController) GetCart(c *gin.Context) {
	customerID, ok := parseCustomerID(c)
	if !ok {
		return
	}
	items, err := cartController.cartService.GetCart(c.Request.Context(), customerID)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCartResponse(customerID, items))
}

// AddItem godoc
// @Summary     Add an item to the cart
// @Description Adds a product to the cart; repeating the product accumulates quantity
// @Tags        cart
// @Accept      json
// @Produce     json
// @Param       request body     dto.AddCartItemRequest true "Item data"
// @Success     201     {object} CartItemResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/carts [post]
func (cartController *CartController) AddItem(c *gin.Context) {
	var request dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	item, err := cartController.cartService.AddItem(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewCartItemResponse(item))
}

// UpdateQuantity godoc
// @Summary     Update a cart line's quantity
// @Description Sets the quantity of a product already in the cart
// @Tags        cart
// @Accept      json
// @Produce     json
// @Param       customerID path     int                           true "Customer ID"
// @Param       productID  path     int                           true "Product ID"
// @Param       request    body     dto.UpdateCartQuantityRequest true "New quantity"
// @Success     200        {object} CartItemResponse
// @Failure     400        {object} handlers.ErrorResponse
// @Failure     404        {object} handlers.ErrorResponse
// @Failure     500        {object} handlers.ErrorResponse
// @Router      /api/v1/carts/{customerID}/items/{productID} [put]
func (cartController *CartController) UpdateQuantity(c *gin.Context) {
	customerID, ok := parseCustomerID(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	var request dto.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	item, err := cartController.cartService.UpdateQuantity(c.Request.Context(), customerID, productID, request.Quantity)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCartItemResponse(item))
}

// RemoveItem godoc
// @Summary     Remove an item from the cart
// @Description Removes a single product from the customer's cart
// @Tags        cart
// @Produce     json
// @Param       customerID path     int true "Customer ID"
// @Param       productID  path     int true "Product ID"
// @Success     200        {object} MessageResponse
// @Failure     400        {object} handlers.ErrorResponse
// @Failure     404        {object} handlers.ErrorResponse
// @Failure     500        {object} handlers.ErrorResponse
// @Router      /api/v1/carts/{customerID}/items/{productID} [delete]
func (cartController *CartController) RemoveItem(c *gin.Context) {
	customerID, ok := parseCustomerID(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	if err := cartController.cartService.RemoveItem(c.Request.Context(), customerID, productID); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Item removed from cart"})
}

// ClearCart godoc
// @Summary     Clear a customer's cart
// @Description Removes every item from the cart; clearing an empty cart succeeds
// @Tags        cart
// @Produce     json
// @Param       customerID path     int true "Customer ID"
// @Success     200        {object} MessageResponse
// @Failure     400        {object} handlers.ErrorResponse
// @Failure     500        {object} handlers.ErrorResponse
// @Router      /api/v1/carts/{customerID} [delete]
func (cartController *CartController) ClearCart(c *gin.Context) {
	customerID, ok := parseCustomerID(c)
	if !ok {
		return
	}
	if err := cartController.cartService.ClearCart(c.Request.Context(), customerID); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Cart cleared"})
}
