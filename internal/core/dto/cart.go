package dto

import "github.com/retailstack/backend/internal/core/domain"

type AddCartItemRequest struct {
	CustomerID  domain.CustomerID `json:"customer_id" binding:"required"`
	ProductID   domain.ProductID  `json:"product_id" binding:"required"`
	ProductName string            `json:"product_name"`
	Quantity    int               `json:"quantity" binding:"required,gt=0"`
	UnitPrice   int               `json:"unit_price" binding:"gte=0"`
}

type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}
