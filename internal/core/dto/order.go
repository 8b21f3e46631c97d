package dto

import "github.com/retailstack/backend/internal/core/domain"

type OrderLine struct {
	ProductID domain.ProductID `json:"product_id"`
	Quantity  int              `json:"quantity"`
}

type PlaceOrderRequest struct {
	CustomerID domain.CustomerID `json:"customer_id"`
	Lines      []OrderLine       `json:"lines"`
}
