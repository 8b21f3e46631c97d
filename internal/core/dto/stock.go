package dto

type SetStockRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type AdjustStockRequest struct {
	Amount int `json:"amount" binding:"required,gt=0"`
}
