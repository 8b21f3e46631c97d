package domain

import "time"

type CartItem struct {
	ID          ID
	CustomerID  CustomerID
	ProductID   ProductID
	ProductName string
	Quantity    int
	UnitPrice   Amount
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewCartItem(customerID CustomerID, productID ProductID, productName string, quantity int, unitPrice Amount) *CartItem {
	return &CartItem{
		CustomerID:  customerID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func (i *CartItem) CalculateTotalAmount() Amount {
	return i.UnitPrice.Multiply(i.Quantity)
}

func CalculateCartTotal(items []*CartItem) Amount {
	total := Amount(0)
	for _, item := range items {
		total = total.Add(item.CalculateTotalAmount())
	}
	return total
}
