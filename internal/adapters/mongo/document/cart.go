package document

import (
	"time"

	"github.com/retailstack/backend/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartItemDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID  int64              `bson:"customer_id"`
	ProductID   int64              `bson:"product_id"`
	ProductName string             `bson:"product_name"`
	Quantity    int                `bson:"quantity"`
	UnitPrice   int64              `bson:"unit_price"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (doc CartItemDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *CartItemDocument) ToDomain() *domain.CartItem {
	return &domain.CartItem{
		ID:          domain.ID(doc.ID.Hex()),
		CustomerID:  domain.CustomerID(doc.CustomerID),
		ProductID:   domain.ProductID(doc.ProductID),
		ProductName: doc.ProductName,
		Quantity:    doc.Quantity,
		UnitPrice:   domain.Amount(doc.UnitPrice),
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

func ToCartItemDocument(item *domain.CartItem) *CartItemDocument {
	doc := &CartItemDocument{
		CustomerID:  int64(item.CustomerID),
		ProductID:   int64(item.ProductID),
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		UnitPrice:   int64(item.UnitPrice),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}

	if item.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(item.ID))
		doc.ID = objectID
	}

	return doc
}
