package document

import (
	"time"

	"github.com/retailstack/backend/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderLineDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID int64              `bson:"product_id"`
	Quantity  int                `bson:"quantity"`
}

type OrderDocument struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty"`
	CustomerID int64               `bson:"customer_id"`
	Lines      []OrderLineDocument `bson:"lines"`
	Status     string              `bson:"status"`
	CreatedAt  time.Time           `bson:"created_at"`
	UpdatedAt  time.Time           `bson:"updated_at"`
}

func (doc OrderDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *OrderDocument) ToDomain() *domain.Order {
	lines := make([]domain.OrderLine, len(doc.Lines))
	for i, lineDoc := range doc.Lines {
		lines[i] = domain.OrderLine{
			ID:        domain.ID(lineDoc.ID.Hex()),
			ProductID: domain.ProductID(lineDoc.ProductID),
			Quantity:  lineDoc.Quantity,
		}
	}

	return &domain.Order{
		ID:         domain.ID(doc.ID.Hex()),
		CustomerID: domain.CustomerID(doc.CustomerID),
		Lines:      lines,
		Status:     domain.OrderStatus(doc.Status),
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

func ToOrderDocument(order *domain.Order) *OrderDocument {
	lines := make([]OrderLineDocument, len(order.Lines))
	for i, line := range order.Lines {
		lineDoc := OrderLineDocument{
			ProductID: int64(line.ProductID),
			Quantity:  line.Quantity,
		}

		if line.ID != "" {
			objectID, _ := primitive.ObjectIDFromHex(string(line.ID))
			lineDoc.ID = objectID
		} else {
			lineDoc.ID = primitive.NewObjectID()
		}

		lines[i] = lineDoc
	}

	doc := &OrderDocument{
		CustomerID: int64(order.CustomerID),
		Lines:      lines,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}

	if order.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(order.ID))
		doc.ID = objectID
	}

	return doc
}
