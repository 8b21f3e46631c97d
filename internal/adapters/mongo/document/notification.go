package document

import (
	"time"

	"github.com/retailstack/backend/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID int64              `bson:"customer_id"`
	OrderID    string             `bson:"order_id,omitempty"`
	Message    string             `bson:"message"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (doc NotificationDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *NotificationDocument) ToDomain() *domain.Notification {
	return &domain.Notification{
		ID:         domain.ID(doc.ID.Hex()),
		CustomerID: domain.CustomerID(doc.CustomerID),
		OrderID:    domain.ID(doc.OrderID),
		Message:    doc.Message,
		CreatedAt:  doc.CreatedAt,
	}
}

func ToNotificationDocument(n *domain.Notification) *NotificationDocument {
	doc := &NotificationDocument{
		CustomerID: int64(n.CustomerID),
		OrderID:    string(n.OrderID),
		Message:    n.Message,
		CreatedAt:  n.CreatedAt,
	}

	if n.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(n.ID))
		doc.ID = objectID
	}

	return doc
}
