package document

import (
	"time"

	"github.com/retailstack/backend/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StockDocument is keyed by the integer product ID, not the Mongo
// ObjectID. The unique index on product_id makes one record per product
// the storage invariant.
type StockDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID int64              `bson:"product_id"`
	Quantity  int                `bson:"quantity"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (doc StockDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *StockDocument) ToDomain() *domain.StockRecord {
	return &domain.StockRecord{
		ProductID: domain.ProductID(doc.ProductID),
		Quantity:  doc.Quantity,
		UpdatedAt: doc.UpdatedAt,
	}
}
