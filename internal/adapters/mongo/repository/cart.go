package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/retailstack/backend/internal/adapters/mongo/document"
	"github.com/retailstack/backend/internal/core/domain"
	"github.com/retailstack/backend/internal/core/logger"
	"github.com/retailstack/backend/internal/core/port"
	"github.com/retailstack/backend/internal/core/serviceerrors"
)

type CartRepository struct {
	*BaseRepository[document.CartItemDocument]
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) port.CartPort {
	repo := &CartRepository{
		BaseRepository: NewBaseRepository[document.CartItemDocument](db, "cart_items"),
		collection:     db.Collection("cart_items"),
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "cart_items",
		})
	}

	return repo
}

func (r *CartRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "customer_id", Value: 1},
				{Key: "product_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *CartRepository) GetByCustomerID(ctx context.Context, customerID domain.CustomerID) ([]*domain.CartItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	docs, err := r.Find(ctx, bson.M{"customer_id": int64(customerID)}, opts)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.CartItem, len(docs))
	for i, doc := range docs {
		items[i] = doc.ToDomain()
	}

	return items, nil
}

// Upsert accumulates quantity when the product is already in the cart
// and refreshes name and price to the latest values.
func (r *CartRepository) Upsert(ctx context.Context, item *domain.CartItem) error {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc document.CartItemDocument
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{
			"customer_id": int64(item.CustomerID),
			"product_id":  int64(item.ProductID),
		},
		bson.M{
			"$inc": bson.M{"quantity": item.Quantity},
			"$set": bson.M{
				"product_name": item.ProductName,
				"unit_price":   int64(item.UnitPrice),
				"updated_at":   time.Now(),
			},
			"$setOnInsert": bson.M{"created_at": time.Now()},
		},
		opts,
	).Decode(&doc)
	if err != nil {
		return parseError(err)
	}

	*item = *doc.ToDomain()
	return nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, customerID domain.CustomerID, productID domain.ProductID, quantity int) (*domain.CartItem, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After)

	var doc document.CartItemDocument
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{
			"customer_id": int64(customerID),
			"product_id":  int64(productID),
		},
		bson.M{"$set": bson.M{
			"quantity":   quantity,
			"updated_at": time.Now(),
		}},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, serviceerrors.NewNotFoundError("cart item not found")
		}
		return nil, parseError(err)
	}

	return doc.ToDomain(), nil
}

func (r *CartRepository) Remove(ctx context.Context, customerID domain.CustomerID, productID domain.ProductID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{
		"customer_id": int64(customerID),
		"product_id":  int64(productID),
	})
	if err != nil {
		return parseError(err)
	}

	if result.DeletedCount == 0 {
		return serviceerrors.NewNotFoundError("cart item not found")
	}

	return nil
}

// Clear is idempotent: an already-empty cart deletes nothing and
// succeeds.
func (r *CartRepository) Clear(ctx context.Context, customerID domain.CustomerID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"customer_id": int64(customerID)})
	if err != nil {
		return parseError(err)
	}

	return nil
}
