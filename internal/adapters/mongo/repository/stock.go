package repository

import (
	"context"
	"errors"
	"fmt"
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

type StockRepository struct {
	*BaseRepository[document.StockDocument]
	collection *mongo.Collection
}

func NewStockRepository(db *mongo.Database) port.StockLedgerPort {
	repo := &StockRepository{
		BaseRepository: NewBaseRepository[document.StockDocument](db, "stock"),
		collection:     db.Collection("stock"),
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "stock",
		})
	}

	return repo
}

func (r *StockRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "product_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "updated_at", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *StockRepository) Get(ctx context.Context, productID domain.ProductID) (*domain.StockRecord, error) {
	doc, err := r.FindOne(ctx, bson.M{"product_id": int64(productID)})
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return domain.NewStockRecord(productID), nil
		}
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *StockRepository) Set(ctx context.Context, productID domain.ProductID, quantity int) (*domain.StockRecord, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc document.StockDocument
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"product_id": int64(productID)},
		bson.M{"$set": bson.M{
			"quantity":   quantity,
			"updated_at": time.Now(),
		}},
		opts,
	).Decode(&doc)
	if err != nil {
		return nil, parseError(err)
	}

	return doc.ToDomain(), nil
}

// Decrement refuses to go negative. The availability check and the
// subtraction are one FindOneAndUpdate, so concurrent reducers can
// never jointly overdraw a product.
func (r *StockRepository) Decrement(ctx context.Context, productID domain.ProductID, amount int) (*domain.StockRecord, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After)

	var doc document.StockDocument
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{
			"product_id": int64(productID),
			"quantity":   bson.M{"$gte": amount},
		},
		bson.M{
			"$inc": bson.M{"quantity": -amount},
			"$set": bson.M{"updated_at": time.Now()},
		},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.classifyRefusal(ctx, productID)
		}
		return nil, parseError(err)
	}

	return doc.ToDomain(), nil
}

// classifyRefusal tells a missing record apart from one that exists
// with too little stock. The read is advisory only; the refusal itself
// already happened atomically.
func (r *StockRepository) classifyRefusal(ctx context.Context, productID domain.ProductID) error {
	err := r.collection.FindOne(ctx, bson.M{"product_id": int64(productID)}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return serviceerrors.NewNotFoundError(fmt.Sprintf("no stock record for product %d", productID))
	}
	if err != nil {
		return parseError(err)
	}
	return serviceerrors.NewInsufficientStockError(fmt.Sprintf("insufficient stock for product %d", productID))
}

func (r *StockRepository) Increment(ctx context.Context, productID domain.ProductID, amount int) (*domain.StockRecord, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc document.StockDocument
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"product_id": int64(productID)},
		bson.M{
			"$inc": bson.M{"quantity": amount},
			"$set": bson.M{"updated_at": time.Now()},
		},
		opts,
	).Decode(&doc)
	if err != nil {
		return nil, parseError(err)
	}

	return doc.ToDomain(), nil
}

func (r *StockRepository) UpdatedSince(ctx context.Context, since time.Time) ([]*domain.StockRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: 1}})

	docs, err := r.Find(ctx, bson.M{"updated_at": bson.M{"$gte": since}}, opts)
	if err != nil {
		return nil, err
	}

	records := make([]*domain.StockRecord, len(docs))
	for i, doc := range docs {
		records[i] = doc.ToDomain()
	}

	return records, nil
}
