package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/retailstack/backend/internal/adapters/mongo/document"
	"github.com/retailstack/backend/internal/core/domain"
	"github.com/retailstack/backend/internal/core/logger"
	"github.com/retailstack/backend/internal/core/port"
)

type NotificationRepository struct {
	*BaseRepository[document.NotificationDocument]
	collection *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) port.NotificationPort {
	repo := &NotificationRepository{
		BaseRepository: NewBaseRepository[document.NotificationDocument](db, "notifications"),
		collection:     db.Collection("notifications"),
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "notifications",
		})
	}

	return repo
}

func (r *NotificationRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "customer_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *NotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	doc := document.ToNotificationDocument(notification)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	notification.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	return nil
}

func (r *NotificationRepository) GetByCustomerID(ctx context.Context, customerID domain.CustomerID, limit, offset int64) ([]*domain.Notification, error) {
	opts := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	docs, err := r.Find(ctx, bson.M{"customer_id": int64(customerID)}, opts)
	if err != nil {
		return nil, err
	}

	notifications := make([]*domain.Notification, len(docs))
	for i, doc := range docs {
		notifications[i] = doc.ToDomain()
	}

	return notifications, nil
}
