package repository

import (
	"context"
	"fmt"
	"time"

	"taste-heaven/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoOrderRepository implements the OrderRepository interface using MongoDB.
type mongoOrderRepository struct {
	col    *mongo.Collection
	logger zerolog.Logger
}

// NewMongoOrderRepository creates a new MongoDB-backed order repository.
func NewMongoOrderRepository(db *mongo.Database, logger zerolog.Logger) OrderRepository {
	return &mongoOrderRepository{
		col:    db.Collection(OrdersCollection),
		logger: logger.With().Str("repository", "order").Str("store", "mongo").Logger(),
	}
}

// Create inserts the order as a single document with embedded items.
func (r *mongoOrderRepository) Create(ctx context.Context, order *model.Order) error {
	if order.ID == "" {
		order.ID = newObjectID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	if _, err := r.col.InsertOne(ctx, order); err != nil {
		r.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID).
		Int("item_count", len(order.Items)).
		Msg("order created successfully")

	return nil
}

// ListByEmail retrieves all orders for a customer, newest first.
func (r *mongoOrderRepository) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.D{{Key: "userEmail", Value: email}}, opts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	orders := []model.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode orders")
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}
