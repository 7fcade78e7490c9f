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

// mongoProductRepository implements the ProductRepository interface using MongoDB.
type mongoProductRepository struct {
	col    *mongo.Collection
	logger zerolog.Logger
}

// NewMongoProductRepository creates a new MongoDB-backed product repository.
func NewMongoProductRepository(db *mongo.Database, logger zerolog.Logger) ProductRepository {
	return &mongoProductRepository{
		col:    db.Collection(ProductsCollection),
		logger: logger.With().Str("repository", "product").Str("store", "mongo").Logger(),
	}
}

// GetAll retrieves every product in insertion order.
func (r *mongoProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	products := []model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode products")
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

// Count returns the number of products in the catalog.
func (r *mongoProductRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// InsertMany appends products with an ordered insert. Products sharing a
// creation timestamp keep slice order through their ascending ObjectIDs.
func (r *mongoProductRepository) InsertMany(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, len(products))
	for i := range products {
		p := &products[i]
		if p.ID == "" {
			p.ID = newObjectID()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		docs[i] = p
	}

	if _, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		r.logger.Error().Err(err).Int("count", len(products)).Msg("failed to insert products")
		return fmt.Errorf("failed to insert products: %w", translateMongoError(err))
	}

	r.logger.Debug().Int("count", len(products)).Msg("products inserted successfully")

	return nil
}
