package repository

import (
	"context"
	"fmt"
	"time"

	"taste-heaven/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoInquiryRepository struct {
	col    *mongo.Collection
	logger zerolog.Logger
}

// NewMongoInquiryRepository creates a new MongoDB-backed inquiry repository.
func NewMongoInquiryRepository(db *mongo.Database, logger zerolog.Logger) InquiryRepository {
	return &mongoInquiryRepository{
		col:    db.Collection(InquiriesCollection),
		logger: logger.With().Str("repository", "inquiry").Str("store", "mongo").Logger(),
	}
}

func (r *mongoInquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	if inquiry.ID == "" {
		inquiry.ID = newObjectID()
	}
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now().UTC()
	}

	if _, err := r.col.InsertOne(ctx, inquiry); err != nil {
		r.logger.Error().Err(err).Str("inquiry_id", inquiry.ID).Msg("failed to create inquiry")
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	return nil
}
