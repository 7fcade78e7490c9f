package repository

import (
	"context"
	"fmt"
	"time"

	"taste-heaven/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type inquiryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewInquiryRepository creates a new PostgreSQL-backed inquiry repository.
func NewInquiryRepository(pool *pgxpool.Pool, logger zerolog.Logger) InquiryRepository {
	return &inquiryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "inquiry").Str("store", "postgres").Logger(),
	}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	if inquiry.ID == "" {
		inquiry.ID = uuid.NewString()
	}
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO inquiries (id, name, email, message, created_at) VALUES ($1, $2, $3, $4, $5)`,
		inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Message, inquiry.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("inquiry_id", inquiry.ID).Msg("failed to create inquiry")
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	return nil
}
