package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taste-heaven/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoUserRepository implements the UserRepository interface using MongoDB.
type mongoUserRepository struct {
	col    *mongo.Collection
	logger zerolog.Logger
}

// NewMongoUserRepository creates a new MongoDB-backed user repository.
// EnsureMongoIndexes must have run for the email uniqueness guarantee.
func NewMongoUserRepository(db *mongo.Database, logger zerolog.Logger) UserRepository {
	return &mongoUserRepository{
		col:    db.Collection(UsersCollection),
		logger: logger.With().Str("repository", "user").Str("store", "mongo").Logger(),
	}
}

// GetByEmail retrieves a user by email.
func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &u, nil
}

// Create inserts a new user.
func (r *mongoUserRepository) Create(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = newObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		err = translateMongoError(err)
		if errors.Is(err, model.ErrDuplicateKey) {
			r.logger.Debug().Str("user_id", user.ID).Msg("email already registered")
			return err
		}
		r.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to create user")
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Debug().Str("user_id", user.ID).Msg("user created successfully")

	return nil
}
