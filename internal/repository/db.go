package repository

import (
	"context"
	"errors"
	"fmt"

	"taste-heaven/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// Schema is the PostgreSQL layout: one table per entity, order line items
// embedded as a JSONB document.
const Schema = `
	CREATE TABLE IF NOT EXISTS products (
		seq BIGSERIAL UNIQUE,
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
		category TEXT NOT NULL DEFAULT '',
		img TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	ALTER TABLE products ADD COLUMN IF NOT EXISTS category TEXT NOT NULL DEFAULT '';

	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT users_email_key UNIQUE (email)
	);

	CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		user_email TEXT NOT NULL,
		items JSONB NOT NULL CHECK (jsonb_array_length(items) > 0),
		total DOUBLE PRECISION NOT NULL,
		delivery_type TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_orders_user_email_created_at ON orders(user_email, created_at DESC);

	CREATE TABLE IF NOT EXISTS inquiries (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
`

// EnsureSchema creates the tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// translatePgError maps a unique constraint failure to model.ErrDuplicateKey.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", model.ErrDuplicateKey, pgErr.ConstraintName)
	}
	return err
}

// NewPostgresStores builds every repository on pool.
func NewPostgresStores(pool *pgxpool.Pool, logger zerolog.Logger) Stores {
	return Stores{
		Products:  NewProductRepository(pool, logger),
		Users:     NewUserRepository(pool, logger),
		Orders:    NewOrderRepository(pool, logger),
		Inquiries: NewInquiryRepository(pool, logger),
	}
}
