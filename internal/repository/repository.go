package repository

import (
	"context"

	"taste-heaven/internal/model"
)

// ProductRepository defines the interface for catalog data access operations.
type ProductRepository interface {
	// GetAll retrieves every product in insertion order.
	GetAll(ctx context.Context) ([]model.Product, error)

	// Count returns the number of products in the catalog.
	Count(ctx context.Context) (int64, error)

	// InsertMany appends products to the catalog, preserving slice order.
	// IDs and creation timestamps are assigned when empty.
	InsertMany(ctx context.Context, products []model.Product) error
}

// UserRepository defines the interface for identity data access operations.
type UserRepository interface {
	// GetByEmail retrieves a user by email. Returns nil, nil when no user matches.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// Create inserts a new user. Returns model.ErrDuplicateKey when the
	// email is already taken; uniqueness is enforced by the store.
	Create(ctx context.Context, user *model.User) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Create inserts a new order. The ID is assigned when empty.
	Create(ctx context.Context, order *model.Order) error

	// ListByEmail retrieves all orders placed with the given email, newest first.
	ListByEmail(ctx context.Context, email string) ([]model.Order, error)
}

// InquiryRepository defines the interface for contact inquiry persistence.
type InquiryRepository interface {
	// Create appends an inquiry.
	Create(ctx context.Context, inquiry *model.Inquiry) error
}

// Stores bundles one repository per collection.
type Stores struct {
	Products  ProductRepository
	Users     UserRepository
	Orders    OrderRepository
	Inquiries InquiryRepository
}
