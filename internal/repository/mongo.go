package repository

import (
	"context"
	"fmt"

	"taste-heaven/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, one per entity.
const (
	ProductsCollection  = "products"
	UsersCollection     = "users"
	OrdersCollection    = "orders"
	InquiriesCollection = "inquiries"
)

// EnsureMongoIndexes creates the indexes the repositories rely on. The unique
// index on users.email is what makes concurrent signups safe.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}

	_, err = db.Collection(OrdersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userEmail", Value: 1}, {Key: "date", Value: -1}},
		Options: options.Index().SetName("user_email_date"),
	})
	if err != nil {
		return fmt.Errorf("failed to create orders index: %w", err)
	}

	return nil
}

// newObjectID returns a fresh ObjectID in hex form. Hex ids sort in creation order.
func newObjectID() string {
	return primitive.NewObjectID().Hex()
}

// translateMongoError maps a duplicate key write error to model.ErrDuplicateKey.
func translateMongoError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", model.ErrDuplicateKey, err)
	}
	return err
}

// NewMongoStores builds every repository on db.
func NewMongoStores(db *mongo.Database, logger zerolog.Logger) Stores {
	return Stores{
		Products:  NewMongoProductRepository(db, logger),
		Users:     NewMongoUserRepository(db, logger),
		Orders:    NewMongoOrderRepository(db, logger),
		Inquiries: NewMongoInquiryRepository(db, logger),
	}
}
