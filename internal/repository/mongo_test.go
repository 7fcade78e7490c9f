package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// setupMongo starts a MongoDB container and returns a database with indexes applied.
func setupMongo(t *testing.T) *mongo.Database {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping mongodb container test")
	}

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	endpoint, err := container.Endpoint(ctx, "mongodb")
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(endpoint))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Disconnect(ctx)
		_ = container.Terminate(ctx)
	})

	db := client.Database("restaurant_test")
	require.NoError(t, EnsureMongoIndexes(ctx, db))

	return db
}

func TestMongoRepositories(t *testing.T) {
	db := setupMongo(t)

	logger := zerolog.Nop()
	ctx := context.Background()

	drop := func(t *testing.T, name string) {
		_, err := db.Collection(name).DeleteMany(ctx, bson.D{})
		require.NoError(t, err)
	}

	t.Run("products", func(t *testing.T) {
		drop(t, ProductsCollection)
		runProductRepositoryContract(t, NewMongoProductRepository(db, logger))
	})

	t.Run("users", func(t *testing.T) {
		drop(t, UsersCollection)
		runUserRepositoryContract(t, NewMongoUserRepository(db, logger))
	})

	t.Run("orders", func(t *testing.T) {
		drop(t, OrdersCollection)
		runOrderRepositoryContract(t, NewMongoOrderRepository(db, logger))
	})

	t.Run("inquiries", func(t *testing.T) {
		drop(t, InquiriesCollection)
		runInquiryRepositoryContract(t, NewMongoInquiryRepository(db, logger))

		count, err := db.Collection(InquiriesCollection).CountDocuments(ctx, bson.D{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("password hash is stored but not under the public field", func(t *testing.T) {
		var raw bson.M
		err := db.Collection(UsersCollection).FindOne(ctx, bson.D{}).Decode(&raw)
		require.NoError(t, err)
		assert.Contains(t, raw, "password")
	})
}

func TestEnsureMongoIndexes_Idempotent(t *testing.T) {
	db := setupMongo(t)
	assert.NoError(t, EnsureMongoIndexes(context.Background(), db))
}
