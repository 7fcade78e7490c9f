// Package integration runs the API end to end against real stores in containers.
package integration

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"taste-heaven/internal/auth"
	"taste-heaven/internal/cache"
	"taste-heaven/internal/handler"
	"taste-heaven/internal/metrics"
	"taste-heaven/internal/model"
	"taste-heaven/internal/repository"
	"taste-heaven/internal/router"
	"taste-heaven/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestAPIKey guards the test servers' /api routes.
const TestAPIKey = "test-api-key"

// SetupMongo starts a MongoDB container and returns the stores on a fresh database.
func SetupMongo(t *testing.T) repository.Stores {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start mongo container: %v", err)
	}

	endpoint, err := container.Endpoint(ctx, "mongodb")
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(endpoint))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Disconnect(ctx)
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	db := client.Database("restaurant")
	require.NoError(t, repository.EnsureMongoIndexes(ctx, db))

	return repository.NewMongoStores(db, zerolog.Nop())
}

// SetupPostgres starts a PostgreSQL container and returns the stores with the schema applied.
func SetupPostgres(t *testing.T) repository.Stores {
	t.Helper()
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("restaurant"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))
	require.NoError(t, repository.EnsureSchema(ctx, pool))

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return repository.NewPostgresStores(pool, zerolog.Nop())
}

// SetupRedis starts a Redis container and returns a connected client.
func SetupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}

	addr, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := cache.Dial(ctx, addr)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return client
}

// SeedMenu inserts a small menu.
func SeedMenu(t *testing.T, repo repository.ProductRepository) {
	t.Helper()

	require.NoError(t, repo.InsertMany(context.Background(), []model.Product{
		{Name: "Paneer Tikka", Price: 180, Img: "Paneertikka.jpg"},
		{Name: "Dal Tadka", Price: 160, Img: "Daltadka.jpg"},
		{Name: "Butter Naan", Price: 40, Img: "Butternaan.jpg"},
	}))
}

// NewTestServer wires the full HTTP stack over stores, the way cmd/api does.
func NewTestServer(t *testing.T, stores repository.Stores, m *metrics.Metrics) *httptest.Server {
	t.Helper()
	logger := zerolog.Nop()

	authService := service.NewAuthService(stores.Users, auth.NewBcryptHasher(auth.DefaultCost), m, logger)
	productService := service.NewProductService(stores.Products, logger)
	orderService := service.NewOrderService(stores.Orders, service.OrderOptions{}, m, logger)
	inquiryService := service.NewInquiryService(stores.Inquiries, m, logger)

	h := router.New(router.Handlers{
		Auth:    handler.NewAuthHandler(authService, logger),
		Product: handler.NewProductHandler(productService, logger),
		Order:   handler.NewOrderHandler(orderService, logger),
		Contact: handler.NewContactHandler(inquiryService, logger),
	}, router.Options{
		APIKey:      TestAPIKey,
		ServiceName: "taste-heaven-api-test",
		Metrics:     m,
	}, logger)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}
