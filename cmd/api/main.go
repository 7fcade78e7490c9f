package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taste-heaven/internal/auth"
	"taste-heaven/internal/cache"
	"taste-heaven/internal/catalog"
	"taste-heaven/internal/config"
	"taste-heaven/internal/database"
	"taste-heaven/internal/handler"
	"taste-heaven/internal/metrics"
	"taste-heaven/internal/repository"
	"taste-heaven/internal/router"
	"taste-heaven/internal/service"
	"taste-heaven/internal/telemetry"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("store", cfg.Store.Driver).Msg("starting taste-heaven API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stores, closeStores, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStores()

	// accept trace context from callers such as the CLI client
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Tracing, config.ServiceName, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Error().Err(err).Msg("failed to flush traces")
		}
	}()
	logger.Info().Str("exporter", cfg.Tracing.Exporter).Msg("tracing configured")

	m := metrics.New()

	if cfg.Cache.RedisAddr != "" {
		client, err := cache.Dial(ctx, cfg.Cache.RedisAddr)
		if err != nil {
			logger.Warn().Err(err).Msg("product cache unavailable, serving from the store")
		} else {
			defer client.Close()
			stores.Products = repository.NewCachedProductRepository(
				stores.Products, cache.NewRedis(client), cfg.Cache.TTL, logger,
				repository.WithCacheObserver(m.CacheResult),
			)
			logger.Info().Str("addr", cfg.Cache.RedisAddr).Dur("ttl", cfg.Cache.TTL).Msg("product cache enabled")
		}
	}

	if cfg.Catalog.SeedPath != "" {
		seeder := catalog.NewSeeder(stores.Products, newCatalogLoader(ctx, cfg, logger), logger)
		if _, err := seeder.Seed(ctx, cfg.Catalog.SeedPath); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	authService := service.NewAuthService(stores.Users, auth.NewBcryptHasher(auth.DefaultCost), m, logger)
	productService := service.NewProductService(stores.Products, logger)
	orderService := service.NewOrderService(stores.Orders, service.OrderOptions{StrictTotal: cfg.Order.StrictTotal}, m, logger)
	inquiryService := service.NewInquiryService(stores.Inquiries, m, logger)

	mux := router.New(router.Handlers{
		Auth:    handler.NewAuthHandler(authService, logger),
		Product: handler.NewProductHandler(productService, logger),
		Order:   handler.NewOrderHandler(orderService, logger),
		Contact: handler.NewContactHandler(inquiryService, logger),
	}, router.Options{
		APIKey:      cfg.Auth.APIKey,
		ServiceName: config.ServiceName,
		Metrics:     m,
	}, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// openStores connects to the configured store, prepares its indexes or schema
// and returns the repositories with a function releasing the connection.
func openStores(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repository.Stores, func(), error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return repository.Stores{}, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := repository.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return repository.Stores{}, nil, fmt.Errorf("failed to prepare schema: %w", err)
		}
		return repository.NewPostgresStores(pool, logger), pool.Close, nil

	default:
		client, db, err := database.NewMongo(ctx, cfg.Mongo, logger)
		if err != nil {
			return repository.Stores{}, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		closeFn := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
			}
		}
		if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
			closeFn()
			return repository.Stores{}, nil, fmt.Errorf("failed to prepare indexes: %w", err)
		}
		return repository.NewMongoStores(db, logger), closeFn, nil
	}
}

// newCatalogLoader returns the seed loader: S3 with local fallback when S3 is
// enabled, local disk otherwise.
func newCatalogLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) catalog.Loader {
	fileLoader := catalog.NewFileLoader(logger)
	if !cfg.S3.Enabled {
		logger.Info().Msg("using local file system for catalog seed (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger)
}
