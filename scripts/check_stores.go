//go:build ignore

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"taste-heaven/internal/cache"
	"taste-heaven/internal/config"
	"taste-heaven/internal/database"

	"github.com/rs/zerolog"
)

// Pings every backing store the current environment points at:
//
//	go run scripts/check_stores.go
func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger := zerolog.Nop()
	failed := false

	switch cfg.Store.Driver {
	case config.StoreMongo:
		client, db, err := database.NewMongo(ctx, cfg.Mongo, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "MongoDB: %v\n", err)
			failed = true
			break
		}
		defer client.Disconnect(ctx)
		fmt.Printf("MongoDB: connected to database %s\n", db.Name())
	case config.StorePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "PostgreSQL: %v\n", err)
			failed = true
			break
		}
		defer pool.Close()

		var dbName string
		if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
			fmt.Fprintf(os.Stderr, "PostgreSQL: %v\n", err)
			failed = true
			break
		}
		fmt.Printf("PostgreSQL: connected to database %s\n", dbName)
	}

	if cfg.Cache.RedisAddr != "" {
		client, err := cache.Dial(ctx, cfg.Cache.RedisAddr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Redis: %v\n", err)
			failed = true
		} else {
			defer client.Close()
			fmt.Printf("Redis: connected to %s\n", cfg.Cache.RedisAddr)
		}
	}

	if failed {
		os.Exit(1)
	}
}
