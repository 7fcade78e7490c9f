package catalog

import (
	"context"
	"fmt"

	"taste-heaven/internal/repository"

	"github.com/rs/zerolog"
)

// Seeder fills an empty catalog from a seed file.
type Seeder struct {
	repo   repository.ProductRepository
	loader Loader
	logger zerolog.Logger
}

// NewSeeder creates a new catalog seeder.
func NewSeeder(repo repository.ProductRepository, loader Loader, logger zerolog.Logger) *Seeder {
	return &Seeder{
		repo:   repo,
		loader: loader,
		logger: logger.With().Str("component", "catalog-seeder").Logger(),
	}
}

// Seed inserts the products in path when the catalog is empty and returns how
// many were inserted. A non-empty catalog is left untouched.
func (s *Seeder) Seed(ctx context.Context, path string) (int, error) {
	if path == "" {
		return 0, nil
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		s.logger.Debug().Int64("existing", count).Msg("catalog already populated, skipping seed")
		return 0, nil
	}

	products, err := s.loader.Load(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("failed to load catalog seed: %w", err)
	}
	if len(products) == 0 {
		s.logger.Warn().Str("path", path).Msg("catalog seed file is empty")
		return 0, nil
	}

	if err := s.repo.InsertMany(ctx, products); err != nil {
		return 0, fmt.Errorf("failed to insert catalog seed: %w", err)
	}

	s.logger.Info().Int("products", len(products)).Str("path", path).Msg("catalog seeded")

	return len(products), nil
}
