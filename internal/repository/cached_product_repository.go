package repository

import (
	"context"
	"errors"
	"time"

	"taste-heaven/internal/cache"
	"taste-heaven/internal/model"

	"github.com/rs/zerolog"
)

// ProductsCacheKey is where the full product list is cached.
const ProductsCacheKey = "taste-heaven:products"

// cachedProductRepository is a read-through cache in front of another ProductRepository.
// Cache failures are logged and never fail a request.
type cachedProductRepository struct {
	next   ProductRepository
	cache  cache.Cache
	ttl    time.Duration
	logger zerolog.Logger
	// observe receives "hit", "miss" or "error" for every lookup.
	observe func(result string)
}

// CacheOption configures a cached repository.
type CacheOption func(*cachedProductRepository)

// WithCacheObserver reports the result of every cache lookup to fn.
func WithCacheObserver(fn func(result string)) CacheOption {
	return func(r *cachedProductRepository) {
		if fn != nil {
			r.observe = fn
		}
	}
}

// NewCachedProductRepository wraps next with a read-through product list cache.
func NewCachedProductRepository(next ProductRepository, c cache.Cache, ttl time.Duration, logger zerolog.Logger, opts ...CacheOption) ProductRepository {
	r := &cachedProductRepository{
		next:    next,
		cache:   c,
		ttl:     ttl,
		logger:  logger.With().Str("repository", "product").Str("layer", "cache").Logger(),
		observe: func(string) {},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetAll serves the product list from the cache, filling it from the store on a miss.
func (r *cachedProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.cache.Get(ctx, ProductsCacheKey, &products)
	if err == nil {
		r.observe("hit")
		r.logger.Debug().Int("count", len(products)).Msg("product list served from cache")
		return products, nil
	}
	if errors.Is(err, cache.ErrMiss) {
		r.observe("miss")
	} else {
		r.observe("error")
		r.logger.Warn().Err(err).Msg("product cache read failed")
	}

	products, err = r.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, ProductsCacheKey, products, r.ttl); err != nil {
		r.logger.Warn().Err(err).Msg("product cache write failed")
	}

	return products, nil
}

func (r *cachedProductRepository) Count(ctx context.Context) (int64, error) {
	return r.next.Count(ctx)
}

// InsertMany writes through to the store and drops the cached list.
func (r *cachedProductRepository) InsertMany(ctx context.Context, products []model.Product) error {
	if err := r.next.InsertMany(ctx, products); err != nil {
		return err
	}

	if err := r.cache.Delete(ctx, ProductsCacheKey); err != nil {
		r.logger.Warn().Err(err).Msg("product cache invalidation failed")
	}

	return nil
}
