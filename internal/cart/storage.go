package cart

import (
	"taste-heaven/internal/localstore"

	"github.com/rs/zerolog"
)

// Storage loads and saves the cart.
type Storage interface {
	Load() (Cart, error)
	Save(Cart) error
}

// LocalStorage keeps the cart under localstore.CartKey.
type LocalStorage struct {
	store  *localstore.Store
	logger zerolog.Logger
}

// NewLocalStorage creates a cart storage on store.
func NewLocalStorage(store *localstore.Store, logger zerolog.Logger) *LocalStorage {
	return &LocalStorage{
		store:  store,
		logger: logger.With().Str("component", "cart-storage").Logger(),
	}
}

// Load returns the saved cart. A value that does not decode loads as an
// empty cart rather than failing.
func (s *LocalStorage) Load() (Cart, error) {
	var c Cart
	found, err := s.store.Get(localstore.CartKey, &c)
	if err != nil {
		if found {
			s.logger.Warn().Err(err).Msg("discarding unreadable cart")
			return Cart{}, nil
		}
		return Cart{}, err
	}
	return c, nil
}

// Save writes the cart.
func (s *LocalStorage) Save(c Cart) error {
	return s.store.Set(localstore.CartKey, c)
}
