package checkout

import (
	"fmt"

	"taste-heaven/internal/localstore"
	"taste-heaven/internal/model"
)

// Session keeps the logged-in profile under localstore.UserKey.
type Session struct {
	store *localstore.Store
}

// NewSession creates a session backed by store.
func NewSession(store *localstore.Store) *Session {
	return &Session{store: store}
}

// Current returns the logged-in user, or nil when nobody is logged in.
// A profile that no longer decodes counts as logged out.
func (s *Session) Current() (*model.UserProfile, error) {
	var user model.UserProfile
	found, err := s.store.Get(localstore.UserKey, &user)
	if err != nil {
		if found {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !found || user.Email == "" {
		return nil, nil
	}
	return &user, nil
}

// SignIn stores user as the current session.
func (s *Session) SignIn(user model.UserProfile) error {
	if err := s.store.Set(localstore.UserKey, user); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// SignOut forgets the current user.
func (s *Session) SignOut() error {
	if err := s.store.Remove(localstore.UserKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
