package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taste-heaven/internal/auth"
	"taste-heaven/internal/metrics"
	"taste-heaven/internal/model"
	"taste-heaven/internal/repository"

	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service. m may be nil.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher auth.PasswordHasher,
	m *metrics.Metrics,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		metrics:  m,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// Signup creates a new account. The store's unique email index is the final
// arbiter; the lookup beforehand only saves a bcrypt round on obvious repeats.
func (s *authService) Signup(ctx context.Context, req *model.SignupRequest) error {
	if req == nil {
		return model.ErrMissingFields
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return model.ErrMissingFields
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to look up user")
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		s.logger.Debug().Str("email", email).Msg("email already registered")
		return model.ErrEmailRegistered
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return fmt.Errorf("failed to create user: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrDuplicateKey) {
			s.logger.Debug().Str("email", email).Msg("concurrent signup lost the unique index race")
			return model.ErrEmailRegistered
		}
		s.logger.Error().Err(err).Str("email", email).Msg("failed to create user")
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.SignedUp()
	s.logger.Info().Str("user_id", user.ID).Msg("account created")

	return nil
}

// Login checks credentials. Unknown email and wrong password are indistinguishable.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.UserProfile, error) {
	if req == nil {
		return nil, model.ErrMissingFields
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, model.ErrMissingFields
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to look up user")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil || !s.hasher.Verify(req.Password, user.PasswordHash) {
		s.metrics.LoginAttempt(false)
		s.logger.Debug().Str("email", email).Msg("invalid credentials")
		return nil, model.ErrInvalidCredentials
	}

	s.metrics.LoginAttempt(true)

	return &model.UserProfile{Name: user.Name, Email: user.Email}, nil
}
