package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taste-heaven/internal/metrics"
	"taste-heaven/internal/model"
	"taste-heaven/internal/repository"

	"github.com/rs/zerolog"
)

// inquiryService implements InquiryService.
type inquiryService struct {
	inquiryRepo repository.InquiryRepository
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewInquiryService creates a new inquiry service. m may be nil.
func NewInquiryService(inquiryRepo repository.InquiryRepository, m *metrics.Metrics, logger zerolog.Logger) InquiryService {
	return &inquiryService{
		inquiryRepo: inquiryRepo,
		metrics:     m,
		logger:      logger.With().Str("service", "inquiry").Logger(),
	}
}

func (s *inquiryService) SubmitInquiry(ctx context.Context, req *model.InquiryRequest) error {
	if req == nil {
		return model.ErrMissingInquiry
	}

	inquiry := &model.Inquiry{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now().UTC(),
	}
	if inquiry.Name == "" || inquiry.Email == "" || inquiry.Message == "" {
		return model.ErrMissingInquiry
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		s.logger.Error().Err(err).Str("email", inquiry.Email).Msg("failed to store inquiry")
		return fmt.Errorf("failed to store inquiry: %w", err)
	}

	s.metrics.InquiryReceived()
	s.logger.Info().Str("inquiry_id", inquiry.ID).Msg("inquiry received")

	return nil
}
