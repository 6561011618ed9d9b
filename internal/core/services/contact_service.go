package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bloodlink-web/internal/adapters/persistence/models"
	"bloodlink-web/internal/adapters/persistence/repositories"
	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/pkg/fingerprint"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ContactService stores contact messages and forwards them to the inbox
type ContactService struct {
	repo       repositories.ContactRepository
	notifier   ContactNotifier
	dispatcher *Dispatcher
	validate   *validator.Validate
	logger     zerolog.Logger
	now        func() time.Time
}

// NewContactService creates a new contact service
func NewContactService(
	repo repositories.ContactRepository,
	notifier ContactNotifier,
	dispatcher *Dispatcher,
	validate *validator.Validate,
	logger zerolog.Logger,
) *ContactService {
	return &ContactService{
		repo:       repo,
		notifier:   notifier,
		dispatcher: dispatcher,
		validate:   validate,
		logger:     logger.With().Str("service", "contact").Logger(),
		now:        time.Now,
	}
}

// Submit validates and stores a message, then mails it when mail is configured.
// A mail failure after the message is stored does not fail the submission.
func (s *ContactService) Submit(ctx context.Context, msg domain.ContactMessage) (*domain.ContactMessage, error) {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	if err := validateStruct(s.validate, msg); err != nil {
		return nil, err
	}

	key := fingerprint.Of("contact", msg.Email, msg.Subject, msg.Message)
	err := s.dispatcher.Do(ctx, key, func(ctx context.Context) error {
		msg.ID = uuid.NewString()
		msg.CreatedAt = s.now().UTC()
		if err := s.repo.Create(ctx, models.NewContactMessage(msg)); err != nil {
			return fmt.Errorf("store contact message: %w", err)
		}
		s.notify(ctx, msg)
		return nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("email", msg.Email).Msg("contact message rejected")
		return nil, err
	}

	s.logger.Info().Str("contact_id", msg.ID).Msg("contact message stored")
	return &msg, nil
}

func (s *ContactService) notify(ctx context.Context, msg domain.ContactMessage) {
	if s.notifier == nil || !s.notifier.Enabled() {
		return
	}
	if err := s.notifier.NotifyContact(ctx, msg); err != nil {
		s.logger.Error().Err(err).Str("contact_id", msg.ID).Msg("contact notification failed")
		return
	}
	if err := s.repo.MarkNotified(ctx, msg.ID); err != nil {
		s.logger.Error().Err(err).Str("contact_id", msg.ID).Msg("failed to mark contact as notified")
	}
}

// Purge deletes messages older than retentionDays. Zero keeps everything.
func (s *ContactService) Purge(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := s.now().UTC().AddDate(0, 0, -retentionDays)
	n, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge contact messages: %w", err)
	}
	return n, nil
}
