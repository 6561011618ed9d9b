package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const purgeTimeout = 2 * time.Minute

// CronService runs background jobs for the content store
type CronService struct {
	cron          *cron.Cron
	contacts      *ContactService
	retentionDays int
	logger        zerolog.Logger
}

// NewCronService registers the contact retention purge on schedule (standard 5-field cron expression)
func NewCronService(contacts *ContactService, schedule string, retentionDays int, logger zerolog.Logger) (*CronService, error) {
	s := &CronService{
		cron:          cron.New(cron.WithLocation(time.UTC)),
		contacts:      contacts,
		retentionDays: retentionDays,
		logger:        logger.With().Str("service", "cron").Logger(),
	}
	if _, err := s.cron.AddFunc(schedule, s.PurgeContacts); err != nil {
		return nil, fmt.Errorf("invalid purge schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start launches the scheduler
func (s *CronService) Start() {
	s.cron.Start()
	s.logger.Info().Int("retention_days", s.retentionDays).Msg("cron service started")
}

// Stop waits for running jobs and stops the scheduler
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info().Msg("cron service stopped")
}

// PurgeContacts deletes contact messages past retention
func (s *CronService) PurgeContacts() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	n, err := s.contacts.Purge(ctx, s.retentionDays)
	if err != nil {
		s.logger.Error().Err(err).Msg("contact purge failed")
		return
	}
	s.logger.Info().Int64("deleted", n).Msg("contact purge completed")
}
