package services

import (
	"context"
	"strconv"
	"strings"

	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/pkg/fingerprint"
	"bloodlink-web/internal/pkg/listing"
	"bloodlink-web/internal/pkg/pagination"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const (
	msgFundingFailed = "Failed to load fundings"
	msgSummaryFailed = "Failed to load funding totals"
	msgConfirmFailed = "We could not confirm your payment yet. It will appear once processed."
	msgThanks        = "Thank you for your donation!"
)

// FundingService builds the funding pages and runs the checkout flow
type FundingService struct {
	source     FundingSource
	dispatcher *Dispatcher
	validate   *validator.Validate
	logger     zerolog.Logger
}

// NewFundingService creates a new funding service
func NewFundingService(source FundingSource, dispatcher *Dispatcher, validate *validator.Validate, logger zerolog.Logger) *FundingService {
	return &FundingService{
		source:     source,
		dispatcher: dispatcher,
		validate:   validate,
		logger:     logger.With().Str("service", "funding").Logger(),
	}
}

// Overview fetches the funding list and totals
func (s *FundingService) Overview(ctx context.Context, params *pagination.Params) FundingPage {
	toasts := &listing.Toasts{}

	f := listing.NewFetcher[domain.Funding](true, toasts, msgFundingFailed)
	view := f.Load(ctx, s.source.Fundings)
	if view.Failed() {
		s.logger.Warn().Err(view.Err).Msg("fundings unavailable")
	}
	for i := range view.Items {
		view.Items[i] = view.Items[i].Public()
	}

	page := FundingPage{View: view, Summary: s.Summary(ctx, toasts)}
	if params != nil {
		page.View.Items, page.Meta = pagination.Slice(view.Items, params)
	}
	page.Toasts = toasts.List()
	return page
}

// Summary fetches the funding totals. A failure yields nil and one toast.
func (s *FundingService) Summary(ctx context.Context, notifier listing.Notifier) *domain.FundingSummary {
	sum, err := s.source.FundingSummary(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		s.logger.Warn().Err(err).Msg("funding summary unavailable")
		if notifier != nil {
			notifier.Notify(listing.Toast{Level: listing.LevelError, Message: msgSummaryFailed})
		}
		return nil
	}
	return sum
}

// Checkout validates the donation and opens a payment session for the signed-in donor
func (s *FundingService) Checkout(ctx context.Context, donor domain.Identity, amount float64) (*domain.CheckoutSession, error) {
	req := domain.CheckoutRequest{
		DonateAmount: amount,
		DonorEmail:   strings.TrimSpace(donor.Email),
	}
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	key := fingerprint.Of("checkout", req.DonorEmail, strconv.FormatFloat(req.DonateAmount, 'f', 2, 64))

	var session *domain.CheckoutSession
	err := s.dispatcher.Do(ctx, key, func(ctx context.Context) error {
		var err error
		session, err = s.source.CreateCheckout(ctx, req)
		return err
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("donor", req.DonorEmail).Msg("checkout not started")
		return nil, err
	}

	s.logger.Info().Str("donor", req.DonorEmail).Float64("amount", req.DonateAmount).Msg("checkout started")
	return session, nil
}

// ConfirmPayment reports the payment session to the donation API. The
// success panel is always shown; a failed confirmation only adds a warning.
func (s *FundingService) ConfirmPayment(ctx context.Context, sessionID string) []listing.Toast {
	toasts := &listing.Toasts{}
	toasts.Notify(listing.Toast{Level: listing.LevelSuccess, Message: msgThanks})

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return toasts.List()
	}
	if err := s.source.ConfirmPayment(ctx, sessionID); err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("payment confirmation failed")
		toasts.Notify(listing.Toast{Level: listing.LevelWarning, Message: msgConfirmFailed})
	}
	return toasts.List()
}
