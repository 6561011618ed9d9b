package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/pkg/listing"
	"bloodlink-web/internal/pkg/pagination"

	"github.com/rs/zerolog"
)

const (
	msgRequestsFailed = "Failed to load donation requests"
	msgSearchFailed   = "Search failed, please try again"
)

// RequestService builds the donation request pages
type RequestService struct {
	source DonationSource
	logger zerolog.Logger
}

// NewRequestService creates a new request service
func NewRequestService(source DonationSource, logger zerolog.Logger) *RequestService {
	return &RequestService{
		source: source,
		logger: logger.With().Str("service", "requests").Logger(),
	}
}

// NormalizeFilter trims the filter and canonicalizes the blood group
func NormalizeFilter(f domain.RequestFilter) domain.RequestFilter {
	f.District = strings.TrimSpace(f.District)
	f.Upazila = strings.TrimSpace(f.Upazila)
	if listing.Unconstrained(f.BloodGroup) {
		f.BloodGroup = ""
	} else {
		g, _ := domain.ParseBloodGroup(f.BloodGroup)
		f.BloodGroup = string(g)
	}
	if listing.Unconstrained(f.District) {
		f.District = ""
	}
	if listing.Unconstrained(f.Upazila) {
		f.Upazila = ""
	}
	return f
}

// RequestPredicates turns the filter into blood group, district and upazila predicates
func RequestPredicates(f domain.RequestFilter) []listing.Predicate[domain.DonationRequest] {
	return []listing.Predicate[domain.DonationRequest]{
		listing.Equals(f.BloodGroup, func(r domain.DonationRequest) string { return string(r.BloodGroup) }),
		listing.Equals(f.District, func(r domain.DonationRequest) string { return r.RecipientDistrict }),
		listing.Equals(f.Upazila, func(r domain.DonationRequest) string { return r.RecipientUpazila }),
	}
}

// Pending fetches all pending requests and filters them locally
func (s *RequestService) Pending(ctx context.Context, filter domain.RequestFilter, params *pagination.Params) RequestPage {
	filter = NormalizeFilter(filter)
	toasts := &listing.Toasts{}

	f := listing.NewFetcher[domain.DonationRequest](true, toasts, msgRequestsFailed)
	f.Filter(RequestPredicates(filter)...)
	view := f.Load(ctx, s.source.PendingRequests)
	if view.Failed() {
		s.logger.Warn().Err(view.Err).Msg("pending requests unavailable")
	}

	return s.page(view, filter, params, toasts)
}

// Search runs the server-side search. Until the form is submitted the page
// stays idle and no call is made.
func (s *RequestService) Search(ctx context.Context, filter domain.RequestFilter, submitted bool, params *pagination.Params) RequestPage {
	filter = NormalizeFilter(filter)
	toasts := &listing.Toasts{}

	f := listing.NewFetcher[domain.DonationRequest](false, toasts, msgSearchFailed)
	if !submitted {
		return RequestPage{View: f.View(), Filter: filter, Toasts: toasts.List()}
	}

	view := f.Load(ctx, func(ctx context.Context) ([]domain.DonationRequest, error) {
		return s.source.SearchRequests(ctx, filter)
	})
	if view.Failed() {
		s.logger.Warn().Err(view.Err).Msg("search unavailable")
	}

	return s.page(view, filter, params, toasts)
}

// Details loads one request for the "view details" action
func (s *RequestService) Details(ctx context.Context, id string) (*domain.DonationRequest, error) {
	req, err := s.source.RequestByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrRequestNotFound) && !errors.Is(err, domain.ErrInvalidInput) {
			s.logger.Warn().Err(err).Str("id", id).Msg("request details unavailable")
		}
		return nil, fmt.Errorf("request %q: %w", id, err)
	}
	return req, nil
}

func (s *RequestService) page(view listing.View[domain.DonationRequest], filter domain.RequestFilter, params *pagination.Params, toasts *listing.Toasts) RequestPage {
	page := RequestPage{View: view, Filter: filter, Toasts: toasts.List()}
	if params != nil {
		page.View.Items, page.Meta = pagination.Slice(view.Items, params)
	}
	return page
}
