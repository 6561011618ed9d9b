package services

import (
	"context"

	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/pkg/listing"
	"bloodlink-web/internal/pkg/pagination"
)

// DonationSource reads donation requests from the collaborator
type DonationSource interface {
	PendingRequests(ctx context.Context) ([]domain.DonationRequest, error)
	SearchRequests(ctx context.Context, filter domain.RequestFilter) ([]domain.DonationRequest, error)
	RequestByID(ctx context.Context, id string) (*domain.DonationRequest, error)
}

// FundingSource reads fundings and drives the payment flow at the collaborator
type FundingSource interface {
	Fundings(ctx context.Context) ([]domain.Funding, error)
	FundingSummary(ctx context.Context) (*domain.FundingSummary, error)
	CreateCheckout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error)
	ConfirmPayment(ctx context.Context, sessionID string) error
}

// ContactNotifier delivers contact messages to the site inbox
type ContactNotifier interface {
	Enabled() bool
	NotifyContact(ctx context.Context, msg domain.ContactMessage) error
}

// RequestPage is the view model of the pending requests and search pages
type RequestPage struct {
	View   listing.View[domain.DonationRequest] `json:"view"`
	Filter domain.RequestFilter                 `json:"filter"`
	Meta   *pagination.Meta                     `json:"meta,omitempty"`
	Toasts []listing.Toast                      `json:"toasts"`
}

// FundingPage is the view model of the funding page
type FundingPage struct {
	View    listing.View[domain.Funding] `json:"view"`
	Summary *domain.FundingSummary       `json:"summary"`
	Meta    *pagination.Meta             `json:"meta,omitempty"`
	Toasts  []listing.Toast              `json:"toasts"`
}

// BlogPage is the view model of the blog list
type BlogPage struct {
	View       listing.View[domain.BlogPost] `json:"view"`
	Filter     domain.ContentFilter          `json:"filter"`
	Categories []string                      `json:"categories"`
	Meta       *pagination.Meta              `json:"meta,omitempty"`
	Toasts     []listing.Toast               `json:"toasts"`
}

// HelpPage is the view model of the help page
type HelpPage struct {
	View       listing.View[domain.FAQ] `json:"view"`
	Filter     domain.ContentFilter     `json:"filter"`
	Categories []string                 `json:"categories"`
	Toasts     []listing.Toast          `json:"toasts"`
}
