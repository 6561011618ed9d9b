package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"bloodlink-web/internal/adapters/persistence/models"
	"bloodlink-web/internal/core/domain"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

var errBoom = errors.New("connection refused")

type fakeDonations struct {
	mu       sync.Mutex
	pending  []domain.DonationRequest
	search   []domain.DonationRequest
	byID     map[string]domain.DonationRequest
	err      error
	searches []domain.RequestFilter
	calls    int
}

func (f *fakeDonations) PendingRequests(context.Context) ([]domain.DonationRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.pending, nil
}

func (f *fakeDonations) SearchRequests(_ context.Context, filter domain.RequestFilter) ([]domain.DonationRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.searches = append(f.searches, filter)
	if f.err != nil {
		return nil, f.err
	}
	return f.search, nil
}

func (f *fakeDonations) RequestByID(_ context.Context, id string) (*domain.DonationRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return &r, nil
}

type fakeFunding struct {
	mu          sync.Mutex
	fundings    []domain.Funding
	summary     *domain.FundingSummary
	listErr     error
	summaryErr  error
	checkoutErr error
	confirmErr  error
	checkouts   []domain.CheckoutRequest
	confirms    []string
	block       chan struct{}
	entered     chan struct{}
}

func (f *fakeFunding) Fundings(context.Context) ([]domain.Funding, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.fundings, nil
}

func (f *fakeFunding) FundingSummary(context.Context) (*domain.FundingSummary, error) {
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	return f.summary, nil
}

func (f *fakeFunding) CreateCheckout(_ context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	f.mu.Lock()
	f.checkouts = append(f.checkouts, req)
	f.mu.Unlock()
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if f.checkoutErr != nil {
		return nil, f.checkoutErr
	}
	return &domain.CheckoutSession{URL: "https://pay.example/session"}, nil
}

func (f *fakeFunding) ConfirmPayment(_ context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirms = append(f.confirms, sessionID)
	return f.confirmErr
}

type fakeContent struct {
	posts []*models.BlogPost
	faqs  []*models.FAQ
	err   error
}

func (f *fakeContent) ListPosts(context.Context) ([]*models.BlogPost, error) {
	return f.posts, f.err
}

func (f *fakeContent) GetPostBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContent) ListFAQs(context.Context) ([]*models.FAQ, error) {
	return f.faqs, f.err
}

func (f *fakeContent) UpsertPost(context.Context, *models.BlogPost) (bool, error) { return false, nil }
func (f *fakeContent) UpsertFAQ(context.Context, *models.FAQ) (bool, error)       { return false, nil }

type fakeContacts struct {
	mu        sync.Mutex
	created   []*models.ContactMessage
	notified  []string
	createErr error
	cutoff    time.Time
	deleted   int64
}

func (f *fakeContacts) Create(_ context.Context, msg *models.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, msg)
	return nil
}

func (f *fakeContacts) MarkNotified(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified = append(f.notified, id)
	return nil
}

func (f *fakeContacts) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return f.deleted, nil
}

type fakeNotifier struct {
	enabled bool
	err     error
	sent    []domain.ContactMessage
}

func (f *fakeNotifier) Enabled() bool { return f.enabled }

func (f *fakeNotifier) NotifyContact(_ context.Context, msg domain.ContactMessage) error {
	f.sent = append(f.sent, msg)
	return f.err
}

type fakeSender struct {
	messages []*gomail.Message
	err      error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.messages = append(f.messages, m...)
	return f.err
}
