package collaborator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bloodlink-web/internal/core/domain"

	"github.com/rs/zerolog"
)

// ErrMissingBaseURL indicates that the client was configured without an endpoint.
var ErrMissingBaseURL = errors.New("collaborator: base url is required")

const maxErrorBody = 512

// Options configures the blood-donation API client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client performs HTTP calls against the blood-donation REST API.
// Every failure it returns wraps domain.ErrNetworkFailure.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient constructs a client with defaults for missing dependencies.
func NewClient(opts Options) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if raw == "" {
		return nil, ErrMissingBaseURL
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("collaborator: invalid base url: %w", err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		logger:     opts.Logger.With().Str("component", "collaborator").Logger(),
	}, nil
}

// PendingRequests lists every donation request still awaiting a donor.
func (c *Client) PendingRequests(ctx context.Context) ([]domain.DonationRequest, error) {
	var out []domain.DonationRequest
	if err := c.do(ctx, http.MethodGet, "/pending-donation-requests", nil, nil, &out); err != nil {
		return nil, err
	}
	return normalizeRequests(out), nil
}

// SearchRequests runs the server-side search. All three keys are always sent,
// empty when unconstrained.
func (c *Client) SearchRequests(ctx context.Context, filter domain.RequestFilter) ([]domain.DonationRequest, error) {
	q := searchQuery(filter)
	var out []domain.DonationRequest
	if err := c.do(ctx, http.MethodGet, "/search-requests", q, nil, &out); err != nil {
		return nil, err
	}
	return normalizeRequests(out), nil
}

// RequestByID loads one donation request.
func (c *Client) RequestByID(ctx context.Context, id string) (*domain.DonationRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	var out domain.DonationRequest
	if err := c.do(ctx, http.MethodGet, "/donation-requests/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.ID) == "" {
		return nil, domain.ErrRequestNotFound
	}
	req := out.Normalize()
	return &req, nil
}

// Fundings lists completed monetary donations.
func (c *Client) Fundings(ctx context.Context) ([]domain.Funding, error) {
	var out []domain.Funding
	if err := c.do(ctx, http.MethodGet, "/all-funding", nil, nil, &out); err != nil {
		return nil, err
	}
	fundings := make([]domain.Funding, 0, len(out))
	for _, f := range out {
		fundings = append(fundings, f.Normalize())
	}
	return fundings, nil
}

// FundingSummary loads the funding totals.
func (c *Client) FundingSummary(ctx context.Context) (*domain.FundingSummary, error) {
	var out domain.FundingSummary
	if err := c.do(ctx, http.MethodGet, "/total-funding", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCheckout opens a payment session and returns its redirect target.
func (c *Client) CreateCheckout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	var out domain.CheckoutSession
	if err := c.do(ctx, http.MethodPost, "/create-payment-checkout", nil, req, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.URL) == "" {
		return nil, fmt.Errorf("%w: create-payment-checkout returned no url", domain.ErrNetworkFailure)
	}
	return &out, nil
}

// ConfirmPayment reports a completed payment session. The response body is ignored.
func (c *Client) ConfirmPayment(ctx context.Context, sessionID string) error {
	q := url.Values{}
	q.Set("session_id", sessionID)
	return c.do(ctx, http.MethodPost, "/success-payment", q, nil, nil)
}

// SearchURL renders the request URL SearchRequests would issue.
func (c *Client) SearchURL(filter domain.RequestFilter) string {
	return c.endpoint("/search-requests", searchQuery(filter))
}

func searchQuery(filter domain.RequestFilter) url.Values {
	return url.Values{
		"bloodGroup": {strings.TrimSpace(filter.BloodGroup)},
		"district":   {strings.TrimSpace(filter.District)},
		"upazila":    {strings.TrimSpace(filter.Upazila)},
	}
}

func normalizeRequests(in []domain.DonationRequest) []domain.DonationRequest {
	out := make([]domain.DonationRequest, 0, len(in))
	for _, r := range in {
		out = append(out, r.Normalize())
	}
	return out
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = encodeOrdered(query)
	}
	return u.String()
}

// encodeOrdered keeps the search keys in bloodGroup, district, upazila order
// and falls back to sorted encoding for anything else.
func encodeOrdered(q url.Values) string {
	order := []string{"bloodGroup", "district", "upazila"}
	var parts []string
	seen := map[string]bool{}
	for _, k := range order {
		if vs, ok := q[k]; ok {
			seen[k] = true
			for _, v := range vs {
				parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(v))
			}
		}
	}
	rest := url.Values{}
	for k, vs := range q {
		if !seen[k] {
			rest[k] = vs
		}
	}
	if enc := rest.Encode(); enc != "" {
		parts = append(parts, enc)
	}
	return strings.Join(parts, "&")
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.endpoint(path, query)
	name := strings.TrimPrefix(path, "/")

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %s: encode request: %v", domain.ErrNetworkFailure, name, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrNetworkFailure, name, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == nil {
			c.logger.Error().Err(err).Str("method", method).Str("endpoint", name).Msg("collaborator request failed")
		}
		return fmt.Errorf("%w: %s: %w", domain.ErrNetworkFailure, name, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", name).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("collaborator response")

	if resp.StatusCode == http.StatusNotFound && method == http.MethodGet && strings.HasPrefix(path, "/donation-requests/") {
		return domain.ErrRequestNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn().
			Str("method", method).
			Str("endpoint", name).
			Int("status", resp.StatusCode).
			Str("body", strings.TrimSpace(string(snippet))).
			Msg("collaborator returned non-success status")
		return fmt.Errorf("%w: %s: status %d", domain.ErrNetworkFailure, name, resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error().Err(err).Str("endpoint", name).Msg("collaborator response undecodable")
		return fmt.Errorf("%w: %s: decode response: %v", domain.ErrNetworkFailure, name, err)
	}
	return nil
}
