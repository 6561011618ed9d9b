package views

import (
	"bytes"
	"errors"
	"net/url"
	"testing"

	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/core/services"
	"bloodlink-web/internal/pkg/listing"
	"bloodlink-web/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func view[T any](phase listing.Phase, items ...T) listing.View[T] {
	if items == nil {
		items = []T{}
	}
	return listing.View[T]{Phase: phase, Items: items, Count: len(items)}
}

func TestListStatePhases(t *testing.T) {
	card := func(s string) g.Node { return g.Text("item:" + s) }

	idle := render(t, ListState(view[string](listing.PhaseIdle), "Press search", card))
	assert.Contains(t, idle, `data-state="idle"`)
	assert.Contains(t, idle, "Press search")
	assert.NotContains(t, idle, NoResults)

	loading := render(t, ListState(view[string](listing.PhaseLoading), "", card))
	assert.Contains(t, loading, `data-state="loading"`)

	empty := render(t, ListState(view[string](listing.PhaseEmpty), "", card))
	assert.Contains(t, empty, NoResults)

	failed := view[string](listing.PhaseEmpty)
	failed.Err = errors.New("down")
	assert.Contains(t, render(t, ListState(failed, "", card)), NoResults)

	populated := render(t, ListState(view(listing.PhasePopulated, "a", "b"), "", card))
	assert.Contains(t, populated, "item:a")
	assert.Contains(t, populated, "item:b")
	assert.NotContains(t, populated, NoResults)
}

func TestPageChrome(t *testing.T) {
	meta := PageMeta{
		Title:    "Blog",
		Path:     "/blog",
		Theme:    domain.ThemeDark,
		LoginURL: "/login",
		Toasts:   []listing.Toast{{Level: listing.LevelError, Message: "Failed to load blog posts"}},
	}
	out := render(t, AboutPage(meta))

	assert.Contains(t, out, `data-theme="dark"`)
	assert.Contains(t, out, "<title>Blog | BloodLink</title>")
	assert.Contains(t, out, "toast-error")
	assert.Contains(t, out, "Failed to load blog posts")
	assert.Contains(t, out, `href="/login"`)
	assert.Contains(t, out, "Switch to light mode")

	meta.Identity = &domain.Identity{Email: "d@x.io", Name: "Donor"}
	meta.Toasts = nil
	out = render(t, AboutPage(meta))
	assert.Contains(t, out, "Donor")
	assert.NotContains(t, out, `class="toasts"`)
}

func TestThemeToggleReturnsToFullURL(t *testing.T) {
	meta := PageMeta{Title: "Search", Path: "/search", URL: "/search?district=Dhaka&bloodGroup=A%2B"}
	out := render(t, AboutPage(meta))
	assert.Contains(t, out, `name="next" value="/search?district=Dhaka&amp;bloodGroup=A%2B"`)

	meta.URL = ""
	assert.Contains(t, render(t, AboutPage(meta)), `name="next" value="/search"`)
}

func TestIconUnknownRendersNothing(t *testing.T) {
	assert.Nil(t, Icon(domain.Icon("rocket"), "icon"))
	assert.Contains(t, render(t, Icon(domain.IconDrop, "icon")), "<svg")
}

func TestRequestsPageRendersCards(t *testing.T) {
	page := services.RequestPage{
		View: view(listing.PhasePopulated, domain.DonationRequest{
			ID: "r1", BloodGroup: domain.BloodGroupAPos, RecipientName: "Rahim", Hospital: "DMCH",
			RecipientDistrict: "Dhaka", RecipientUpazila: "Savar", Status: domain.StatusPending,
		}),
		Filter: domain.RequestFilter{BloodGroup: "A+"},
	}
	out := render(t, RequestsPage(PageMeta{Path: "/donation-requests"}, page, LocationOptions{Districts: []string{"Dhaka"}}, url.Values{}))

	assert.Contains(t, out, "Rahim")
	assert.Contains(t, out, "Savar, Dhaka")
	assert.Contains(t, out, `href="/donation-requests/r1"`)
	assert.Contains(t, out, `<option value="A+" selected>A+</option>`)
}

func TestPagerKeepsQuery(t *testing.T) {
	meta := pagination.GetMeta(pagination.NewParams(2, 2), 5)
	out := render(t, Pager("/blog", url.Values{"category": {"tips"}}, meta))

	assert.Contains(t, out, "Page 2 of 3")
	assert.Contains(t, out, `href="/blog?category=tips&amp;page=1"`)
	assert.Contains(t, out, `href="/blog?category=tips&amp;page=3"`)

	assert.Nil(t, Pager("/blog", nil, pagination.GetMeta(pagination.NewParams(1, 12), 3)))
}

func TestContactPageKeepsValuesAndErrors(t *testing.T) {
	out := render(t, ContactPage(PageMeta{}, ContactForm{
		Values: domain.ContactMessage{Name: "Rahim", Message: "short"},
		Errors: map[string]string{"message": "message must be at least 10 characters"},
	}))
	assert.Contains(t, out, `value="Rahim"`)
	assert.Contains(t, out, "message must be at least 10 characters")

	sent := render(t, ContactPage(PageMeta{}, ContactForm{Sent: true}))
	assert.Contains(t, sent, "Message Sent")
}

func TestFundingPageDonateFormNeedsIdentity(t *testing.T) {
	page := services.FundingPage{
		View:    view(listing.PhasePopulated, domain.Funding{DonorName: "Anonymous", Amount: 12.5}),
		Summary: &domain.FundingSummary{TotalAmount: 12.5, TotalDonations: 1},
	}
	anon := render(t, FundingPage(PageMeta{LoginURL: "/login"}, page, nil))
	assert.Contains(t, anon, "to make a donation")
	assert.Contains(t, anon, "$12.50")

	signed := render(t, FundingPage(PageMeta{Identity: &domain.Identity{Email: "d@x.io"}}, page, nil))
	assert.Contains(t, signed, `action="/funding/checkout"`)
}
