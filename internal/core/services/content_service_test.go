package services

import (
	"context"
	"testing"
	"time"

	"bloodlink-web/internal/adapters/persistence/models"
	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/pkg/listing"
	"bloodlink-web/internal/pkg/pagination"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededContent() *fakeContent {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return &fakeContent{
		posts: []*models.BlogPost{
			{Slug: "donation-tips", Title: "Donation Tips", Excerpt: "before you give", Body: "long", Category: "tips", PublishedAt: day},
			{Slug: "why", Title: "Why donate", Excerpt: "Read our donation tips first", Category: "awareness", PublishedAt: day},
			{Slug: "groups", Title: "Blood groups", Excerpt: "A+ and O-", Category: "awareness", PublishedAt: day},
		},
		faqs: []*models.FAQ{
			{Question: "How often can I donate?", Answer: "Every three months.", Category: "donation"},
			{Question: "Is payment safe?", Answer: "Handled by our processor.", Category: "funding"},
		},
	}
}

func TestBlogFreeTextMatchesTitleAndExcerpt(t *testing.T) {
	svc := NewContentService(seededContent(), zerolog.Nop())

	page := svc.Blog(context.Background(), domain.ContentFilter{Search: "TIPS"}, nil)

	assert.Equal(t, listing.PhasePopulated, page.View.Phase)
	require.Len(t, page.View.Items, 2)
	assert.Equal(t, "donation-tips", page.View.Items[0].Slug)
	assert.Equal(t, "why", page.View.Items[1].Slug)
	assert.Empty(t, page.View.Items[0].Body, "list omits bodies")
	assert.Equal(t, []string{"awareness", "tips"}, page.Categories)
}

func TestBlogCategoryAndSearch(t *testing.T) {
	svc := NewContentService(seededContent(), zerolog.Nop())

	page := svc.Blog(context.Background(), domain.ContentFilter{Category: "Awareness", Search: "blood"}, nil)
	require.Len(t, page.View.Items, 1)
	assert.Equal(t, "groups", page.View.Items[0].Slug)

	none := svc.Blog(context.Background(), domain.ContentFilter{Category: "tips", Search: "groups"}, nil)
	assert.Equal(t, listing.PhaseEmpty, none.View.Phase)
	assert.Empty(t, none.Toasts)
}

func TestBlogStoreFailure(t *testing.T) {
	svc := NewContentService(&fakeContent{err: errBoom}, zerolog.Nop())

	page := svc.Blog(context.Background(), domain.ContentFilter{}, pagination.NewParams(1, 12))

	assert.True(t, page.View.Failed())
	assert.Len(t, page.Toasts, 1)
	assert.Empty(t, page.Categories)
}

func TestLatestPosts(t *testing.T) {
	svc := NewContentService(seededContent(), zerolog.Nop())
	assert.Len(t, svc.LatestPosts(context.Background(), 2), 2)
}

func TestPostBySlug(t *testing.T) {
	svc := NewContentService(seededContent(), zerolog.Nop())

	post, err := svc.Post(context.Background(), "donation-tips")
	require.NoError(t, err)
	assert.Equal(t, "long", post.Body)

	_, err = svc.Post(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestHelpFilters(t *testing.T) {
	svc := NewContentService(seededContent(), zerolog.Nop())

	page := svc.Help(context.Background(), domain.ContentFilter{Search: "processor"})
	require.Len(t, page.View.Items, 1)
	assert.Equal(t, "funding", page.View.Items[0].Category)

	all := svc.Help(context.Background(), domain.ContentFilter{Category: "all"})
	assert.Len(t, all.View.Items, 2)
	assert.Equal(t, []string{"donation", "funding"}, all.Categories)
}
