package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"bloodlink-web/internal/adapters/persistence/repositories"
	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/pkg/listing"
	"bloodlink-web/internal/pkg/pagination"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	msgBlogFailed = "Failed to load blog posts"
	msgHelpFailed = "Failed to load help topics"
)

// ContentService builds the blog and help pages from the local content store
type ContentService struct {
	repo   repositories.ContentRepository
	logger zerolog.Logger
}

// NewContentService creates a new content service
func NewContentService(repo repositories.ContentRepository, logger zerolog.Logger) *ContentService {
	return &ContentService{
		repo:   repo,
		logger: logger.With().Str("service", "content").Logger(),
	}
}

// BlogPredicates filters posts by category and by free text over title and excerpt
func BlogPredicates(f domain.ContentFilter) []listing.Predicate[domain.BlogPost] {
	return []listing.Predicate[domain.BlogPost]{
		listing.Equals(f.Category, func(p domain.BlogPost) string { return p.Category }),
		listing.Contains(f.Search,
			func(p domain.BlogPost) string { return p.Title },
			func(p domain.BlogPost) string { return p.Excerpt },
		),
	}
}

// HelpPredicates filters FAQs by category and by free text over question and answer
func HelpPredicates(f domain.ContentFilter) []listing.Predicate[domain.FAQ] {
	return []listing.Predicate[domain.FAQ]{
		listing.Equals(f.Category, func(q domain.FAQ) string { return q.Category }),
		listing.Contains(f.Search,
			func(q domain.FAQ) string { return q.Question },
			func(q domain.FAQ) string { return q.Answer },
		),
	}
}

func normalizeContentFilter(f domain.ContentFilter) domain.ContentFilter {
	f.Category = strings.TrimSpace(f.Category)
	if listing.Unconstrained(f.Category) {
		f.Category = ""
	}
	f.Search = strings.TrimSpace(f.Search)
	return f
}

// Blog lists posts matching the filter
func (s *ContentService) Blog(ctx context.Context, filter domain.ContentFilter, params *pagination.Params) BlogPage {
	filter = normalizeContentFilter(filter)
	toasts := &listing.Toasts{}

	var all []domain.BlogPost
	f := listing.NewFetcher[domain.BlogPost](true, toasts, msgBlogFailed)
	f.Filter(BlogPredicates(filter)...)
	view := f.Load(ctx, func(ctx context.Context) ([]domain.BlogPost, error) {
		rows, err := s.repo.ListPosts(ctx)
		if err != nil {
			return nil, err
		}
		all = make([]domain.BlogPost, 0, len(rows))
		for _, r := range rows {
			p := r.ToDomain()
			p.Body = ""
			all = append(all, p)
		}
		return all, nil
	})
	if view.Failed() {
		s.logger.Error().Err(view.Err).Msg("blog posts unavailable")
	}

	page := BlogPage{
		View:       view,
		Filter:     filter,
		Categories: categories(all, func(p domain.BlogPost) string { return p.Category }),
		Toasts:     toasts.List(),
	}
	if params != nil {
		page.View.Items, page.Meta = pagination.Slice(view.Items, params)
	}
	return page
}

// LatestPosts returns up to n of the newest posts. Failures yield an empty list.
func (s *ContentService) LatestPosts(ctx context.Context, n int) []domain.BlogPost {
	page := s.Blog(ctx, domain.ContentFilter{}, pagination.NewParams(1, n))
	return page.View.Items
}

// Post loads one post by slug
func (s *ContentService) Post(ctx context.Context, slug string) (*domain.BlogPost, error) {
	row, err := s.repo.GetPostBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		s.logger.Error().Err(err).Str("slug", slug).Msg("failed to load post")
		return nil, fmt.Errorf("load post %q: %w", slug, err)
	}
	post := row.ToDomain()
	return &post, nil
}

// Help lists FAQs matching the filter
func (s *ContentService) Help(ctx context.Context, filter domain.ContentFilter) HelpPage {
	filter = normalizeContentFilter(filter)
	toasts := &listing.Toasts{}

	var all []domain.FAQ
	f := listing.NewFetcher[domain.FAQ](true, toasts, msgHelpFailed)
	f.Filter(HelpPredicates(filter)...)
	view := f.Load(ctx, func(ctx context.Context) ([]domain.FAQ, error) {
		rows, err := s.repo.ListFAQs(ctx)
		if err != nil {
			return nil, err
		}
		all = make([]domain.FAQ, 0, len(rows))
		for _, r := range rows {
			all = append(all, r.ToDomain())
		}
		return all, nil
	})
	if view.Failed() {
		s.logger.Error().Err(view.Err).Msg("help topics unavailable")
	}

	return HelpPage{
		View:       view,
		Filter:     filter,
		Categories: categories(all, func(q domain.FAQ) string { return q.Category }),
		Toasts:     toasts.List(),
	}
}

func categories[T any](items []T, field func(T) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, it := range items {
		c := strings.TrimSpace(field(it))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
