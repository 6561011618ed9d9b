package repositories

import (
	"context"
	"time"

	"bloodlink-web/internal/adapters/persistence/models"
)

// ContentRepository defines read access to the marketing content
type ContentRepository interface {
	ListPosts(ctx context.Context) ([]*models.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	ListFAQs(ctx context.Context) ([]*models.FAQ, error)
	UpsertPost(ctx context.Context, post *models.BlogPost) (bool, error)
	UpsertFAQ(ctx context.Context, faq *models.FAQ) (bool, error)
}

// ContactRepository defines contact message storage
type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	MarkNotified(ctx context.Context, id string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
