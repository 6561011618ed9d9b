package repositories

import (
	"context"
	"errors"

	"bloodlink-web/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// contentRepository implements ContentRepository interface
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// ListPosts returns published posts, newest first
func (r *contentRepository) ListPosts(ctx context.Context) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.WithContext(ctx).
		Order("published_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostBySlug gets one post
func (r *contentRepository) GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListFAQs returns FAQs in display order
func (r *contentRepository) ListFAQs(ctx context.Context) ([]*models.FAQ, error) {
	var faqs []*models.FAQ
	err := r.db.WithContext(ctx).
		Order("position ASC, id ASC").
		Find(&faqs).Error
	if err != nil {
		return nil, err
	}
	return faqs, nil
}

// UpsertPost creates the post if its slug is unknown. Returns true when created.
func (r *contentRepository) UpsertPost(ctx context.Context, post *models.BlogPost) (bool, error) {
	var existing models.BlogPost
	err := r.db.WithContext(ctx).Where("slug = ?", post.Slug).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return false, err
	}
	return true, nil
}

// UpsertFAQ creates the FAQ if its question is unknown. Returns true when created.
func (r *contentRepository) UpsertFAQ(ctx context.Context, faq *models.FAQ) (bool, error) {
	var existing models.FAQ
	err := r.db.WithContext(ctx).Where("question = ?", faq.Question).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := r.db.WithContext(ctx).Create(faq).Error; err != nil {
		return false, err
	}
	return true, nil
}
