package repositories

import (
	"context"
	"time"

	"bloodlink-web/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// contactRepository implements ContactRepository interface
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create stores a contact message
func (r *contactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// MarkNotified flags a message whose notification mail went out
func (r *contactRepository) MarkNotified(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("notified", true).Error
}

// DeleteOlderThan removes messages created before cutoff
func (r *contactRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.ContactMessage{})
	return result.RowsAffected, result.Error
}
