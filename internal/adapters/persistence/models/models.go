package models

import (
	"time"

	"bloodlink-web/internal/core/domain"

	"gorm.io/gorm"
)

// BlogPost represents blog_posts table
type BlogPost struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Slug        string         `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Excerpt     string         `gorm:"size:500" json:"excerpt"`
	Body        string         `gorm:"type:text" json:"body"`
	Category    string         `gorm:"size:50;index" json:"category"`
	Author      string         `gorm:"size:100" json:"author"`
	PublishedAt time.Time      `gorm:"index" json:"published_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

// ToDomain converts to the domain record
func (p *BlogPost) ToDomain() domain.BlogPost {
	return domain.BlogPost{
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Body:        p.Body,
		Category:    p.Category,
		Author:      p.Author,
		PublishedAt: p.PublishedAt,
	}
}

// FAQ represents faqs table
type FAQ struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Question  string    `gorm:"size:300;uniqueIndex;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Category  string    `gorm:"size:50;index" json:"category"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FAQ) TableName() string {
	return "faqs"
}

// ToDomain converts to the domain record
func (f *FAQ) ToDomain() domain.FAQ {
	return domain.FAQ{
		Question: f.Question,
		Answer:   f.Answer,
		Category: f.Category,
	}
}

// ContactMessage represents contact_messages table
type ContactMessage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:150;not null;index" json:"email"`
	Subject   string    `gorm:"size:150" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Notified  bool      `gorm:"default:false" json:"notified"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

// NewContactMessage maps a domain message to its row
func NewContactMessage(m domain.ContactMessage) *ContactMessage {
	return &ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// AutoMigrate creates or updates the content tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&BlogPost{},
		&FAQ{},
		&ContactMessage{},
	)
}
