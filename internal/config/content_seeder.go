package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"bloodlink-web/internal/adapters/persistence/models"
	"bloodlink-web/internal/adapters/persistence/repositories"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

//go:embed content_seed.yaml
var defaultContentSeed []byte

const seedDateLayout = "2006-01-02"

// ContentSeed is the YAML layout of the content seed file
type ContentSeed struct {
	Posts []SeedPost `yaml:"posts"`
	FAQs  []SeedFAQ  `yaml:"faqs"`
}

// SeedPost is one blog post entry in the seed file
type SeedPost struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Excerpt     string `yaml:"excerpt"`
	Body        string `yaml:"body"`
	Category    string `yaml:"category"`
	Author      string `yaml:"author"`
	PublishedAt string `yaml:"published_at"`
}

// SeedFAQ is one help entry in the seed file
type SeedFAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
	Category string `yaml:"category"`
}

// ContentSeeder loads blog posts and FAQs into the content store
type ContentSeeder struct {
	repo repositories.ContentRepository
}

// NewContentSeeder creates a new seeder instance
func NewContentSeeder(repo repositories.ContentRepository) *ContentSeeder {
	return &ContentSeeder{repo: repo}
}

// LoadContentSeed reads the seed file at path, or the embedded default when path is empty
func LoadContentSeed(path string) (*ContentSeed, error) {
	raw := defaultContentSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content seed: %w", err)
		}
		raw = b
	}
	return ParseContentSeed(raw)
}

// ParseContentSeed decodes and validates a YAML seed document
func ParseContentSeed(raw []byte) (*ContentSeed, error) {
	var seed ContentSeed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse content seed: %w", err)
	}
	for i, p := range seed.Posts {
		if strings.TrimSpace(p.Slug) == "" || strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("parse content seed: post %d needs slug and title", i)
		}
		if p.PublishedAt != "" {
			if _, err := time.Parse(seedDateLayout, p.PublishedAt); err != nil {
				return nil, fmt.Errorf("parse content seed: post %q: %w", p.Slug, err)
			}
		}
	}
	for i, f := range seed.FAQs {
		if strings.TrimSpace(f.Question) == "" || strings.TrimSpace(f.Answer) == "" {
			return nil, fmt.Errorf("parse content seed: faq %d needs question and answer", i)
		}
	}
	return &seed, nil
}

// Run inserts seed entries that are not stored yet. Existing rows are left untouched.
func (s *ContentSeeder) Run(ctx context.Context, seed *ContentSeed) error {
	log.Info().Msg("running content seeder")

	posts, faqs := 0, 0
	for _, p := range seed.Posts {
		published, _ := time.Parse(seedDateLayout, p.PublishedAt)
		created, err := s.repo.UpsertPost(ctx, &models.BlogPost{
			Slug:        strings.TrimSpace(p.Slug),
			Title:       strings.TrimSpace(p.Title),
			Excerpt:     strings.TrimSpace(p.Excerpt),
			Body:        strings.TrimSpace(p.Body),
			Category:    strings.ToLower(strings.TrimSpace(p.Category)),
			Author:      strings.TrimSpace(p.Author),
			PublishedAt: published,
		})
		if err != nil {
			return fmt.Errorf("seed post %q: %w", p.Slug, err)
		}
		if created {
			posts++
		}
	}

	for i, f := range seed.FAQs {
		created, err := s.repo.UpsertFAQ(ctx, &models.FAQ{
			Question: strings.TrimSpace(f.Question),
			Answer:   strings.TrimSpace(f.Answer),
			Category: strings.ToLower(strings.TrimSpace(f.Category)),
			Position: i,
		})
		if err != nil {
			return fmt.Errorf("seed faq %q: %w", f.Question, err)
		}
		if created {
			faqs++
		}
	}

	log.Info().Int("posts", posts).Int("faqs", faqs).Msg("content seeding completed")
	return nil
}
