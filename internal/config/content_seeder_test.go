package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bloodlink-web/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryContent struct {
	posts map[string]*models.BlogPost
	faqs  map[string]*models.FAQ
	fail  error
}

func newMemoryContent() *memoryContent {
	return &memoryContent{posts: map[string]*models.BlogPost{}, faqs: map[string]*models.FAQ{}}
}

func (m *memoryContent) ListPosts(context.Context) ([]*models.BlogPost, error) { return nil, nil }
func (m *memoryContent) GetPostBySlug(context.Context, string) (*models.BlogPost, error) {
	return nil, nil
}
func (m *memoryContent) ListFAQs(context.Context) ([]*models.FAQ, error) { return nil, nil }

func (m *memoryContent) UpsertPost(_ context.Context, p *models.BlogPost) (bool, error) {
	if m.fail != nil {
		return false, m.fail
	}
	if _, ok := m.posts[p.Slug]; ok {
		return false, nil
	}
	m.posts[p.Slug] = p
	return true, nil
}

func (m *memoryContent) UpsertFAQ(_ context.Context, f *models.FAQ) (bool, error) {
	if _, ok := m.faqs[f.Question]; ok {
		return false, nil
	}
	m.faqs[f.Question] = f
	return true, nil
}

func TestEmbeddedSeedParses(t *testing.T) {
	seed, err := LoadContentSeed("")
	require.NoError(t, err)
	assert.NotEmpty(t, seed.Posts)
	assert.NotEmpty(t, seed.FAQs)
}

func TestSeederIsIdempotent(t *testing.T) {
	seed, err := LoadContentSeed("")
	require.NoError(t, err)

	repo := newMemoryContent()
	seeder := NewContentSeeder(repo)
	require.NoError(t, seeder.Run(context.Background(), seed))
	require.NoError(t, seeder.Run(context.Background(), seed))

	assert.Len(t, repo.posts, len(seed.Posts))
	assert.Len(t, repo.faqs, len(seed.FAQs))

	tips := repo.posts["donation-tips"]
	require.NotNil(t, tips)
	assert.Equal(t, "tips", tips.Category)
	assert.Equal(t, time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC), tips.PublishedAt)
}

func TestSeedFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
posts:
  - slug: hello
    title: Hello
    category: News
faqs:
  - question: Q?
    answer: A.
`), 0o600))

	seed, err := LoadContentSeed(path)
	require.NoError(t, err)
	require.Len(t, seed.Posts, 1)

	repo := newMemoryContent()
	require.NoError(t, NewContentSeeder(repo).Run(context.Background(), seed))
	assert.Equal(t, "news", repo.posts["hello"].Category)
	assert.Equal(t, 0, repo.faqs["Q?"].Position)
}

func TestParseContentSeedRejectsInvalidEntries(t *testing.T) {
	_, err := ParseContentSeed([]byte("posts:\n  - title: no slug\n"))
	assert.Error(t, err)

	_, err = ParseContentSeed([]byte("posts:\n  - slug: a\n    title: A\n    published_at: yesterday\n"))
	assert.Error(t, err)

	_, err = ParseContentSeed([]byte("faqs:\n  - question: only\n"))
	assert.Error(t, err)

	_, err = LoadContentSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSeederPropagatesStoreErrors(t *testing.T) {
	repo := newMemoryContent()
	repo.fail = errors.New("db down")

	err := NewContentSeeder(repo).Run(context.Background(), &ContentSeed{Posts: []SeedPost{{Slug: "a", Title: "A"}}})
	assert.ErrorContains(t, err, "db down")
}
