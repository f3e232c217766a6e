package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutricoach/nutricoach/internal/core/domain"
)

// --- Mock implementations ---

type mockFeed struct {
	docs []domain.Document
	err  error
}

func (m *mockFeed) Documents(_ context.Context) ([]domain.Document, error) {
	return m.docs, m.err
}

func (m *mockFeed) Describe() string { return "mock" }

// --- Tests ---

func TestSeedFeed_DocumentsAreValid(t *testing.T) {
	docs, err := New().Documents(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, docs)

	seen := make(map[string]bool)
	types := make(map[domain.DocType]int)
	for _, doc := range docs {
		require.NoError(t, doc.Validate(), "seed document %s", doc.ID)
		assert.False(t, seen[doc.ID], "duplicate seed id %s", doc.ID)
		seen[doc.ID] = true
		types[doc.Type]++
	}

	// The seed corpus covers every document category.
	assert.Positive(t, types[domain.DocTypeFoodItem])
	assert.Positive(t, types[domain.DocTypeKnowledge])
	assert.Positive(t, types[domain.DocTypeRecipe])
	assert.Positive(t, types[domain.DocTypeMealTemplate])
}

func TestSeedFeed_Describe(t *testing.T) {
	assert.Equal(t, "seed:builtin", New().Describe())
}

func TestFallback_PrimarySucceeds(t *testing.T) {
	primary := &mockFeed{docs: []domain.Document{
		{ID: "a", Type: domain.DocTypeFoodItem, Content: "text"},
	}}
	feed := Fallback(primary)

	docs, err := feed.Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "a", docs[0].ID)
}

func TestFallback_PrimaryFails(t *testing.T) {
	feed := Fallback(&mockFeed{err: errors.New("boom")})

	docs, err := feed.Documents(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, len(seedDocuments))
}

func TestFallback_PrimaryEmpty(t *testing.T) {
	feed := Fallback(&mockFeed{})

	docs, err := feed.Documents(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, len(seedDocuments))
}

func TestFallback_Describe(t *testing.T) {
	feed := Fallback(&mockFeed{})
	assert.Equal(t, "mock (seed fallback)", feed.Describe())
}
