package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutricoach/nutricoach/internal/core/domain"
)

func TestIngest_Reindex(t *testing.T) {
	feed := &mockFeed{docs: testDocs(3)}
	index := &mockIndex{}
	ingest := NewIngest(feed, &mockEmbedder{}, index)

	count, err := ingest.Reindex(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.True(t, index.cleared)
	require.Len(t, index.upserted, 3)
	assert.Equal(t, "doc-0", index.upserted[0].ID)
	assert.Len(t, index.upserted[0].Vector, 384)
}

func TestIngest_Reindex_Batching(t *testing.T) {
	feed := &mockFeed{docs: testDocs(120)}
	embedder := &mockEmbedder{}
	index := &mockIndex{}
	ingest := NewIngest(feed, embedder, index)

	count, err := ingest.Reindex(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 120, count)
	require.Len(t, embedder.batches, 3)
	assert.Len(t, embedder.batches[0], 50)
	assert.Len(t, embedder.batches[1], 50)
	assert.Len(t, embedder.batches[2], 20)
	assert.Len(t, index.upserted, 120)
}

func TestIngest_Reindex_FeedFailure(t *testing.T) {
	ingest := NewIngest(&mockFeed{err: errBackend}, &mockEmbedder{}, &mockIndex{})

	_, err := ingest.Reindex(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFeedUnavailable)
}

func TestIngest_Reindex_EmptyFeed(t *testing.T) {
	ingest := NewIngest(&mockFeed{}, &mockEmbedder{}, &mockIndex{})

	_, err := ingest.Reindex(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFeedUnavailable)
}

func TestIngest_Reindex_InvalidDocumentAbortsEarly(t *testing.T) {
	docs := testDocs(2)
	docs[1].Content = ""
	index := &mockIndex{}
	ingest := NewIngest(&mockFeed{docs: docs}, &mockEmbedder{}, index)

	_, err := ingest.Reindex(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)
	// The index is untouched when the feed is bad.
	assert.False(t, index.cleared)
	assert.Empty(t, index.upserted)
}

func TestIngest_Reindex_EmbeddingFailure(t *testing.T) {
	index := &mockIndex{}
	ingest := NewIngest(&mockFeed{docs: testDocs(2)}, &mockEmbedder{batchErr: errBackend}, index)

	_, err := ingest.Reindex(context.Background())

	require.Error(t, err)
	assert.False(t, index.cleared)
}
