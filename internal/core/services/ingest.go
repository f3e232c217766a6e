package services

import (
	"context"
	"fmt"

	"github.com/nutricoach/nutricoach/internal/core/domain"
	"github.com/nutricoach/nutricoach/internal/core/ports/driven"
	"github.com/nutricoach/nutricoach/internal/core/ports/driving"
	"github.com/nutricoach/nutricoach/internal/logger"
)

// Ensure Ingest implements the interface.
var _ driving.Ingestor = (*Ingest)(nil)

// embedBatchSize caps how many documents go to the embedder per call.
const embedBatchSize = 50

// Ingest rebuilds the vector index from a document feed. A reindex is
// a full reload: the index is cleared and every feed document is
// embedded and inserted fresh.
type Ingest struct {
	feed     driven.DocumentFeed
	embedder driven.Embedder
	index    driven.VectorIndex
}

// NewIngest creates the ingestion service.
func NewIngest(feed driven.DocumentFeed, embedder driven.Embedder, index driven.VectorIndex) *Ingest {
	return &Ingest{feed: feed, embedder: embedder, index: index}
}

// Reindex loads the feed, embeds its documents in batches and swaps
// them into the index. Invalid documents abort the reload before the
// index is touched, so a bad feed never destroys a working index.
func (s *Ingest) Reindex(ctx context.Context) (int, error) {
	logger.Section("Indexing")
	logger.Info("Feed: %s", s.feed.Describe())

	docs, err := s.feed.Documents(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrFeedUnavailable, err)
	}
	if len(docs) == 0 {
		return 0, fmt.Errorf("%w: feed returned no documents", domain.ErrFeedUnavailable)
	}

	for i, doc := range docs {
		if err := doc.Validate(); err != nil {
			return 0, fmt.Errorf("document %d: %w", i, err)
		}
	}
	logger.Info("Loaded %d documents from feed", len(docs))

	embedded := make([]domain.EmbeddedDocument, 0, len(docs))
	for start := 0; start < len(docs); start += embedBatchSize {
		end := min(start+embedBatchSize, len(docs))
		batch := docs[start:end]

		texts := make([]string, len(batch))
		for i, doc := range batch {
			texts[i] = doc.Content
		}

		vectors, err := s.embedder.EmbedDocuments(ctx, texts)
		if err != nil {
			return 0, fmt.Errorf("embed batch %d-%d: %w", start, end, err)
		}
		if len(vectors) != len(batch) {
			return 0, fmt.Errorf("embed batch %d-%d: got %d vectors for %d documents",
				start, end, len(vectors), len(batch))
		}

		for i, doc := range batch {
			embedded = append(embedded, domain.EmbeddedDocument{Document: doc, Vector: vectors[i]})
		}
		logger.Debug("Embedded %d/%d documents", end, len(docs))
	}

	if err := s.index.Clear(ctx); err != nil {
		return 0, fmt.Errorf("clear index: %w", err)
	}
	if err := s.index.Upsert(ctx, embedded); err != nil {
		return 0, fmt.Errorf("index documents: %w", err)
	}

	logger.Info("Indexed %d documents", len(embedded))
	return len(embedded), nil
}
