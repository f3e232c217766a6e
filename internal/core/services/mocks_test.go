package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/nutricoach/nutricoach/internal/core/domain"
	"github.com/nutricoach/nutricoach/internal/core/ports/driven"
)

// --- Mock implementations shared by the service tests ---

// mockEmbedder implements driven.Embedder and records every query
// text and document batch it receives.
type mockEmbedder struct {
	vector   []float32
	queryErr error
	batchErr error
	dims     int

	queries []string
	batches [][]string
}

func (m *mockEmbedder) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	m.queries = append(m.queries, text)
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.embedding(), nil
}

func (m *mockEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	m.batches = append(m.batches, texts)
	if m.batchErr != nil {
		return nil, m.batchErr
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = m.embedding()
	}
	return vectors, nil
}

func (m *mockEmbedder) embedding() []float32 {
	if m.vector != nil {
		return m.vector
	}
	return make([]float32, m.Dimensions())
}

func (m *mockEmbedder) Dimensions() int {
	if m.dims > 0 {
		return m.dims
	}
	return 384
}

func (m *mockEmbedder) ModelName() string { return "mock-embed" }

func (m *mockEmbedder) Ping(_ context.Context) error { return nil }

func (m *mockEmbedder) Close() error { return nil }

// queryCall records one index query.
type queryCall struct {
	k      int
	filter map[string]string
}

// mockIndex implements driven.VectorIndex. Unfiltered queries serve
// hits; filtered queries serve the filtered map keyed "key=value".
type mockIndex struct {
	hits     []domain.SearchResult
	filtered map[string][]domain.SearchResult

	queryErr  error
	filterErr error
	countErr  error

	count  int
	byType map[string]int

	calls    []queryCall
	upserted []domain.EmbeddedDocument
	cleared  bool
}

func (m *mockIndex) Upsert(_ context.Context, docs []domain.EmbeddedDocument) error {
	m.upserted = append(m.upserted, docs...)
	return nil
}

func (m *mockIndex) Query(_ context.Context, _ []float32, k int, filter map[string]string) ([]domain.SearchResult, error) {
	m.calls = append(m.calls, queryCall{k: k, filter: filter})
	if m.queryErr != nil {
		return nil, m.queryErr
	}

	if filter == nil {
		return limitHits(m.hits, k), nil
	}
	if m.filterErr != nil {
		return nil, m.filterErr
	}

	keys := make([]string, 0, len(filter))
	for key, value := range filter {
		keys = append(keys, key+"="+value)
	}
	sort.Strings(keys)
	return limitHits(m.filtered[keys[0]], k), nil
}

func limitHits(hits []domain.SearchResult, k int) []domain.SearchResult {
	if k < len(hits) {
		hits = hits[:k]
	}
	return append([]domain.SearchResult(nil), hits...)
}

func (m *mockIndex) Count(_ context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.count, nil
}

func (m *mockIndex) CountByType(_ context.Context) (map[string]int, error) {
	return m.byType, nil
}

func (m *mockIndex) Clear(_ context.Context) error {
	m.cleared = true
	return nil
}

func (m *mockIndex) Dimensions() int { return 384 }

func (m *mockIndex) Close() error { return nil }

// mockChatModel implements driven.ChatModel and records the last call.
type mockChatModel struct {
	reply string
	err   error

	lastSystem string
	lastUser   string
	lastOpts   driven.CompleteOptions
	calls      int
}

func (m *mockChatModel) Complete(_ context.Context, systemPrompt, userPrompt string, opts driven.CompleteOptions) (string, error) {
	m.calls++
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	m.lastOpts = opts
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func (m *mockChatModel) ModelName() string { return "mock-llm" }

func (m *mockChatModel) Ping(_ context.Context) error { return nil }

func (m *mockChatModel) Close() error { return nil }

// mockFeed implements driven.DocumentFeed.
type mockFeed struct {
	docs []domain.Document
	err  error
}

func (m *mockFeed) Documents(_ context.Context) ([]domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.docs, nil
}

func (m *mockFeed) Describe() string { return "mock feed" }

// --- Test helpers ---

var errBackend = errors.New("backend down")

func testHit(id string, similarity float64, docType domain.DocType) domain.SearchResult {
	return domain.SearchResult{
		ID:         id,
		Content:    "content for " + id,
		Metadata:   map[string]string{domain.MetaDocType: docType.String()},
		Similarity: similarity,
	}
}

func testDocs(n int) []domain.Document {
	docs := make([]domain.Document, n)
	for i := range docs {
		docs[i] = domain.Document{
			ID:      fmt.Sprintf("doc-%d", i),
			Type:    domain.DocTypeFoodItem,
			Content: fmt.Sprintf("food number %d", i),
		}
	}
	return docs
}
