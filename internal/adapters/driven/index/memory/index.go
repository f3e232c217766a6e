// Package memory provides an in-process vector index. Vectors live in
// a map guarded by a RWMutex; queries score the whole index by cosine
// similarity, which is exact and fast at knowledge-base scale.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/nutricoach/nutricoach/internal/core/domain"
	"github.com/nutricoach/nutricoach/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// entry is one indexed document.
type entry struct {
	content  string
	metadata map[string]string
	vector   []float32
}

// Index is an in-memory vector index.
type Index struct {
	mu         sync.RWMutex
	entries    map[string]entry
	dimensions int
}

// New creates an empty index. Dimensions may be zero, in which case the
// first upserted vector fixes it.
func New(dimensions int) *Index {
	return &Index{
		entries:    make(map[string]entry),
		dimensions: dimensions,
	}
}

// Upsert inserts or replaces documents by id. The first vector fixes
// the index dimension if none was configured; every later vector must
// match it.
func (idx *Index) Upsert(_ context.Context, docs []domain.EmbeddedDocument) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	for _, doc := range docs {
		if idx.dimensions == 0 {
			idx.dimensions = len(doc.Vector)
		}
		if len(doc.Vector) != idx.dimensions {
			return fmt.Errorf("%w: document %s has %d dimensions, index has %d",
				domain.ErrDimensionMismatch, doc.ID, len(doc.Vector), idx.dimensions)
		}

		vector := make([]float32, len(doc.Vector))
		copy(vector, doc.Vector)
		idx.entries[doc.ID] = entry{
			content:  doc.Content,
			metadata: domain.FlattenMetadata(&doc.Document),
			vector:   vector,
		}
	}
	return nil
}

// Query returns the k most similar documents, sorted by descending
// cosine similarity. A nil filter searches the whole index; a filter
// requires every key to match the flattened metadata exactly.
func (idx *Index) Query(_ context.Context, vector []float32, k int, filter map[string]string) ([]domain.SearchResult, error) {
	if k <= 0 {
		return []domain.SearchResult{}, nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.dimensions != 0 && len(vector) != idx.dimensions {
		return nil, fmt.Errorf("%w: query has %d dimensions, index has %d",
			domain.ErrDimensionMismatch, len(vector), idx.dimensions)
	}

	results := make([]domain.SearchResult, 0, len(idx.entries))
	for id, e := range idx.entries {
		if !matchesFilter(e.metadata, filter) {
			continue
		}
		results = append(results, domain.SearchResult{
			ID:         id,
			Content:    e.content,
			Metadata:   e.metadata,
			Similarity: cosineSimilarity(vector, e.vector),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].ID < results[j].ID
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// Count returns the number of indexed documents.
func (idx *Index) Count(_ context.Context) (int, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries), nil
}

// CountByType returns document counts grouped by doc_type metadata.
func (idx *Index) CountByType(_ context.Context) (map[string]int, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	counts := make(map[string]int)
	for _, e := range idx.entries {
		counts[e.metadata[domain.MetaDocType]]++
	}
	return counts, nil
}

// Clear removes every document. The configured dimension is kept.
func (idx *Index) Clear(_ context.Context) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.entries = make(map[string]entry)
	return nil
}

// Dimensions returns the index's vector size, or zero before the first
// upsert when none was configured.
func (idx *Index) Dimensions() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.dimensions
}

// Close releases resources.
func (idx *Index) Close() error {
	return nil
}

func matchesFilter(metadata, filter map[string]string) bool {
	for key, want := range filter {
		if metadata[key] != want {
			return false
		}
	}
	return true
}

// cosineSimilarity computes the cosine of the angle between two
// vectors. A zero vector scores 0 against everything.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
