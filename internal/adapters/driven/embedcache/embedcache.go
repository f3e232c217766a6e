// Package embedcache wraps an embedder with an in-process LRU cache
// for query embeddings. Repeated questions in a chat session skip the
// backend round trip.
package embedcache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/nutricoach/nutricoach/internal/core/ports/driven"
	"github.com/nutricoach/nutricoach/internal/logger"
)

// Ensure Embedder implements the interface.
var _ driven.Embedder = (*Embedder)(nil)

// Wrap decorates an embedder with a query-embedding cache. Document
// batches are never cached; they flow through during ingest only.
// A nil embedder, zero size or zero TTL returns the embedder unwrapped.
func Wrap(next driven.Embedder, size int, ttl time.Duration) driven.Embedder {
	if next == nil || size <= 0 || ttl <= 0 {
		return next
	}
	return &Embedder{
		next:  next,
		cache: expirable.NewLRU[string, []float32](size, nil, ttl),
	}
}

// Embedder is the caching decorator.
type Embedder struct {
	next  driven.Embedder
	cache *expirable.LRU[string, []float32]
}

// EmbedQuery returns the cached vector for a repeated query text, or
// delegates and caches the result. Failures are never cached.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	key := e.next.ModelName() + "\x00" + text
	if cached, ok := e.cache.Get(key); ok {
		logger.Debug("Embedding cache hit")
		return cloneVector(cached), nil
	}

	vector, err := e.next.EmbedQuery(ctx, text)
	if err != nil {
		return nil, err
	}
	e.cache.Add(key, cloneVector(vector))
	return vector, nil
}

// EmbedDocuments delegates directly; ingest batches are one-shot.
func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return e.next.EmbedDocuments(ctx, texts)
}

// Dimensions returns the wrapped embedder's vector size.
func (e *Embedder) Dimensions() int {
	return e.next.Dimensions()
}

// ModelName returns the wrapped embedder's model name.
func (e *Embedder) ModelName() string {
	return e.next.ModelName()
}

// Ping delegates to the wrapped embedder.
func (e *Embedder) Ping(ctx context.Context) error {
	return e.next.Ping(ctx)
}

// Close purges the cache and closes the wrapped embedder.
func (e *Embedder) Close() error {
	e.cache.Purge()
	return e.next.Close()
}

// cloneVector copies a vector so cache entries cannot be mutated by
// callers holding the returned slice.
func cloneVector(values []float32) []float32 {
	if len(values) == 0 {
		return nil
	}
	clone := make([]float32, len(values))
	copy(clone, values)
	return clone
}
