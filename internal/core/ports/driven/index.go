package driven

import (
	"context"

	"github.com/nutricoach/nutricoach/internal/core/domain"
)

// VectorIndex stores embedded documents and answers nearest-neighbour
// queries. The index owns its documents: callers mutate it only through
// Upsert and Clear, and a full reload (Clear followed by Upsert of the
// complete set) must leave no stale ids behind.
//
// Independent sessions may query concurrently; (re)indexing is a single
// exclusive operation that must not interleave with queries.
type VectorIndex interface {
	// Upsert inserts or replaces documents by id. Every vector must
	// match the index's configured dimension; a mismatch returns
	// domain.ErrDimensionMismatch and leaves the index unchanged.
	Upsert(ctx context.Context, docs []domain.EmbeddedDocument) error

	// Query returns the k nearest neighbours to the query vector,
	// sorted by descending similarity. filter restricts results to
	// documents whose metadata matches every key/value pair exactly;
	// a nil filter searches the whole index. k larger than the index
	// returns all matches without error, and a filter matching
	// nothing returns an empty slice, not an error.
	Query(ctx context.Context, vector []float32, k int, filter map[string]string) ([]domain.SearchResult, error)

	// Count returns the total number of indexed documents.
	Count(ctx context.Context) (int, error)

	// CountByType returns document counts keyed by the reserved
	// doc_type metadata value.
	CountByType(ctx context.Context) (map[string]int, error)

	// Clear removes all documents.
	Clear(ctx context.Context) error

	// Dimensions returns the configured embedding dimension.
	Dimensions() int

	// Close releases resources.
	Close() error
}
