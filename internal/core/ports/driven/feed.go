package driven

import (
	"context"

	"github.com/nutricoach/nutricoach/internal/core/domain"
)

// DocumentFeed delivers the ordered document set for (re)indexing.
// Dataset curation itself is out of scope; the core only checks
// structural shape (non-empty id and content).
//
// The bootstrap policy is explicit: a feed either succeeds from its
// real source or is wrapped with a seed fallback by the composition
// root, never by a hidden file-existence check inside the index.
type DocumentFeed interface {
	// Documents returns the full document set, in feed order.
	Documents(ctx context.Context) ([]domain.Document, error)

	// Describe names the feed for logs, e.g. "file:knowledge.json".
	Describe() string
}
