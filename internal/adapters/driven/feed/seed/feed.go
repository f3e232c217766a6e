// Package seed provides the built-in bootstrap document set. It keeps
// the coach usable before anyone has curated a knowledge file: a small
// corpus of foods, guidelines, recipes and meal templates compiled from
// USDA-style reference values.
package seed

import (
	"context"

	"github.com/nutricoach/nutricoach/internal/core/domain"
	"github.com/nutricoach/nutricoach/internal/core/ports/driven"
	"github.com/nutricoach/nutricoach/internal/logger"
)

// Ensure both feeds implement the interface.
var (
	_ driven.DocumentFeed = (*Feed)(nil)
	_ driven.DocumentFeed = (*fallbackFeed)(nil)
)

// Feed serves the built-in seed corpus.
type Feed struct{}

// New creates the seed feed.
func New() *Feed {
	return &Feed{}
}

// Documents returns a copy of the seed corpus.
func (f *Feed) Documents(_ context.Context) ([]domain.Document, error) {
	docs := make([]domain.Document, len(seedDocuments))
	copy(docs, seedDocuments)
	return docs, nil
}

// Describe names the feed for logs.
func (f *Feed) Describe() string {
	return "seed:builtin"
}

// Fallback wraps a primary feed so that a failed or empty load falls
// back to the seed corpus. The fallback is decided here, at composition
// time, never by a hidden file-existence check inside the index.
func Fallback(primary driven.DocumentFeed) driven.DocumentFeed {
	return &fallbackFeed{primary: primary, seed: New()}
}

type fallbackFeed struct {
	primary driven.DocumentFeed
	seed    *Feed
}

func (f *fallbackFeed) Documents(ctx context.Context) ([]domain.Document, error) {
	docs, err := f.primary.Documents(ctx)
	if err != nil {
		logger.Warn("Feed %s unavailable (%v), using seed corpus", f.primary.Describe(), err)
		return f.seed.Documents(ctx)
	}
	if len(docs) == 0 {
		logger.Warn("Feed %s is empty, using seed corpus", f.primary.Describe())
		return f.seed.Documents(ctx)
	}
	return docs, nil
}

func (f *fallbackFeed) Describe() string {
	return f.primary.Describe() + " (seed fallback)"
}
