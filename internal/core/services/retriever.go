package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/nutricoach/nutricoach/internal/core/domain"
	"github.com/nutricoach/nutricoach/internal/core/ports/driven"
	"github.com/nutricoach/nutricoach/internal/logger"
)

// RetrieveMode selects the bound and relevance floor for one retrieval.
type RetrieveMode int

// Retrieval modes.
const (
	// ModeSingleTurn serves isolated questions: up to 8 results with
	// a 0.3 relevance floor.
	ModeSingleTurn RetrieveMode = iota

	// ModeConversational serves chat turns: up to 6 results with a
	// 0.1 floor, since follow-ups legitimately retrieve less-central
	// matches.
	ModeConversational
)

// Bound returns the maximum context size for the mode.
func (m RetrieveMode) Bound() int {
	if m == ModeConversational {
		return conversationalBound
	}
	return singleTurnBound
}

// Floor returns the minimum similarity a result must reach.
func (m RetrieveMode) Floor() float64 {
	if m == ModeConversational {
		return conversationalFloor
	}
	return singleTurnFloor
}

const (
	singleTurnBound     = 8
	conversationalBound = 6
	singleTurnFloor     = 0.3
	conversationalFloor = 0.1

	baseSearchK    = 5
	focusedSearchK = 3
	narrowSearchK  = 2
)

// sportsCategory is the metadata category of exercise-nutrition docs.
const sportsCategory = "Sports Nutrition"

// Retriever answers one request with a two-phase search: a broad
// unfiltered pass for recall plus one focused pass per active strategy
// flag, trading extra query cost for recall on specialised terms.
type Retriever struct {
	index    driven.VectorIndex
	embedder driven.Embedder
}

// NewRetriever creates a retriever over the given index and embedder.
func NewRetriever(index driven.VectorIndex, embedder driven.Embedder) *Retriever {
	return &Retriever{index: index, embedder: embedder}
}

// Retrieve runs the base and focused searches for a query and returns
// the merged, deduplicated results sorted by descending similarity,
// truncated to the mode's bound. A query-embedding failure aborts the
// request with domain.ErrQueryEmbedding; there is no keyword fallback.
func (r *Retriever) Retrieve(
	ctx context.Context, query string, strategy domain.QueryStrategy, mode RetrieveMode,
) ([]domain.SearchResult, error) {
	logger.Section("Retrieval")
	logger.Debug("Query: %q", query)

	vector, err := r.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrQueryEmbedding, err)
	}

	// Base search always runs against the whole index.
	merged, err := r.index.Query(ctx, vector, baseSearchK, nil)
	if err != nil {
		return nil, fmt.Errorf("base search: %w", err)
	}
	logger.Debug("Base search: %d hits", len(merged))

	// Focused passes are appended after the base hits so dedupe keeps
	// base-search results when ids collide.
	for _, focused := range r.focusedSearches(strategy) {
		hits, err := r.runFocused(ctx, query, vector, focused)
		if err != nil {
			logger.Warn("Focused search %s failed: %v", focused.name, err)
			continue
		}
		logger.Debug("Focused search %s: %d hits", focused.name, len(hits))
		merged = append(merged, hits...)
	}

	results := rankResults(merged, mode.Floor(), mode.Bound())
	logger.Info("Retrieved %d results (floor %.1f, bound %d)", len(results), mode.Floor(), mode.Bound())
	return results, nil
}

// focusedSearch describes one strategy-driven follow-up query.
type focusedSearch struct {
	name string
	// augment is prepended to the query text; when set, the focused
	// pass embeds the augmented query instead of reusing the base
	// query vector.
	augment string
	filter  map[string]string
	k       int
}

func (r *Retriever) focusedSearches(strategy domain.QueryStrategy) []focusedSearch {
	var searches []focusedSearch
	if strategy.FoodFocus {
		searches = append(searches, focusedSearch{
			name:   "food",
			filter: map[string]string{domain.MetaDocType: domain.DocTypeFoodItem.String()},
			k:      focusedSearchK,
		})
	}
	if strategy.KnowledgeFocus {
		searches = append(searches, focusedSearch{
			name:   "knowledge",
			filter: map[string]string{domain.MetaDocType: domain.DocTypeKnowledge.String()},
			k:      focusedSearchK,
		})
	}
	if strategy.RecipeFocus {
		searches = append(searches, focusedSearch{
			name:   "recipe",
			filter: map[string]string{domain.MetaDocType: domain.DocTypeRecipe.String()},
			k:      narrowSearchK,
		})
	}
	if strategy.MealPlanningFocus {
		searches = append(searches, focusedSearch{
			name:   "meal planning",
			filter: map[string]string{domain.MetaDocType: domain.DocTypeMealTemplate.String()},
			k:      narrowSearchK,
		})
	}
	if strategy.SportsNutritionFocus {
		searches = append(searches, focusedSearch{
			name:    "sports nutrition",
			augment: "sports nutrition exercise ",
			filter:  map[string]string{"category": sportsCategory},
			k:       narrowSearchK,
		})
	}
	return searches
}

func (r *Retriever) runFocused(
	ctx context.Context, query string, baseVector []float32, search focusedSearch,
) ([]domain.SearchResult, error) {
	vector := baseVector
	if search.augment != "" {
		augmented, err := r.embedder.EmbedQuery(ctx, search.augment+query)
		if err != nil {
			return nil, fmt.Errorf("embed augmented query: %w", err)
		}
		vector = augmented
	}
	return r.index.Query(ctx, vector, search.k, search.filter)
}

// rankResults drops hits below the floor, deduplicates by id keeping
// the first occurrence, sorts by descending similarity and truncates
// to the bound.
func rankResults(results []domain.SearchResult, floor float64, bound int) []domain.SearchResult {
	seen := make(map[string]bool, len(results))
	unique := make([]domain.SearchResult, 0, len(results))
	for _, result := range results {
		if result.Similarity < floor || seen[result.ID] {
			continue
		}
		seen[result.ID] = true
		unique = append(unique, result)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Similarity > unique[j].Similarity
	})

	if len(unique) > bound {
		unique = unique[:bound]
	}
	return unique
}
