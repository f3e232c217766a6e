package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/nutricoach/nutricoach/internal/core/domain"
	"github.com/nutricoach/nutricoach/internal/core/ports/driven"
	"github.com/nutricoach/nutricoach/internal/core/ports/driving"
	"github.com/nutricoach/nutricoach/internal/logger"
)

// Ensure Coach implements the interface.
var _ driving.CoachService = (*Coach)(nil)

// defaultSearchLimit applies when a direct search sets no limit.
const defaultSearchLimit = 5

// recommendSearchK is how many candidates each recommendation pass
// fetches before grouping.
const recommendSearchK = 5

// Coach runs the single-turn RAG pipeline: analyze, retrieve, assemble
// context, generate. It is safe for concurrent use by independent
// sessions; the index is read-mostly after ingestion.
type Coach struct {
	index     driven.VectorIndex
	embedder  driven.Embedder
	retriever *Retriever
	responder *Responder
}

// NewCoach creates the coach service.
func NewCoach(index driven.VectorIndex, embedder driven.Embedder, responder *Responder) *Coach {
	return &Coach{
		index:     index,
		embedder:  embedder,
		retriever: NewRetriever(index, embedder),
		responder: responder,
	}
}

// Retriever exposes the coach's retriever for session wiring.
func (c *Coach) Retriever() *Retriever {
	return c.retriever
}

// Responder exposes the coach's responder for session wiring.
func (c *Coach) Responder() *Responder {
	return c.responder
}

// Answer runs the full pipeline for one query. The returned Answer
// always carries a response string; model failures are replaced with
// the fixed fallback inside the responder. An empty index is reported
// as domain.ErrIndexEmpty so callers can prompt for an ingest.
func (c *Coach) Answer(
	ctx context.Context, query string, profile *domain.UserProfile,
	history []domain.ConversationTurn, style domain.ResponseStyle,
) (*domain.Answer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrInvalidDocument)
	}

	if err := c.ensureIndexed(ctx); err != nil {
		return nil, err
	}

	strategy := AnalyzeQuery(query, history)
	logger.Debug("Strategy: %+v", strategy)

	mode := ModeSingleTurn
	if len(history) > 0 {
		mode = ModeConversational
	}

	results, err := c.retriever.Retrieve(ctx, query, strategy, mode)
	if err != nil {
		return nil, err
	}

	response := c.responder.Generate(ctx, GenerateRequest{
		Query:          query,
		ContextBlock:   BuildContextBlock(results),
		Profile:        profile,
		History:        history,
		Style:          style,
		Conversational: len(history) > 0,
	})

	return &domain.Answer{
		Response:     response,
		Sources:      sourceMetadata(results),
		ContextCount: len(results),
		Strategy:     strategy,
	}, nil
}

// Search queries the knowledge base directly, bypassing generation.
func (c *Coach) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.SearchResult{}, nil
	}

	if err := c.ensureIndexed(ctx); err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	vector, err := c.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrQueryEmbedding, err)
	}

	var filter map[string]string
	if opts.TypeFilter != "" {
		filter = map[string]string{domain.MetaDocType: opts.TypeFilter.String()}
	}

	return c.index.Query(ctx, vector, limit, filter)
}

// Recommend returns goal-driven food suggestions grouped by category.
// It runs a food-filtered pass plus a broad pass so related guideline
// or recipe categories can surface alongside plain foods.
func (c *Coach) Recommend(
	ctx context.Context, goal string, preferences, restrictions []string,
) (*domain.FoodRecommendations, error) {
	if err := c.ensureIndexed(ctx); err != nil {
		return nil, err
	}

	query := "foods for " + goal
	if len(preferences) > 0 {
		query += " preferences: " + strings.Join(preferences, ", ")
	}
	if len(restrictions) > 0 {
		query += " avoiding: " + strings.Join(restrictions, ", ")
	}
	logger.Debug("Recommendation query: %q", query)

	vector, err := c.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrQueryEmbedding, err)
	}

	foodFilter := map[string]string{domain.MetaDocType: domain.DocTypeFoodItem.String()}
	results, err := c.index.Query(ctx, vector, recommendSearchK, foodFilter)
	if err != nil {
		return nil, fmt.Errorf("food search: %w", err)
	}

	broad, err := c.index.Query(ctx, vector, recommendSearchK, nil)
	if err != nil {
		return nil, fmt.Errorf("broad search: %w", err)
	}
	results = rankResults(append(results, broad...), 0, 2*recommendSearchK)

	recs := &domain.FoodRecommendations{
		Goal:       goal,
		ByCategory: make(map[string][]domain.RecommendedFood),
	}
	for _, result := range results {
		category := metadataOr(result.Metadata, "category", "Other")
		recs.ByCategory[category] = append(recs.ByCategory[category], domain.RecommendedFood{
			Name:      metadataOr(result.Metadata, "food_name", "Unknown"),
			Calories:  result.Metadata["calories"],
			Protein:   result.Metadata["protein"],
			Benefits:  result.Metadata["health_benefits"],
			Relevance: result.Similarity,
		})
		recs.TotalFoods++
	}
	return recs, nil
}

// Stats reports the index size and per-type document counts.
func (c *Coach) Stats(ctx context.Context) (int, map[string]int, error) {
	total, err := c.index.Count(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("count: %w", err)
	}
	byType, err := c.index.CountByType(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("count by type: %w", err)
	}
	return total, byType, nil
}

func (c *Coach) ensureIndexed(ctx context.Context) error {
	count, err := c.index.Count(ctx)
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	if count == 0 {
		return domain.ErrIndexEmpty
	}
	return nil
}

func sourceMetadata(results []domain.SearchResult) []map[string]string {
	sources := make([]map[string]string, len(results))
	for i, result := range results {
		sources[i] = result.Metadata
	}
	return sources
}
