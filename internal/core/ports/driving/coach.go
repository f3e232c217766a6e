package driving

import (
	"context"

	"github.com/nutricoach/nutricoach/internal/core/domain"
)

// CoachService is the single-turn query API driven by the UI layer.
type CoachService interface {
	// Answer runs the full RAG pipeline for one query and returns a
	// grounded answer with provenance metadata. The response string
	// is always populated; generation failures substitute a fixed
	// fallback. An empty index surfaces domain.ErrIndexEmpty.
	Answer(ctx context.Context, query string, profile *domain.UserProfile,
		history []domain.ConversationTurn, style domain.ResponseStyle) (*domain.Answer, error)

	// Search queries the knowledge base directly, bypassing
	// generation. Used by knowledge-base browsing.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)

	// Recommend returns goal-driven food suggestions grouped by
	// category.
	Recommend(ctx context.Context, goal string, preferences, restrictions []string) (*domain.FoodRecommendations, error)

	// Stats reports the index size and per-type document counts.
	Stats(ctx context.Context) (total int, byType map[string]int, err error)
}

// ChatSession is the conversational API. A session owns its turn
// history; it is not safe for concurrent use by multiple goroutines.
type ChatSession interface {
	// Chat handles one user message: decides whether retrieval is
	// needed, runs the pipeline, appends both turns to the session
	// history, and returns the reply with conversation metadata.
	Chat(ctx context.Context, message string, profile *domain.UserProfile,
		style domain.ResponseStyle) (*domain.ChatReply, error)

	// History returns the session's turns, oldest first.
	History() []domain.ConversationTurn

	// SuggestFollowUps returns up to three canned follow-up questions
	// matched against the most recent assistant response.
	SuggestFollowUps() []string

	// Reset clears the session history (new-chat action).
	Reset()
}

// Ingestor rebuilds the document index from the configured feed.
type Ingestor interface {
	// Reindex embeds and indexes the full feed. The reload is
	// idempotent and leaves no stale ids.
	Reindex(ctx context.Context) (int, error)
}
