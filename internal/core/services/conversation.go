package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nutricoach/nutricoach/internal/core/domain"
	"github.com/nutricoach/nutricoach/internal/core/ports/driving"
	"github.com/nutricoach/nutricoach/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.ChatSession = (*Session)(nil)

// nutritionIndicators are terms that mark a message as needing
// knowledge-base context. Checked against both the current message and
// recent assistant turns.
var nutritionIndicators = []string{
	"protein", "calories", "vitamins", "minerals", "carbs", "fat", "fiber",
	"nutrition", "diet", "meal", "food", "eat", "weight loss", "muscle",
	"breakfast", "lunch", "dinner", "snack", "recipe", "ingredient",
}

// smallTalk are exact messages that never trigger retrieval.
var smallTalk = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {}, "thanks": {}, "thank you": {},
	"okay": {}, "ok": {}, "yes": {}, "no": {},
}

// enhancementTerms seed the query enhancement for follow-up questions.
var enhancementTerms = []string{
	"protein", "carbs", "fat", "vitamins", "minerals", "calories", "fiber",
}

// Canned follow-up suggestion banks, keyed off the assistant's last
// response. At most three are surfaced per turn.
var (
	proteinFollowUps = []string{
		"How much protein do I need daily?",
		"When should I eat protein?",
		"What are the best protein sources for me?",
	}
	weightLossFollowUps = []string{
		"How fast should I lose weight?",
		"What foods should I avoid?",
		"Can you help me plan my meals?",
	}
	mealFollowUps = []string{
		"Can you suggest specific recipes?",
		"What about meal prep ideas?",
		"How do I make this work with my schedule?",
	}
	genericFollowUps = []string{
		"Can you give me specific examples?",
		"How do I get started with this?",
		"What should I focus on first?",
		"Any tips for staying consistent?",
	}
)

const maxFollowUps = 3

// Session is a conversational wrapper around the pipeline. It owns an
// append-only turn history and decides per message whether retrieval
// is worth running at all.
type Session struct {
	id        string
	retriever *Retriever
	responder *Responder

	mu        sync.Mutex
	history   []domain.ConversationTurn
	followUps []string
}

// NewSession starts an empty chat session on top of the coach's
// retriever and responder.
func NewSession(coach *Coach) *Session {
	return &Session{
		id:        uuid.NewString(),
		retriever: coach.Retriever(),
		responder: coach.Responder(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Chat handles one user message. Retrieval failures degrade to a
// contextless reply rather than aborting the turn; the reply always
// carries a response string.
func (s *Session) Chat(
	ctx context.Context, message string, profile *domain.UserProfile,
	style domain.ResponseStyle,
) (*domain.ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: empty message", domain.ErrInvalidDocument)
	}

	s.mu.Lock()
	history := append([]domain.ConversationTurn(nil), s.history...)
	s.mu.Unlock()

	strategy := AnalyzeQuery(message, history)

	var results []domain.SearchResult
	if s.needsContext(message, history) {
		query := buildEnhancedQuery(message, history, strategy)
		var err error
		results, err = s.retriever.Retrieve(ctx, query, strategy, ModeConversational)
		if err != nil {
			logger.Warn("Context retrieval failed, continuing without: %v", err)
			results = nil
		}
	} else {
		logger.Debug("Skipping retrieval for small talk: %q", message)
	}

	contextBlock := ""
	if len(results) > 0 {
		contextBlock = BuildContextBlock(results)
	}

	response := s.responder.Generate(ctx, GenerateRequest{
		Query:          message,
		ContextBlock:   contextBlock,
		Profile:        profile,
		History:        history,
		Style:          style,
		Conversational: true,
	})

	sources := sourceMetadata(results)
	now := time.Now()

	s.mu.Lock()
	s.history = append(s.history,
		domain.ConversationTurn{Role: domain.RoleUser, Content: message, Timestamp: now},
		domain.ConversationTurn{Role: domain.RoleAssistant, Content: response, Timestamp: now, Sources: sources},
	)
	s.followUps = suggestFollowUps(response)
	followUps := s.followUps
	s.mu.Unlock()

	return &domain.ChatReply{
		Answer: domain.Answer{
			Response:     response,
			Sources:      sources,
			ContextCount: len(results),
			Strategy:     strategy,
		},
		ContextUsed: len(results) > 0,
		Type:        classifyConversation(message),
		FollowUps:   followUps,
	}, nil
}

// History returns a copy of the session's turns, oldest first.
func (s *Session) History() []domain.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ConversationTurn(nil), s.history...)
}

// SuggestFollowUps returns the suggestions computed for the most
// recent assistant reply, or the generic bank before any exchange.
func (s *Session) SuggestFollowUps() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.followUps) == 0 {
		return genericFollowUps[:maxFollowUps]
	}
	return s.followUps
}

// Reset clears the session history.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.followUps = nil
}

// needsContext decides whether the knowledge base should be consulted.
// Nutrition terms in the message or in recent assistant turns force
// retrieval; exact small-talk messages skip it; everything else
// retrieves by default.
func (s *Session) needsContext(message string, history []domain.ConversationTurn) bool {
	lower := strings.ToLower(message)

	if containsAny(lower, nutritionIndicators) {
		return true
	}

	if len(history) >= 2 {
		for _, turn := range domain.RecentTurns(history, historyWindow) {
			if turn.Role != domain.RoleAssistant {
				continue
			}
			if containsAny(strings.ToLower(turn.Content), nutritionIndicators) {
				return true
			}
		}
	}

	if _, ok := smallTalk[lower]; ok {
		return false
	}
	return true
}

// buildEnhancedQuery widens a follow-up question with nutrition terms
// the assistant mentioned recently, so "tell me more" lands near the
// topic under discussion.
func buildEnhancedQuery(message string, history []domain.ConversationTurn, strategy domain.QueryStrategy) string {
	if !strategy.FollowUpQuestion || len(history) == 0 {
		return message
	}

	var recent []string
	for _, turn := range domain.RecentTurns(history, historyWindow) {
		if turn.Role == domain.RoleAssistant {
			recent = append(recent, turn.Content)
		}
	}
	if len(recent) == 0 {
		return message
	}

	recentText := strings.ToLower(strings.Join(recent, " "))
	var mentioned []string
	for _, term := range enhancementTerms {
		if strings.Contains(recentText, term) {
			mentioned = append(mentioned, term)
		}
	}
	if len(mentioned) == 0 {
		return message
	}
	return message + " related to " + strings.Join(mentioned, " ")
}

func classifyConversation(message string) domain.ConversationType {
	lower := strings.ToLower(message)
	switch {
	case containsAny(lower, []string{"hi", "hello", "hey"}):
		return domain.ConversationGreeting
	case containsAny(lower, []string{"thanks", "thank you"}):
		return domain.ConversationAppreciation
	case containsAny(lower, []string{"protein", "muscle", "building"}):
		return domain.ConversationMuscle
	case containsAny(lower, []string{"weight", "lose", "loss"}):
		return domain.ConversationWeightLoss
	case containsAny(lower, []string{"meal", "plan", "breakfast", "dinner"}):
		return domain.ConversationMealPlanning
	case strings.Contains(message, "?"):
		return domain.ConversationQuestion
	default:
		return domain.ConversationGeneral
	}
}

func suggestFollowUps(response string) []string {
	lower := strings.ToLower(response)

	var suggestions []string
	if strings.Contains(lower, "protein") {
		suggestions = append(suggestions, proteinFollowUps...)
	}
	if strings.Contains(lower, "weight loss") {
		suggestions = append(suggestions, weightLossFollowUps...)
	}
	if strings.Contains(lower, "meal") || strings.Contains(lower, "breakfast") {
		suggestions = append(suggestions, mealFollowUps...)
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, genericFollowUps...)
	}
	if len(suggestions) > maxFollowUps {
		suggestions = suggestions[:maxFollowUps]
	}
	return suggestions
}
