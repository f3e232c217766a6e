package domain

import "time"

// Role identifies the speaker of a conversation turn.
type Role string

// Conversation roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is one message in a session's dialogue. Turns are
// append-only during a session and owned by the caller's session state;
// the core only reads a bounded recent window.
type ConversationTurn struct {
	// Role is who spoke.
	Role Role

	// Content is the message text.
	Content string

	// Timestamp is when the turn was recorded.
	Timestamp time.Time

	// Sources carries the metadata of the documents grounding an
	// assistant turn. Empty for user turns.
	Sources []map[string]string
}

// ConversationType classifies a user message for analytics.
type ConversationType string

// Conversation classifications.
const (
	ConversationGreeting     ConversationType = "greeting"
	ConversationAppreciation ConversationType = "appreciation"
	ConversationMuscle       ConversationType = "muscle_building"
	ConversationWeightLoss   ConversationType = "weight_loss"
	ConversationMealPlanning ConversationType = "meal_planning"
	ConversationQuestion     ConversationType = "question"
	ConversationGeneral      ConversationType = "general_discussion"
)

// RecentTurns returns the last n turns of a history, newest last.
func RecentTurns(history []ConversationTurn, n int) []ConversationTurn {
	if n <= 0 || len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
