package domain

// ResponseStyle selects the length and register of a generated answer.
type ResponseStyle string

// Available response styles.
const (
	// StyleBrief asks for a 2-3 sentence answer.
	StyleBrief ResponseStyle = "brief"

	// StyleComprehensive asks for a thorough answer with
	// practical recommendations. This is the default.
	StyleComprehensive ResponseStyle = "comprehensive"

	// StyleDetailed asks for an in-depth answer with multiple options.
	StyleDetailed ResponseStyle = "detailed"

	// StyleConversational asks for a natural dialogue register with
	// follow-up questions. Used by chat sessions.
	StyleConversational ResponseStyle = "conversational"
)

// IsValid returns true if the style is recognised.
func (s ResponseStyle) IsValid() bool {
	switch s {
	case StyleBrief, StyleComprehensive, StyleDetailed, StyleConversational:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s ResponseStyle) String() string {
	return string(s)
}

// Answer is the result of one retrieval-augmented generation request.
// Response is always populated, even when generation fails and the
// fixed fallback text is substituted.
type Answer struct {
	// Response is the generated (or fallback) answer text.
	Response string

	// Sources is the metadata of the documents used as grounding,
	// in retrieval rank order.
	Sources []map[string]string

	// ContextCount is the number of documents in the context block.
	ContextCount int

	// Strategy is the query analysis that steered retrieval.
	Strategy QueryStrategy
}

// ChatReply is the result of one conversational turn. It extends Answer
// with conversation metadata.
type ChatReply struct {
	Answer

	// ContextUsed reports whether retrieval ran for this turn.
	ContextUsed bool

	// Type classifies the user message for analytics.
	Type ConversationType

	// FollowUps are up to three suggested next questions.
	FollowUps []string
}

// FoodRecommendations groups goal-driven food suggestions by their
// metadata category.
type FoodRecommendations struct {
	// Goal is the caller-stated objective, e.g. "muscle building".
	Goal string

	// ByCategory maps a food category to its recommended foods,
	// each in retrieval rank order.
	ByCategory map[string][]RecommendedFood

	// TotalFoods is the number of foods across all categories.
	TotalFoods int
}

// RecommendedFood is one food suggestion inside a recommendation set.
type RecommendedFood struct {
	Name      string
	Calories  string
	Protein   string
	Benefits  string
	Relevance float64
}
