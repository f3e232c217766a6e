package services

import (
	"strings"

	"github.com/nutricoach/nutricoach/internal/core/domain"
)

// Keyword sets triggering each focus flag. Matching is plain substring
// containment on the lowercased query; false positives are acceptable
// as long as the result is deterministic.
var (
	foodKeywords = []string{
		"food", "eat", "nutrition facts", "calories in", "protein in", "vitamins in",
	}

	knowledgeKeywords = []string{
		"how much", "daily requirement", "recommended", "guidelines", "should i",
	}

	recipeKeywords = []string{
		"recipe", "meal ideas", "combine", "mix", "prepare",
	}

	mealPlanKeywords = []string{
		"meal plan", "diet plan", "weekly", "daily meals", "menu",
	}

	sportsKeywords = []string{
		"workout", "exercise", "athletic", "performance", "recovery",
		"pre-workout", "post-workout",
	}

	followUpKeywords = []string{
		"what about", "tell me more", "can you explain", "more details",
		"also", "additionally", "further",
	}

	clarificationKeywords = []string{
		"which", "how much", "how many", "when should", "can you be more specific",
	}
)

// topicFlag maps a topic keyword found in recent assistant turns to the
// strategy flag it keeps alive.
type topicFlag struct {
	keywords []string
	apply    func(*domain.QueryStrategy)
}

var historyTopics = []topicFlag{
	{[]string{"protein"}, func(s *domain.QueryStrategy) { s.FoodFocus = true }},
	{[]string{"weight"}, func(s *domain.QueryStrategy) { s.KnowledgeFocus = true }},
	{[]string{"workout", "exercise"}, func(s *domain.QueryStrategy) { s.SportsNutritionFocus = true }},
	{[]string{"meal", "breakfast"}, func(s *domain.QueryStrategy) { s.MealPlanningFocus = true }},
}

// historyWindow is how many recent turns are scanned for topic carryover.
const historyWindow = 4

// AnalyzeQuery classifies a query (and, when history is supplied, the
// recent dialogue) into the focus flags that steer retrieval. It is a
// pure function: deterministic given identical input, no side effects.
//
// Conversation topic persistence outweighs the current turn: a topic
// keyword in a recent assistant turn sets its focus flag even when the
// current query never mentions it.
func AnalyzeQuery(query string, history []domain.ConversationTurn) domain.QueryStrategy {
	q := strings.ToLower(query)

	var strategy domain.QueryStrategy
	strategy.FoodFocus = containsAny(q, foodKeywords)
	strategy.KnowledgeFocus = containsAny(q, knowledgeKeywords)
	strategy.RecipeFocus = containsAny(q, recipeKeywords)
	strategy.MealPlanningFocus = containsAny(q, mealPlanKeywords)
	strategy.SportsNutritionFocus = containsAny(q, sportsKeywords)
	strategy.FollowUpQuestion = containsAny(q, followUpKeywords)
	strategy.ClarificationRequest = containsAny(q, clarificationKeywords)

	if len(history) >= 2 {
		for _, turn := range domain.RecentTurns(history, historyWindow) {
			if turn.Role != domain.RoleAssistant {
				continue
			}
			content := strings.ToLower(turn.Content)
			for _, topic := range historyTopics {
				if containsAny(content, topic.keywords) {
					topic.apply(&strategy)
				}
			}
		}
	}

	return strategy
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
