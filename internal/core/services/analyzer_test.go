package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutricoach/nutricoach/internal/core/domain"
)

func TestAnalyzeQuery_KeywordFamilies(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  domain.QueryStrategy
	}{
		{
			name:  "food",
			query: "What food has the most iron?",
			want:  domain.QueryStrategy{FoodFocus: true},
		},
		{
			name:  "knowledge",
			query: "What are the recommended guidelines for sodium?",
			want:  domain.QueryStrategy{KnowledgeFocus: true},
		},
		{
			name:  "recipe",
			query: "Give me a recipe with lentils",
			want:  domain.QueryStrategy{RecipeFocus: true},
		},
		{
			name:  "meal planning",
			query: "Help me build a weekly menu",
			want:  domain.QueryStrategy{MealPlanningFocus: true},
		},
		{
			name:  "sports",
			query: "Best snack for workout recovery",
			want:  domain.QueryStrategy{SportsNutritionFocus: true},
		},
		{
			name:  "follow up",
			query: "Tell me more please",
			want:  domain.QueryStrategy{FollowUpQuestion: true},
		},
		{
			name:  "clarification",
			query: "Which is better for me?",
			want:  domain.QueryStrategy{ClarificationRequest: true},
		},
		{
			name:  "no match",
			query: "Is the sky blue?",
			want:  domain.QueryStrategy{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeQuery(tt.query, nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnalyzeQuery_ProteinQuestion(t *testing.T) {
	strategy := AnalyzeQuery("How much protein do I need daily?", nil)

	// "how much" sits in both the knowledge and clarification sets.
	assert.True(t, strategy.KnowledgeFocus)
	assert.True(t, strategy.ClarificationRequest)
	assert.False(t, strategy.FoodFocus)
	assert.False(t, strategy.FollowUpQuestion)
	assert.True(t, strategy.HasFocus())
}

func TestAnalyzeQuery_CaseInsensitive(t *testing.T) {
	assert.Equal(t,
		AnalyzeQuery("what FOOD should I EAT?", nil),
		AnalyzeQuery("What food should I eat?", nil))
}

func TestAnalyzeQuery_HistoryCarryover(t *testing.T) {
	history := []domain.ConversationTurn{
		{Role: domain.RoleUser, Content: "What should I eat for breakfast?"},
		{Role: domain.RoleAssistant, Content: "Oats make a solid breakfast meal with steady energy."},
	}

	strategy := AnalyzeQuery("What about meal prep tips?", history)

	// Follow-up phrasing from the query, meal planning from the
	// assistant's recent turn.
	assert.True(t, strategy.FollowUpQuestion)
	assert.True(t, strategy.MealPlanningFocus)
	assert.False(t, strategy.RecipeFocus)
}

func TestAnalyzeQuery_HistoryTopicWithoutQueryMention(t *testing.T) {
	history := []domain.ConversationTurn{
		{Role: domain.RoleUser, Content: "Best sources?"},
		{Role: domain.RoleAssistant, Content: "Chicken and eggs are strong protein sources."},
	}

	strategy := AnalyzeQuery("Anything cheaper?", history)

	assert.True(t, strategy.FoodFocus)
}

func TestAnalyzeQuery_ShortHistoryIgnored(t *testing.T) {
	history := []domain.ConversationTurn{
		{Role: domain.RoleAssistant, Content: "Protein matters for workout recovery."},
	}

	strategy := AnalyzeQuery("Anything else?", history)

	assert.Equal(t, domain.QueryStrategy{}, strategy)
}

func TestAnalyzeQuery_UserTurnsNotScanned(t *testing.T) {
	history := []domain.ConversationTurn{
		{Role: domain.RoleUser, Content: "I love protein and exercise"},
		{Role: domain.RoleUser, Content: "and meal planning too"},
	}

	strategy := AnalyzeQuery("Anything else?", history)

	assert.Equal(t, domain.QueryStrategy{}, strategy)
}
