package domain

// QueryStrategy is the set of focus flags the analyzer derives for one
// query. Flags are independent heuristics, not mutually exclusive, and
// are recomputed per request.
type QueryStrategy struct {
	// FoodFocus biases retrieval toward food_item documents.
	FoodFocus bool

	// KnowledgeFocus biases retrieval toward guideline documents.
	KnowledgeFocus bool

	// RecipeFocus biases retrieval toward recipe documents.
	RecipeFocus bool

	// MealPlanningFocus biases retrieval toward meal templates.
	MealPlanningFocus bool

	// SportsNutritionFocus biases retrieval toward exercise nutrition.
	SportsNutritionFocus bool

	// FollowUpQuestion marks continuation phrasing ("tell me more").
	FollowUpQuestion bool

	// ClarificationRequest marks quantity or timing questions.
	ClarificationRequest bool
}

// HasFocus returns true if any retrieval-steering focus flag is set.
// The conversational flags (follow-up, clarification) do not count.
func (s QueryStrategy) HasFocus() bool {
	return s.FoodFocus || s.KnowledgeFocus || s.RecipeFocus ||
		s.MealPlanningFocus || s.SportsNutritionFocus
}
