package services

import (
	"fmt"
	"strings"

	"github.com/nutricoach/nutricoach/internal/core/domain"
)

// EmptyContextBlock is returned when retrieval produced no results, so
// the responder always receives well-formed input.
const EmptyContextBlock = "No specific nutrition database context found for this query."

// BuildContextBlock formats retrieved documents into the bounded
// textual context passed to the language model. Each result becomes one
// numbered block labelled by document type, in the order received
// (already similarity-sorted by the retriever), joined by blank lines.
func BuildContextBlock(results []domain.SearchResult) string {
	if len(results) == 0 {
		return EmptyContextBlock
	}

	parts := make([]string, 0, len(results))
	for i, result := range results {
		parts = append(parts, formatResult(i+1, result))
	}
	return strings.Join(parts, "\n")
}

func formatResult(n int, result domain.SearchResult) string {
	switch result.Metadata[domain.MetaDocType] {
	case domain.DocTypeFoodItem.String():
		name := metadataOr(result.Metadata, "food_name", "Unknown Food")
		return fmt.Sprintf("%d. FOOD: %s\n   %s\n", n, name, result.Content)
	case domain.DocTypeKnowledge.String():
		topic := metadataOr(result.Metadata, "topic", "Nutrition Info")
		return fmt.Sprintf("%d. GUIDELINE: %s\n   %s\n", n, topic, result.Content)
	case domain.DocTypeRecipe.String():
		name := metadataOr(result.Metadata, "recipe_name", "Recipe")
		return fmt.Sprintf("%d. RECIPE: %s\n   %s\n", n, name, result.Content)
	default:
		return fmt.Sprintf("%d. INFO: %s\n", n, result.Content)
	}
}

func metadataOr(metadata map[string]string, key, fallback string) string {
	if v := metadata[key]; v != "" {
		return v
	}
	return fallback
}
