package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DocType identifies the category of an indexed document.
type DocType string

// Available document types.
const (
	// DocTypeFoodItem is a single food with its nutrition profile.
	DocTypeFoodItem DocType = "food_item"

	// DocTypeKnowledge is a guideline or nutrition-science statement.
	DocTypeKnowledge DocType = "nutrition_knowledge"

	// DocTypeRecipe is a recipe or food combination.
	DocTypeRecipe DocType = "recipe_combination"

	// DocTypeMealTemplate is a meal-planning template.
	DocTypeMealTemplate DocType = "meal_template"
)

// IsValid returns true if the document type is recognised.
func (t DocType) IsValid() bool {
	switch t {
	case DocTypeFoodItem, DocTypeKnowledge, DocTypeRecipe, DocTypeMealTemplate:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t DocType) String() string {
	return string(t)
}

// MetaDocType is the reserved metadata key carrying the document type.
// It is always written during ingestion so type filters can be expressed
// as ordinary metadata filters.
const MetaDocType = "doc_type"

// Document is a unit of nutrition knowledge as delivered by the
// ingestion feed. Content is the dense natural-language text that gets
// embedded and returned verbatim in search results.
type Document struct {
	// ID is the unique identifier, e.g. "food_042".
	ID string

	// Type is the document category.
	Type DocType

	// Content is the full searchable text.
	Content string

	// Metadata contains arbitrary scalar or list values. It is
	// flattened to strings before indexing; see FlattenMetadata.
	Metadata map[string]any
}

// Validate checks the structural shape of a feed document.
// Content semantics are not validated.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: document id is empty", ErrInvalidDocument)
	}
	if strings.TrimSpace(d.Content) == "" {
		return fmt.Errorf("%w: document %q has empty content", ErrInvalidDocument, d.ID)
	}
	if !d.Type.IsValid() {
		return fmt.Errorf("%w: document %q has unknown type %q", ErrInvalidDocument, d.ID, d.Type)
	}
	return nil
}

// EmbeddedDocument is a document paired with its vector. Every vector in
// one index must have the index's configured dimension.
type EmbeddedDocument struct {
	// Document carries id, content and flattened metadata.
	Document

	// Vector is the embedding of Content.
	Vector []float32
}

// FlattenMetadata converts arbitrary metadata values to strings and
// stamps the reserved doc_type key from the document type. List values
// join with ", " so they stay filterable as plain strings.
func FlattenMetadata(doc *Document) map[string]string {
	flat := make(map[string]string, len(doc.Metadata)+1)
	for key, value := range doc.Metadata {
		flat[key] = flattenValue(value)
	}
	flat[MetaDocType] = doc.Type.String()
	return flat
}

func flattenValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = flattenValue(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
