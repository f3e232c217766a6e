package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDocType_IsValid tests document type validation
func TestDocType_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		docType DocType
		valid   bool
	}{
		{"food item", DocTypeFoodItem, true},
		{"knowledge", DocTypeKnowledge, true},
		{"recipe", DocTypeRecipe, true},
		{"meal template", DocTypeMealTemplate, true},
		{"empty", DocType(""), false},
		{"unknown", DocType("blog_post"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.docType.IsValid())
		})
	}
}

// TestDocument_Validate tests structural shape validation
func TestDocument_Validate(t *testing.T) {
	valid := Document{
		ID:      "food_001",
		Type:    DocTypeFoodItem,
		Content: "Chicken breast contains 165 calories and 31g protein per 100g.",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		doc  Document
	}{
		{"empty id", Document{Type: DocTypeFoodItem, Content: "text"}},
		{"whitespace id", Document{ID: "  ", Type: DocTypeFoodItem, Content: "text"}},
		{"empty content", Document{ID: "food_001", Type: DocTypeFoodItem}},
		{"unknown type", Document{ID: "x_001", Type: "blog_post", Content: "text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

// TestFlattenMetadata tests scalar flattening and the doc_type stamp
func TestFlattenMetadata(t *testing.T) {
	doc := Document{
		ID:      "food_001",
		Type:    DocTypeFoodItem,
		Content: "Chicken breast.",
		Metadata: map[string]any{
			"food_name": "Chicken Breast",
			"calories":  165,
			"protein":   31.5,
			"verified":  true,
			"tags":      []string{"lean", "protein"},
			"aliases":   []any{"chicken", 42},
		},
	}

	flat := FlattenMetadata(&doc)

	assert.Equal(t, "Chicken Breast", flat["food_name"])
	assert.Equal(t, "165", flat["calories"])
	assert.Equal(t, "31.5", flat["protein"])
	assert.Equal(t, "true", flat["verified"])
	assert.Equal(t, "lean, protein", flat["tags"])
	assert.Equal(t, "chicken, 42", flat["aliases"])
	assert.Equal(t, "food_item", flat[MetaDocType])
}

// TestFlattenMetadata_TypeOverridesCaller ensures the reserved key always
// reflects the document type, even when the feed set it explicitly.
func TestFlattenMetadata_TypeOverridesCaller(t *testing.T) {
	doc := Document{
		ID:       "knowledge_001",
		Type:     DocTypeKnowledge,
		Content:  "Protein requirements.",
		Metadata: map[string]any{MetaDocType: "food_item"},
	}

	flat := FlattenMetadata(&doc)
	assert.Equal(t, "nutrition_knowledge", flat[MetaDocType])
}

// TestFlattenMetadata_NilMetadata handles documents without metadata
func TestFlattenMetadata_NilMetadata(t *testing.T) {
	doc := Document{ID: "template_0", Type: DocTypeMealTemplate, Content: "text"}

	flat := FlattenMetadata(&doc)
	require.Len(t, flat, 1)
	assert.Equal(t, "meal_template", flat[MetaDocType])
}
