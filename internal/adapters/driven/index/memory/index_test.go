package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutricoach/nutricoach/internal/core/domain"
)

func embeddedDoc(id string, docType domain.DocType, vector []float32, metadata map[string]any) domain.EmbeddedDocument {
	return domain.EmbeddedDocument{
		Document: domain.Document{
			ID:       id,
			Type:     docType,
			Content:  "content for " + id,
			Metadata: metadata,
		},
		Vector: vector,
	}
}

func TestIndex_UpsertAndQuery(t *testing.T) {
	idx := New(3)
	ctx := context.Background()

	err := idx.Upsert(ctx, []domain.EmbeddedDocument{
		embeddedDoc("a", domain.DocTypeFoodItem, []float32{1, 0, 0}, map[string]any{"food_name": "Apple"}),
		embeddedDoc("b", domain.DocTypeFoodItem, []float32{0, 1, 0}, nil),
		embeddedDoc("c", domain.DocTypeKnowledge, []float32{0.9, 0.1, 0}, nil),
	})
	require.NoError(t, err)

	results, err := idx.Query(ctx, []float32{1, 0, 0}, 2, nil)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].ID)
	assert.InDelta(t, 1.0, results[0].Similarity, 1e-6)
	assert.Equal(t, "c", results[1].ID)
	assert.Equal(t, "Apple", results[0].Metadata["food_name"])
	assert.Equal(t, "food_item", results[0].Metadata[domain.MetaDocType])
}

func TestIndex_UpsertReplacesByID(t *testing.T) {
	idx := New(3)
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx, []domain.EmbeddedDocument{
		embeddedDoc("a", domain.DocTypeFoodItem, []float32{1, 0, 0}, nil),
	}))
	require.NoError(t, idx.Upsert(ctx, []domain.EmbeddedDocument{
		embeddedDoc("a", domain.DocTypeKnowledge, []float32{0, 1, 0}, nil),
	}))

	count, err := idx.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	results, err := idx.Query(ctx, []float32{0, 1, 0}, 1, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "nutrition_knowledge", results[0].Metadata[domain.MetaDocType])
}

func TestIndex_DimensionMismatch(t *testing.T) {
	idx := New(3)
	ctx := context.Background()

	err := idx.Upsert(ctx, []domain.EmbeddedDocument{
		embeddedDoc("a", domain.DocTypeFoodItem, []float32{1, 0}, nil),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)

	_, err = idx.Query(ctx, []float32{1, 0}, 1, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}

func TestIndex_FirstUpsertFixesDimensions(t *testing.T) {
	idx := New(0)
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx, []domain.EmbeddedDocument{
		embeddedDoc("a", domain.DocTypeFoodItem, []float32{1, 0, 0, 0}, nil),
	}))

	assert.Equal(t, 4, idx.Dimensions())

	err := idx.Upsert(ctx, []domain.EmbeddedDocument{
		embeddedDoc("b", domain.DocTypeFoodItem, []float32{1, 0}, nil),
	})
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}

func TestIndex_QueryFilter(t *testing.T) {
	idx := New(3)
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx, []domain.EmbeddedDocument{
		embeddedDoc("food", domain.DocTypeFoodItem, []float32{1, 0, 0}, nil),
		embeddedDoc("know", domain.DocTypeKnowledge, []float32{1, 0, 0}, nil),
	}))

	results, err := idx.Query(ctx, []float32{1, 0, 0}, 10, map[string]string{
		domain.MetaDocType: "nutrition_knowledge",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "know", results[0].ID)

	// A filter nothing matches returns empty, not an error.
	results, err = idx.Query(ctx, []float32{1, 0, 0}, 10, map[string]string{
		domain.MetaDocType: "meal_template",
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestIndex_QueryKLargerThanIndex(t *testing.T) {
	idx := New(3)
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx, []domain.EmbeddedDocument{
		embeddedDoc("a", domain.DocTypeFoodItem, []float32{1, 0, 0}, nil),
	}))

	results, err := idx.Query(ctx, []float32{1, 0, 0}, 50, nil)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestIndex_ZeroVectorScoresZero(t *testing.T) {
	idx := New(3)
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx, []domain.EmbeddedDocument{
		embeddedDoc("zero", domain.DocTypeFoodItem, []float32{0, 0, 0}, nil),
	}))

	results, err := idx.Query(ctx, []float32{1, 0, 0}, 1, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, 0, results[0].Similarity, 1e-9)
}

func TestIndex_CountByType(t *testing.T) {
	idx := New(3)
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx, []domain.EmbeddedDocument{
		embeddedDoc("a", domain.DocTypeFoodItem, []float32{1, 0, 0}, nil),
		embeddedDoc("b", domain.DocTypeFoodItem, []float32{0, 1, 0}, nil),
		embeddedDoc("c", domain.DocTypeMealTemplate, []float32{0, 0, 1}, nil),
	}))

	counts, err := idx.CountByType(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"food_item": 2, "meal_template": 1}, counts)
}

func TestIndex_Clear(t *testing.T) {
	idx := New(3)
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx, []domain.EmbeddedDocument{
		embeddedDoc("a", domain.DocTypeFoodItem, []float32{1, 0, 0}, nil),
	}))
	require.NoError(t, idx.Clear(ctx))

	count, err := idx.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, 3, idx.Dimensions())
}
