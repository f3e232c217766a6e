package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutricoach/nutricoach/internal/core/domain"
)

func newTestSession(index *mockIndex, embedder *mockEmbedder, model *mockChatModel) *Session {
	return NewSession(newTestCoach(index, embedder, model))
}

func TestSession_Chat_NutritionQuestion(t *testing.T) {
	index := &mockIndex{hits: []domain.SearchResult{testHit("a", 0.9, domain.DocTypeFoodItem)}}
	model := &mockChatModel{reply: "Protein helps you build muscle."}
	session := newTestSession(index, &mockEmbedder{}, model)

	reply, err := session.Chat(context.Background(), "How much protein do I need daily?", nil, domain.StyleConversational)

	require.NoError(t, err)
	assert.Equal(t, "Protein helps you build muscle.", reply.Response)
	assert.True(t, reply.ContextUsed)
	assert.Equal(t, domain.ConversationMuscle, reply.Type)
	require.Len(t, reply.Sources, 1)

	history := session.History()
	require.Len(t, history, 2)
	assert.Equal(t, domain.RoleUser, history[0].Role)
	assert.Equal(t, "How much protein do I need daily?", history[0].Content)
	assert.Equal(t, domain.RoleAssistant, history[1].Role)
	assert.Len(t, history[1].Sources, 1)
}

func TestSession_Chat_SmallTalkSkipsRetrieval(t *testing.T) {
	index := &mockIndex{hits: []domain.SearchResult{testHit("a", 0.9, domain.DocTypeFoodItem)}}
	embedder := &mockEmbedder{}
	session := newTestSession(index, embedder, &mockChatModel{reply: "Hello! Ready to talk nutrition?"})

	reply, err := session.Chat(context.Background(), "hi", nil, domain.StyleConversational)

	require.NoError(t, err)
	assert.False(t, reply.ContextUsed)
	assert.Equal(t, domain.ConversationGreeting, reply.Type)
	assert.Empty(t, embedder.queries)
	assert.Empty(t, index.calls)
}

func TestSession_Chat_NutritionContextFromHistory(t *testing.T) {
	index := &mockIndex{hits: []domain.SearchResult{testHit("a", 0.9, domain.DocTypeFoodItem)}}
	model := &mockChatModel{reply: "Chicken, eggs, and lentils are rich in protein."}
	session := newTestSession(index, &mockEmbedder{}, model)

	_, err := session.Chat(context.Background(), "What are good protein sources?", nil, domain.StyleConversational)
	require.NoError(t, err)

	// "sure" alone is neither small talk nor a nutrition term, but the
	// assistant just talked about protein, so retrieval still runs.
	reply, err := session.Chat(context.Background(), "sure", nil, domain.StyleConversational)

	require.NoError(t, err)
	assert.True(t, reply.ContextUsed)
}

func TestSession_Chat_FollowUpEnhancesQuery(t *testing.T) {
	index := &mockIndex{hits: []domain.SearchResult{testHit("a", 0.9, domain.DocTypeFoodItem)}}
	embedder := &mockEmbedder{}
	model := &mockChatModel{reply: "Protein and fiber both matter for satiety."}
	session := newTestSession(index, embedder, model)

	_, err := session.Chat(context.Background(), "What makes food filling?", nil, domain.StyleConversational)
	require.NoError(t, err)

	_, err = session.Chat(context.Background(), "tell me more", nil, domain.StyleConversational)
	require.NoError(t, err)

	last := embedder.queries[len(embedder.queries)-1]
	assert.Equal(t, "tell me more related to protein fiber", last)
}

func TestSession_Chat_RetrievalFailureDegrades(t *testing.T) {
	index := &mockIndex{queryErr: errBackend}
	model := &mockChatModel{reply: "Here is what I know in general."}
	session := newTestSession(index, &mockEmbedder{}, model)

	reply, err := session.Chat(context.Background(), "How many calories in an apple?", nil, domain.StyleConversational)

	require.NoError(t, err)
	assert.Equal(t, "Here is what I know in general.", reply.Response)
	assert.False(t, reply.ContextUsed)
	assert.Empty(t, reply.Sources)
}

func TestSession_Chat_EmptyMessage(t *testing.T) {
	session := newTestSession(&mockIndex{}, &mockEmbedder{}, &mockChatModel{})

	_, err := session.Chat(context.Background(), "  ", nil, domain.StyleConversational)

	require.Error(t, err)
	assert.Empty(t, session.History())
}

func TestSession_ClassifyTypes(t *testing.T) {
	tests := []struct {
		message string
		want    domain.ConversationType
	}{
		{"hello there", domain.ConversationGreeting},
		{"thanks a lot", domain.ConversationAppreciation},
		{"best protein for muscle", domain.ConversationMuscle},
		{"how do I lose fat", domain.ConversationWeightLoss},
		{"plan my dinner", domain.ConversationMealPlanning},
		{"is sugar bad?", domain.ConversationQuestion},
		{"I went for a walk today", domain.ConversationGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyConversation(tt.message))
		})
	}
}

func TestSession_FollowUpSuggestions(t *testing.T) {
	index := &mockIndex{hits: []domain.SearchResult{testHit("a", 0.9, domain.DocTypeFoodItem)}}
	model := &mockChatModel{reply: "Protein is essential for recovery."}
	session := newTestSession(index, &mockEmbedder{}, model)

	reply, err := session.Chat(context.Background(), "Why does protein matter?", nil, domain.StyleConversational)

	require.NoError(t, err)
	assert.Equal(t, proteinFollowUps, reply.FollowUps)
	assert.Equal(t, proteinFollowUps, session.SuggestFollowUps())
}

func TestSession_FollowUpSuggestions_Generic(t *testing.T) {
	index := &mockIndex{hits: []domain.SearchResult{testHit("a", 0.9, domain.DocTypeFoodItem)}}
	model := &mockChatModel{reply: "Hydration is key."}
	session := newTestSession(index, &mockEmbedder{}, model)

	reply, err := session.Chat(context.Background(), "Any nutrition tips?", nil, domain.StyleConversational)

	require.NoError(t, err)
	require.Len(t, reply.FollowUps, 3)
	assert.Equal(t, genericFollowUps[:3], reply.FollowUps)
}

func TestSession_Reset(t *testing.T) {
	index := &mockIndex{hits: []domain.SearchResult{testHit("a", 0.9, domain.DocTypeFoodItem)}}
	session := newTestSession(index, &mockEmbedder{}, &mockChatModel{reply: "ok"})

	_, err := session.Chat(context.Background(), "What food is rich in iron?", nil, domain.StyleConversational)
	require.NoError(t, err)
	require.NotEmpty(t, session.History())

	session.Reset()

	assert.Empty(t, session.History())
}

func TestSession_IDStable(t *testing.T) {
	session := newTestSession(&mockIndex{}, &mockEmbedder{}, &mockChatModel{})

	id := session.ID()
	assert.NotEmpty(t, id)
	assert.Equal(t, id, session.ID())
	assert.NotEqual(t, id, newTestSession(&mockIndex{}, &mockEmbedder{}, &mockChatModel{}).ID())
}
