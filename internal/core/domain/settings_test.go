package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIProvider_IsValid(t *testing.T) {
	assert.True(t, AIProviderOllama.IsValid())
	assert.True(t, AIProviderOpenAI.IsValid())
	assert.True(t, AIProviderAnthropic.IsValid())
	assert.False(t, AIProvider("cohere").IsValid())
	assert.False(t, AIProvider("").IsValid())
}

func TestAIProvider_RequiresAPIKey(t *testing.T) {
	assert.False(t, AIProviderOllama.RequiresAPIKey())
	assert.True(t, AIProviderOpenAI.RequiresAPIKey())
	assert.True(t, AIProviderAnthropic.RequiresAPIKey())
}

func TestEmbeddingSettings_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		settings EmbeddingSettings
		want     bool
	}{
		{"ollama without key", EmbeddingSettings{Provider: AIProviderOllama}, true},
		{"openai with key", EmbeddingSettings{Provider: AIProviderOpenAI, APIKey: "sk-x"}, true},
		{"openai without key", EmbeddingSettings{Provider: AIProviderOpenAI}, false},
		{"unknown provider", EmbeddingSettings{Provider: "cohere"}, false},
		{"empty", EmbeddingSettings{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.IsConfigured())
		})
	}
}

func TestModelSettings_IsConfigured(t *testing.T) {
	assert.True(t, ModelSettings{Provider: AIProviderOllama}.IsConfigured())
	assert.True(t, ModelSettings{Provider: AIProviderAnthropic, APIKey: "sk-x"}.IsConfigured())
	assert.False(t, ModelSettings{Provider: AIProviderAnthropic}.IsConfigured())
}

func TestIndexBackend_IsValid(t *testing.T) {
	assert.True(t, IndexBackendMemory.IsValid())
	assert.True(t, IndexBackendSQLite.IsValid())
	assert.False(t, IndexBackend("redis").IsValid())
}

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	// Defaults must work against a local Ollama with no API keys.
	assert.True(t, settings.Embedding.IsConfigured())
	assert.True(t, settings.Model.IsConfigured())
	assert.True(t, settings.Index.Backend.IsValid())
	assert.True(t, settings.Chat.Style.IsValid())
	assert.True(t, settings.Cache.Enabled)
	assert.Positive(t, settings.Cache.Size)
	assert.Positive(t, settings.Cache.TTLSeconds)
}

func TestDefaultModels_CoverAllProviders(t *testing.T) {
	for _, provider := range AllEmbeddingProviders() {
		assert.NotEmpty(t, DefaultEmbeddingModels()[provider], "embedding model for %s", provider)
	}
	for _, provider := range AllModelProviders() {
		assert.NotEmpty(t, DefaultChatModels()[provider], "chat model for %s", provider)
	}
}
