// Package ai provides factory functions for creating AI backend adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	ollamaembed "github.com/nutricoach/nutricoach/internal/adapters/driven/embedding/ollama"
	openaiembed "github.com/nutricoach/nutricoach/internal/adapters/driven/embedding/openai"
	anthropicllm "github.com/nutricoach/nutricoach/internal/adapters/driven/llm/anthropic"
	ollamallm "github.com/nutricoach/nutricoach/internal/adapters/driven/llm/ollama"
	openaillm "github.com/nutricoach/nutricoach/internal/adapters/driven/llm/openai"
	"github.com/nutricoach/nutricoach/internal/core/domain"
	"github.com/nutricoach/nutricoach/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for backend connectivity validation.
const pingTimeout = 5 * time.Second

// CreateAndValidateEmbedder creates an embedder and validates connectivity.
// Returns the embedder if successful, or an error with guidance.
func CreateAndValidateEmbedder(settings domain.EmbeddingSettings) (driven.Embedder, error) {
	embedder, err := CreateEmbedder(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Check the [embedding] section of your config",
			domain.ErrEmbedderUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := embedder.Ping(ctx); err != nil {
		embedder.Close()
		return nil, fmt.Errorf("%w: backend unreachable (%w). Check the [embedding] section of your config",
			domain.ErrEmbedderUnavailable, err)
	}

	return embedder, nil
}

// CreateAndValidateChatModel creates a chat model and validates connectivity.
// Returns the model if successful, or an error with guidance.
func CreateAndValidateChatModel(settings domain.ModelSettings) (driven.ChatModel, error) {
	model, err := CreateChatModel(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Check the [model] section of your config",
			domain.ErrModelUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := model.Ping(ctx); err != nil {
		model.Close()
		return nil, fmt.Errorf("%w: backend unreachable (%w). Check the [model] section of your config",
			domain.ErrModelUnavailable, err)
	}

	return model, nil
}

// CreateEmbedder creates the appropriate embedder based on settings.
func CreateEmbedder(settings domain.EmbeddingSettings) (driven.Embedder, error) {
	if !settings.IsConfigured() {
		return nil, fmt.Errorf("embedding provider not configured")
	}

	switch settings.Provider {
	case domain.AIProviderOllama:
		return createOllamaEmbedder(settings), nil

	case domain.AIProviderOpenAI:
		return createOpenAIEmbedder(settings)

	case domain.AIProviderAnthropic:
		// Anthropic does not support embeddings.
		return nil, fmt.Errorf("anthropic does not support embeddings, use ollama or openai")

	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", settings.Provider)
	}
}

// CreateChatModel creates the appropriate chat model based on settings.
func CreateChatModel(settings domain.ModelSettings) (driven.ChatModel, error) {
	if !settings.IsConfigured() {
		return nil, fmt.Errorf("chat model provider not configured")
	}

	switch settings.Provider {
	case domain.AIProviderOllama:
		return ollamallm.New(ollamallm.Config{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		}), nil

	case domain.AIProviderOpenAI:
		return openaillm.New(openaillm.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case domain.AIProviderAnthropic:
		return anthropicllm.New(anthropicllm.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	default:
		return nil, fmt.Errorf("unsupported chat model provider: %s", settings.Provider)
	}
}

// createOllamaEmbedder creates an Ollama embedder.
func createOllamaEmbedder(settings domain.EmbeddingSettings) driven.Embedder {
	dimensions := settings.Dimensions
	if dimensions == 0 {
		dimensions = domain.EmbeddingDimensions()[settings.Model]
	}
	if dimensions == 0 {
		dimensions = ollamaembed.DefaultDimensions
	}

	return ollamaembed.New(ollamaembed.Config{
		BaseURL:    settings.BaseURL,
		Model:      settings.Model,
		Dimensions: dimensions,
	})
}

// createOpenAIEmbedder creates an OpenAI embedder.
func createOpenAIEmbedder(settings domain.EmbeddingSettings) (driven.Embedder, error) {
	dimensions := settings.Dimensions
	if dimensions == 0 {
		dimensions = domain.EmbeddingDimensions()[settings.Model]
	}

	return openaiembed.New(openaiembed.Config{
		APIKey:     settings.APIKey,
		BaseURL:    settings.BaseURL,
		Model:      settings.Model,
		Dimensions: dimensions,
	})
}
