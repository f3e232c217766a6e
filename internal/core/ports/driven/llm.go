package driven

import "context"

// ChatModel is the language-model backend used for answer generation.
//
// Implementations may include:
//   - OpenAI (gpt-4o-mini, gpt-4-turbo)
//   - Ollama (local models)
//
// Failures are recovered by the response generator, which substitutes a
// fixed fallback answer; they are never propagated raw to the caller.
type ChatModel interface {
	// Complete runs one system+user prompt through the model and
	// returns the generated text.
	Complete(ctx context.Context, systemPrompt, userPrompt string, opts CompleteOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the backend is reachable with a lightweight
	// request. Used at startup before committing to a configuration.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// CompleteOptions configures one completion call.
type CompleteOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64

	// PresencePenalty discourages repeating topics. Used by the
	// conversational pipeline for more varied dialogue.
	PresencePenalty float64

	// FrequencyPenalty discourages repeating tokens.
	FrequencyPenalty float64
}
