package domain

const unknownDescription = "Unknown"

// AIProvider identifies a backend for embeddings or chat completion.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is the Anthropic cloud API (chat only).
	AIProviderAnthropic AIProvider = "anthropic"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderAnthropic
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	default:
		return unknownDescription
	}
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// Provider is the embedding backend.
	Provider AIProvider

	// Model is the embedding model name.
	Model string

	// BaseURL is the API endpoint (for Ollama or API-compatible hosts).
	BaseURL string

	// APIKey is the API key (for OpenAI).
	APIKey string

	// Dimensions overrides the model's default vector size.
	Dimensions int
}

// IsConfigured returns true if the embedding provider is set up.
func (e EmbeddingSettings) IsConfigured() bool {
	if !e.Provider.IsValid() {
		return false
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return false
	}
	return true
}

// ModelSettings holds chat model provider configuration.
type ModelSettings struct {
	// Provider is the chat model backend.
	Provider AIProvider

	// Model is the chat model name.
	Model string

	// BaseURL is the API endpoint (for Ollama or API-compatible hosts).
	BaseURL string

	// APIKey is the API key (for OpenAI/Anthropic).
	APIKey string
}

// IsConfigured returns true if the chat model provider is set up.
func (m ModelSettings) IsConfigured() bool {
	if !m.Provider.IsValid() {
		return false
	}
	if m.Provider.RequiresAPIKey() && m.APIKey == "" {
		return false
	}
	return true
}

// IndexBackend selects where embedded documents are stored.
type IndexBackend string

// Available index backends.
const (
	// IndexBackendMemory keeps vectors in process memory; the index
	// is rebuilt on every start.
	IndexBackendMemory IndexBackend = "memory"

	// IndexBackendSQLite persists vectors to a local database file.
	IndexBackendSQLite IndexBackend = "sqlite"
)

// IsValid returns true if the index backend is recognised.
func (b IndexBackend) IsValid() bool {
	switch b {
	case IndexBackendMemory, IndexBackendSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b IndexBackend) String() string {
	return string(b)
}

// IndexSettings holds vector index configuration.
type IndexSettings struct {
	// Backend selects the index implementation.
	Backend IndexBackend

	// Path is the database file location (sqlite backend only).
	Path string
}

// FeedSettings holds document feed configuration.
type FeedSettings struct {
	// Path is the JSON knowledge-base file. When empty, the built-in
	// seed corpus is used.
	Path string
}

// CacheSettings holds embedding cache configuration.
type CacheSettings struct {
	// Enabled turns the query-embedding cache on.
	Enabled bool

	// Size is the maximum number of cached embeddings.
	Size int

	// TTLSeconds is how long a cached embedding stays valid.
	TTLSeconds int
}

// ChatSettings holds conversational defaults.
type ChatSettings struct {
	// Style is the default response style.
	Style ResponseStyle
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Embedding holds embedding provider settings.
	Embedding EmbeddingSettings

	// Model holds chat model provider settings.
	Model ModelSettings

	// Index holds vector index settings.
	Index IndexSettings

	// Feed holds document feed settings.
	Feed FeedSettings

	// Cache holds embedding cache settings.
	Cache CacheSettings

	// Chat holds conversational defaults.
	Chat ChatSettings
}

// DefaultAppSettings returns settings that work against a local Ollama
// instance with no further configuration.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Embedding: EmbeddingSettings{
			Provider: AIProviderOllama,
			Model:    "nomic-embed-text",
		},
		Model: ModelSettings{
			Provider: AIProviderOllama,
			Model:    "llama3.2",
		},
		Index: IndexSettings{
			Backend: IndexBackendMemory,
		},
		Cache: CacheSettings{
			Enabled:    true,
			Size:       512,
			TTLSeconds: 3600,
		},
		Chat: ChatSettings{
			Style: StyleComprehensive,
		},
	}
}

// AllEmbeddingProviders returns providers that support embeddings.
func AllEmbeddingProviders() []AIProvider {
	return []AIProvider{
		AIProviderOllama,
		AIProviderOpenAI,
	}
}

// AllModelProviders returns providers that support chat completion.
func AllModelProviders() []AIProvider {
	return []AIProvider{
		AIProviderOllama,
		AIProviderOpenAI,
		AIProviderAnthropic,
	}
}

// DefaultEmbeddingModels returns default models for each embedding provider.
func DefaultEmbeddingModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOllama: "nomic-embed-text",
		AIProviderOpenAI: "text-embedding-3-small",
	}
}

// DefaultChatModels returns default models for each chat provider.
func DefaultChatModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOllama:    "llama3.2",
		AIProviderOpenAI:    "gpt-4o-mini",
		AIProviderAnthropic: "claude-3-5-sonnet-latest",
	}
}

// EmbeddingDimensions returns the vector dimensions for known models.
func EmbeddingDimensions() map[string]int {
	return map[string]int{
		// Ollama models
		"nomic-embed-text":  768,
		"mxbai-embed-large": 1024,
		"all-minilm":        384,
		// OpenAI models
		"text-embedding-3-small": 1536,
		"text-embedding-3-large": 3072,
		"text-embedding-ada-002": 1536,
	}
}
