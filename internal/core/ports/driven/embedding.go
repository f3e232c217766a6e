package driven

import "context"

// Embedder generates vector embeddings from text.
//
// Implementations may include:
//   - Ollama (all-minilm, nomic-embed-text) against a local model server
//   - OpenAI (text-embedding-3-small, text-embedding-ada-002)
//
// A local backend must be deterministic given identical input and model
// version.
type Embedder interface {
	// EmbedQuery embeds a single incoming query. A failure here aborts
	// the request; callers must not degrade to a zero vector.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)

	// EmbedDocuments embeds a batch of document texts. The result is
	// length- and order-preserving: result[i] embeds texts[i]. A
	// per-item backend failure substitutes a zero vector of the
	// configured dimension for that item only and is logged; the
	// batch always completes.
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g. 384, 1536).
	// It must match the VectorIndex configuration.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the backend is reachable with a lightweight
	// request. Used at startup before committing to a configuration.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
