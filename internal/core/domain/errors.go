package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidDocument indicates a feed document failed shape
	// validation (empty id or content, unknown type).
	ErrInvalidDocument = errors.New("invalid document")

	// ErrIndexEmpty indicates the document index holds zero documents.
	// Callers are expected to run an ingest before querying again.
	ErrIndexEmpty = errors.New("document index is empty")

	// ErrQueryEmbedding indicates the incoming query could not be
	// embedded. The request is aborted; there is no keyword fallback.
	ErrQueryEmbedding = errors.New("query embedding failed")

	// ErrDimensionMismatch indicates a vector does not match the
	// index's configured embedding dimension. Mixing dimensions in
	// one index is invalid; a full reindex is required.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrEmbedderUnavailable indicates no embedding backend is
	// configured or reachable.
	ErrEmbedderUnavailable = errors.New("embedding service unavailable")

	// ErrModelUnavailable indicates no chat-model backend is
	// configured or reachable.
	ErrModelUnavailable = errors.New("chat model unavailable")

	// ErrFeedUnavailable indicates the document feed could not
	// deliver any documents and no fallback was permitted.
	ErrFeedUnavailable = errors.New("document feed unavailable")
)
