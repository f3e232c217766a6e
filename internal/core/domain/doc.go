// Package domain defines the core business entities for nutricoach.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A unit of nutrition knowledge from the ingestion feed
//   - EmbeddedDocument: A document paired with its embedding vector
//   - SearchResult: A similarity hit against the document index
//   - QueryStrategy: Focus flags steering retrieval for one query
//   - ConversationTurn: One message in a chat session
//   - Answer / ChatReply: Results of a RAG request
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
