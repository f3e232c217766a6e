// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Embedder: Turns text into fixed-length vectors (local model server or remote API)
//   - VectorIndex: Stores embedded documents, answers k-NN queries with metadata filters
//   - ChatModel: One-shot language-model completion for answer generation
//   - DocumentFeed: Delivers the ordered document set for (re)indexing
//
// SettingsStore is optional: the composition root may wire settings
// from any source.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
