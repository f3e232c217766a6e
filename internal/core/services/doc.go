// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The retrieval pipeline runs Analyzer -> Retriever -> context
// assembly -> Responder; Coach wires it for single-turn requests and
// Session wraps it with conversational memory.
//
// Services are pure Go with no CGO or infrastructure dependencies.
package services
