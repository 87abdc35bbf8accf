// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - KnowledgeStore: (question, answer) persistence. SQLite in the
//     default wiring, in-memory for tests and ephemeral runs.
//
// Ports can import the domain package only, never adapters.
package driven
