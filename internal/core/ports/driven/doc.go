// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - EmbeddingService: converts text into fixed-dimension vectors
//   - VectorStore: collection lifecycle, upsert, similarity search
//   - LLMService: text completion for answers and suggestions
//   - ProfileStore: company profile persistence (singleton)
//   - DocumentStore: extracted document records
//   - HistoryStore: generation/query history
//
// # Optional Interfaces
//
//   - Extractor: file/URL content extraction. Only needed by callers that
//     ingest documents rather than pre-extracted text.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: any adapter or extractor package
package driven
