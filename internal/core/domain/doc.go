// Package domain contains the core business entities for contentgen.
//
// Domain types have no dependencies on adapters or infrastructure.
// They represent the canonical shapes that flow through the ingestion
// and generation pipelines:
//
//   - CompanyProfile: the singleton company record that grounds generation
//   - ExtractedDocument: normalised output of file/URL extraction
//   - DocumentChunk: a word-window of a document, transient during ingestion
//   - VectorPoint / SearchResult: the vector store contract
//   - Suggestion: generated content in its canonical shape
//
// # Import Rules
//
//   - Can Import: standard library only
//   - Cannot Import: any adapter, extractor, or service package
package domain
