package driven

import "github.com/custodia-labs/contentgen-cli/internal/core/domain"

// Chunker splits extracted documents into embeddable chunks.
type Chunker interface {
	// ChunkDocument splits the document into word-window chunks tagged
	// with their position. An empty document yields no chunks.
	ChunkDocument(doc domain.ExtractedDocument) []domain.DocumentChunk
}
