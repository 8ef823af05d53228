// Package chunker provides an overlapping word-window text chunker.
//
// Documents are split on whitespace into words, then emitted as windows of
// chunkSize words advancing by chunkSize-overlap words per step. The
// overlap exists so that semantic context spanning a chunk boundary is not
// lost to retrieval.
package chunker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
)

// DefaultChunkSize is the default number of words per chunk.
const DefaultChunkSize = 1000

// DefaultOverlap is the default number of overlapping words.
const DefaultOverlap = 200

// Chunker splits text into overlapping word windows.
// It is deterministic, pure, and performs no I/O.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in words.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in words.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a chunker with the given options.
// Returns domain.ErrInvalidChunking when overlap >= chunk size: the window
// step would be non-positive and chunking could never terminate.
func New(opts ...Option) (*Chunker, error) {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.overlap >= c.chunkSize {
		return nil, domain.ErrInvalidChunking
	}

	return c, nil
}

// Split splits content into overlapping word windows. Each window is
// re-joined with single spaces; empty windows are dropped. Emission stops
// once a window reaches the final word, so a text of W words produces
// ceil(max(W-overlap,1)/(chunkSize-overlap)) chunks and one chunk when
// W <= chunkSize.
func (c *Chunker) Split(content string) []string {
	words := strings.Fields(content)
	if len(words) == 0 {
		return nil
	}

	step := c.chunkSize - c.overlap
	chunks := make([]string, 0, (len(words)/step)+1)

	for start := 0; ; start += step {
		end := start + c.chunkSize
		if end > len(words) {
			end = len(words)
		}

		chunks = append(chunks, strings.Join(words[start:end], " "))

		if end == len(words) {
			break
		}
	}

	return chunks
}

// ChunkDocument splits an extracted document into tagged chunks, assigning
// each a fresh UUID and its ordinal position.
func (c *Chunker) ChunkDocument(doc domain.ExtractedDocument) []domain.DocumentChunk {
	parts := c.Split(doc.Content)
	chunks := make([]domain.DocumentChunk, 0, len(parts))

	for i, text := range parts {
		chunks = append(chunks, domain.DocumentChunk{
			ID:   uuid.New().String(),
			Text: text,
			Metadata: domain.ChunkMetadata{
				Source:      doc.Source,
				Type:        doc.Type,
				Title:       doc.Title,
				ChunkIndex:  i,
				TotalChunks: len(parts),
				Timestamp:   doc.Timestamp,
			},
		})
	}

	return chunks
}
