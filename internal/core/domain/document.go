package domain

import "time"

// ExtractedDocument is the normalised output of file or URL extraction.
// Extraction of a URL never fails outright: on error the extractor returns a
// placeholder record describing the failure, so consumers must tolerate
// records with empty or placeholder content.
type ExtractedDocument struct {
	// Source is the file name or URL the content came from.
	Source string `json:"source"`

	// Type is the source type (file extension such as ".txt", or "url").
	Type string `json:"type"`

	// Title is the human-readable title.
	Title string `json:"title"`

	// Content is the full extracted text.
	Content string `json:"content"`

	// WordCount is the whitespace-delimited word count of Content.
	WordCount int `json:"wordCount"`

	// Timestamp is when extraction happened.
	Timestamp time.Time `json:"timestamp"`
}

// DocumentChunk is a word-window of an extracted document, tagged with its
// position. Chunks exist only transiently during ingestion; once embedded
// and upserted they are not retained.
type DocumentChunk struct {
	// ID is the unique chunk identifier, reused as the vector point ID.
	ID string

	// Text is the chunk content.
	Text string

	// Metadata carries source identity and ordinal position.
	Metadata ChunkMetadata
}

// ChunkMetadata records where a chunk came from.
type ChunkMetadata struct {
	// Source is the originating file name or URL.
	Source string

	// Type is the source type (file extension or "url").
	Type string

	// Title is the document title.
	Title string

	// ChunkIndex is the ordinal position within the document.
	ChunkIndex int

	// TotalChunks is the number of chunks the document produced.
	TotalChunks int

	// Timestamp is the extraction timestamp of the document.
	Timestamp time.Time
}
