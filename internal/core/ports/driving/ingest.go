package driving

import (
	"context"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
)

// IngestOutcome distinguishes how far an ingestion got.
type IngestOutcome string

// Ingestion outcomes. A degraded profile ingestion stored the profile text
// but wrote no vectors, typically because the embedding provider or vector
// store was unreachable.
const (
	OutcomeFull     IngestOutcome = "full"
	OutcomeDegraded IngestOutcome = "degraded"
)

// ProfileIngestResult reports a profile ingestion.
type ProfileIngestResult struct {
	// PointsWritten is the number of vectors upserted.
	PointsWritten int `json:"pointsWritten"`

	// Outcome is OutcomeFull when vectors were written, OutcomeDegraded
	// when the profile was stored without vector context.
	Outcome IngestOutcome `json:"outcome"`

	// Profile is the stored profile, including its new VectorCount.
	Profile *domain.CompanyProfile `json:"profile"`
}

// DocumentIngestResult reports a document ingestion.
type DocumentIngestResult struct {
	// ChunksWritten is the number of chunk vectors upserted.
	ChunksWritten int `json:"chunksWritten"`

	// Accepted is how many documents were recorded.
	Accepted int `json:"accepted"`
}

// Stats summarises the ingested state.
type Stats struct {
	// PointCount is the vector store point count. Zero when the store
	// could not be reached.
	PointCount int `json:"pointCount"`

	// HasProfile reports whether a company profile is stored.
	HasProfile bool `json:"hasProfile"`

	// DocumentCount is the number of recorded documents.
	DocumentCount int `json:"documentCount"`
}

// IngestService turns company data and documents into stored vectors.
type IngestService interface {
	// IngestProfile validates, stores, and embeds the company profile.
	// Embedding or store failure degrades the result to zero vectors
	// rather than failing: the text-only profile remains useful.
	IngestProfile(ctx context.Context, profile *domain.CompanyProfile) (*ProfileIngestResult, error)

	// DeleteProfile removes the profile and clears its vectors.
	DeleteProfile(ctx context.Context) (*domain.CompanyProfile, error)

	// IngestDocuments chunks, embeds, and upserts extracted documents.
	// Unlike the profile path, an embedding or store failure here is
	// surfaced as an error, but already-recorded documents are kept.
	IngestDocuments(ctx context.Context, docs []domain.ExtractedDocument) (*DocumentIngestResult, error)

	// Stats reports the ingested state. Vector store failures degrade
	// the point count to zero instead of failing.
	Stats(ctx context.Context) (*Stats, error)
}
