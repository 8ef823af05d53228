package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driving"
	"github.com/custodia-labs/contentgen-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService embeds company data and documents into the vector store
// and keeps the metadata stores in step.
type IngestService struct {
	embedder  driven.EmbeddingService
	vectors   driven.VectorStore
	chunker   driven.Chunker
	profiles  driven.ProfileStore
	documents driven.DocumentStore
}

// NewIngestService creates a new ingest service.
func NewIngestService(
	embedder driven.EmbeddingService,
	vectors driven.VectorStore,
	chunker driven.Chunker,
	profiles driven.ProfileStore,
	documents driven.DocumentStore,
) *IngestService {
	return &IngestService{
		embedder:  embedder,
		vectors:   vectors,
		chunker:   chunker,
		profiles:  profiles,
		documents: documents,
	}
}

// IngestProfile validates, stores, and embeds the company profile.
//
// The profile replaces any previous one wholesale, so existing vectors are
// cleared first (best effort). Embedding or vector store failure does not
// fail the upload: the profile is kept as text and the result is marked
// degraded with zero vectors.
func (s *IngestService) IngestProfile(ctx context.Context, profile *domain.CompanyProfile) (*driving.ProfileIngestResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("validating profile: %w", err)
	}

	logger.Section("Profile Ingestion")

	now := time.Now()
	previous, err := s.profiles.Get(ctx)
	if err == nil {
		profile.UploadedAt = previous.UploadedAt
	} else {
		profile.UploadedAt = now
	}
	profile.UpdatedAt = now
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}

	// Stale vectors from the previous profile (and its documents) must not
	// ground future generations. Failure here is tolerable: the upsert
	// below still represents the current profile.
	if err := s.vectors.ClearAll(ctx); err != nil {
		logger.Warn("could not clear existing vectors: %v", err)
	}

	points, err := s.embedProfile(ctx, profile, now)
	if err != nil {
		logger.Warn("profile embedding degraded to text-only: %v", err)
		profile.VectorCount = 0
		if saveErr := s.profiles.Save(ctx, profile); saveErr != nil {
			return nil, fmt.Errorf("saving profile: %w", saveErr)
		}
		return &driving.ProfileIngestResult{
			PointsWritten: 0,
			Outcome:       driving.OutcomeDegraded,
			Profile:       profile,
		}, nil
	}

	profile.VectorCount = len(points)
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}

	logger.Info("profile ingested: %d vectors", len(points))
	return &driving.ProfileIngestResult{
		PointsWritten: len(points),
		Outcome:       driving.OutcomeFull,
		Profile:       profile,
	}, nil
}

// embedProfile flattens, embeds, and upserts the profile fields, returning
// the written points.
func (s *IngestService) embedProfile(ctx context.Context, profile *domain.CompanyProfile, now time.Time) ([]domain.VectorPoint, error) {
	fields := profile.Flatten()
	if len(fields) == 0 {
		return nil, nil
	}

	texts := make([]string, len(fields))
	for i, f := range fields {
		texts[i] = f.Text
	}

	if err := s.vectors.EnsureCollection(ctx, s.embedder.Dimensions()); err != nil {
		return nil, err
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, err
	}

	points := make([]domain.VectorPoint, len(fields))
	for i, f := range fields {
		points[i] = domain.VectorPoint{
			ID:     uuid.New().String(),
			Vector: embeddings[i],
			Payload: map[string]any{
				"text":      f.Text,
				"type":      f.Type,
				"source":    "company_data",
				"timestamp": now.Format(time.RFC3339),
			},
		}
	}

	if err := s.vectors.Upsert(ctx, points); err != nil {
		return nil, err
	}
	return points, nil
}

// DeleteProfile removes the profile and clears its vectors.
func (s *IngestService) DeleteProfile(ctx context.Context) (*domain.CompanyProfile, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.vectors.ClearAll(ctx); err != nil {
		logger.Warn("could not clear vectors: %v", err)
	}

	if err := s.profiles.Delete(ctx); err != nil {
		return nil, err
	}
	return profile, nil
}

// IngestDocuments chunks, embeds, and upserts extracted documents.
//
// Document records are stored before embedding so that a provider failure
// does not lose track of what was accepted. Unlike the profile path, the
// failure itself is surfaced.
func (s *IngestService) IngestDocuments(ctx context.Context, docs []domain.ExtractedDocument) (*driving.DocumentIngestResult, error) {
	if len(docs) == 0 {
		return nil, domain.ErrEmptyInput
	}

	logger.Section("Document Ingestion")

	if err := s.documents.Add(ctx, docs); err != nil {
		return nil, fmt.Errorf("recording documents: %w", err)
	}

	var chunks []domain.DocumentChunk
	for _, doc := range docs {
		docChunks := s.chunker.ChunkDocument(doc)
		logger.Debug("%s: %d chunks", doc.Source, len(docChunks))
		chunks = append(chunks, docChunks...)
	}

	result := &driving.DocumentIngestResult{Accepted: len(docs)}
	if len(chunks) == 0 {
		return result, nil
	}

	if err := s.vectors.EnsureCollection(ctx, s.embedder.Dimensions()); err != nil {
		return result, fmt.Errorf("preparing collection: %w", err)
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return result, fmt.Errorf("embedding %d chunks: %w", len(chunks), err)
	}

	points := make([]domain.VectorPoint, len(chunks))
	for i, chunk := range chunks {
		points[i] = domain.VectorPoint{
			ID:     chunk.ID,
			Vector: embeddings[i],
			Payload: map[string]any{
				"text":        chunk.Text,
				"source":      chunk.Metadata.Source,
				"type":        chunk.Metadata.Type,
				"title":       chunk.Metadata.Title,
				"chunkIndex":  chunk.Metadata.ChunkIndex,
				"totalChunks": chunk.Metadata.TotalChunks,
				"timestamp":   chunk.Metadata.Timestamp.Format(time.RFC3339),
			},
		}
	}

	if err := s.vectors.Upsert(ctx, points); err != nil {
		return result, fmt.Errorf("upserting %d points: %w", len(points), err)
	}

	result.ChunksWritten = len(points)
	logger.Info("ingested %d documents as %d chunks", len(docs), len(points))
	return result, nil
}

// Stats reports the ingested state. The vector store is best effort: when
// unreachable the point count degrades to zero.
func (s *IngestService) Stats(ctx context.Context) (*driving.Stats, error) {
	stats := &driving.Stats{}

	if storeStats, err := s.vectors.Stats(ctx); err == nil {
		stats.PointCount = storeStats.PointCount
	} else {
		logger.Warn("vector store stats unavailable: %v", err)
	}

	if _, err := s.profiles.Get(ctx); err == nil {
		stats.HasProfile = true
	}

	count, err := s.documents.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting documents: %w", err)
	}
	stats.DocumentCount = count

	return stats, nil
}
