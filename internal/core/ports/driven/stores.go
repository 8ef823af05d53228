package driven

import (
	"context"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
)

// ProfileStore persists the singleton company profile.
// Save replaces the profile wholesale; profiles are never merged.
type ProfileStore interface {
	// Save stores or replaces the profile.
	Save(ctx context.Context, profile *domain.CompanyProfile) error

	// Get returns the current profile, or domain.ErrNoProfile when none
	// has been uploaded.
	Get(ctx context.Context) (*domain.CompanyProfile, error)

	// Delete removes the profile. Deleting an absent profile returns
	// domain.ErrNoProfile.
	Delete(ctx context.Context) error
}

// DocumentStore records extracted documents accepted for ingestion.
//
// The document list and the vector store can diverge: deleting a document
// record does not remove its vectors. That asymmetry is a known limitation
// of the design, not an invariant to rely on.
type DocumentStore interface {
	// Add appends document records.
	Add(ctx context.Context, docs []domain.ExtractedDocument) error

	// List returns all document records in insertion order.
	List(ctx context.Context) ([]domain.ExtractedDocument, error)

	// Delete removes the first record whose source matches the given
	// file name or URL. Returns domain.ErrNotFound when absent.
	Delete(ctx context.Context, source string) error

	// Count returns the number of document records.
	Count(ctx context.Context) (int, error)
}

// HistoryStore records generation, query, and analysis invocations.
type HistoryStore interface {
	// Append stores a history entry.
	Append(ctx context.Context, entry domain.HistoryEntry) error

	// List returns entries newest first, optionally filtered by type.
	// A zero limit means no limit.
	List(ctx context.Context, entryType string, limit, offset int) ([]domain.HistoryEntry, error)
}
