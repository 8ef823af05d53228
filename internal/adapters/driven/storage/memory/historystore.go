package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Append stores a history entry.
func (s *HistoryStore) Append(_ context.Context, entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// List returns entries newest first, optionally filtered by type.
func (s *HistoryStore) List(_ context.Context, entryType string, limit, offset int) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Newest first: walk the slice backwards.
	filtered := make([]domain.HistoryEntry, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		if entryType != "" && s.entries[i].Type != entryType {
			continue
		}
		filtered = append(filtered, s.entries[i])
	}

	if offset >= len(filtered) {
		return []domain.HistoryEntry{}, nil
	}
	filtered = filtered[offset:]

	if limit > 0 && limit < len(filtered) {
		filtered = filtered[:limit]
	}
	return filtered, nil
}
