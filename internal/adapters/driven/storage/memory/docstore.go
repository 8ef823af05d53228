package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Records keep insertion order.
type DocumentStore struct {
	mu        sync.RWMutex
	documents []domain.ExtractedDocument
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Add appends document records.
func (s *DocumentStore) Add(_ context.Context, docs []domain.ExtractedDocument) error {
	if len(docs) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append(s.documents, docs...)
	return nil
}

// List returns all document records in insertion order.
func (s *DocumentStore) List(_ context.Context) ([]domain.ExtractedDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.ExtractedDocument, len(s.documents))
	copy(result, s.documents)
	return result, nil
}

// Delete removes the first record whose source matches.
func (s *DocumentStore) Delete(_ context.Context, source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, doc := range s.documents {
		if doc.Source == source {
			s.documents = append(s.documents[:i], s.documents[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Count returns the number of document records.
func (s *DocumentStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents), nil
}
