package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// ProfileStore is an in-memory implementation of driven.ProfileStore.
type ProfileStore struct {
	mu      sync.RWMutex
	profile *domain.CompanyProfile
}

// NewProfileStore creates a new in-memory profile store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{}
}

// Save stores or replaces the profile.
func (s *ProfileStore) Save(_ context.Context, profile *domain.CompanyProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *profile
	s.profile = &copied
	return nil
}

// Get returns the current profile.
func (s *ProfileStore) Get(_ context.Context) (*domain.CompanyProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil, domain.ErrNoProfile
	}
	copied := *s.profile
	return &copied, nil
}

// Delete removes the profile.
func (s *ProfileStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return domain.ErrNoProfile
	}
	s.profile = nil
	return nil
}
