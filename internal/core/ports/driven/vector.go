package driven

import (
	"context"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
)

// VectorStore wraps a remote vector database collection.
//
// The collection is created once with a fixed dimension and cosine
// distance; all upserted points must conform or the store rejects them.
// Score threshold and limit are applied by the remote store; clients must
// not re-filter results.
type VectorStore interface {
	// EnsureCollection creates the collection if it does not exist.
	// Idempotent: an existing collection is left untouched.
	EnsureCollection(ctx context.Context, dimension int) error

	// Upsert writes points to the collection. All-or-nothing from the
	// caller's perspective: on failure it returns domain.ErrStore and the
	// caller decides whether partially-applied state is acceptable.
	Upsert(ctx context.Context, points []domain.VectorPoint) error

	// Search returns up to limit points most similar to the vector,
	// ordered by descending score, filtered to score >= threshold.
	// Zero matches is not an error; an empty slice is returned.
	Search(ctx context.Context, vector []float32, limit int, threshold float64) ([]domain.SearchResult, error)

	// ClearAll deletes every point in the collection. Used before
	// re-ingesting a replaced company profile.
	ClearAll(ctx context.Context) error

	// Stats returns the current point count.
	Stats(ctx context.Context) (domain.StoreStats, error)
}
