package services

import (
	"context"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

var (
	_ driven.EmbeddingService = (*mockEmbedder)(nil)
	_ driven.VectorStore      = (*mockVectorStore)(nil)
	_ driven.LLMService       = (*mockLLM)(nil)
)

// mockEmbedder implements driven.EmbeddingService for testing. It returns
// a fixed-size vector per input text.
type mockEmbedder struct {
	dims       int
	embedErr   error
	batchCalls int
	lastBatch  []string
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := m.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (m *mockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, domain.ErrEmptyInput
	}
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	m.batchCalls++
	m.lastBatch = texts

	dims := m.dims
	if dims == 0 {
		dims = 4
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = make([]float32, dims)
	}
	return vectors, nil
}

func (m *mockEmbedder) Dimensions() int {
	if m.dims == 0 {
		return 4
	}
	return m.dims
}

func (m *mockEmbedder) ModelName() string { return "mock-embedder" }

func (m *mockEmbedder) Ping(context.Context) error { return nil }

// mockVectorStore implements driven.VectorStore for testing.
type mockVectorStore struct {
	points     []domain.VectorPoint
	results    []domain.SearchResult
	ensureErr  error
	upsertErr  error
	searchErr  error
	clearErr   error
	statsErr   error
	cleared    int
	lastLimit  int
	lastThresh float64
}

func (m *mockVectorStore) EnsureCollection(context.Context, int) error {
	return m.ensureErr
}

func (m *mockVectorStore) Upsert(_ context.Context, points []domain.VectorPoint) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.points = append(m.points, points...)
	return nil
}

func (m *mockVectorStore) Search(_ context.Context, _ []float32, limit int, threshold float64) ([]domain.SearchResult, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	m.lastLimit = limit
	m.lastThresh = threshold
	return m.results, nil
}

func (m *mockVectorStore) ClearAll(context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared++
	m.points = nil
	return nil
}

func (m *mockVectorStore) Stats(context.Context) (domain.StoreStats, error) {
	if m.statsErr != nil {
		return domain.StoreStats{}, m.statsErr
	}
	return domain.StoreStats{PointCount: len(m.points)}, nil
}

// mockLLM implements driven.LLMService for testing.
type mockLLM struct {
	response   string
	err        error
	lastPrompt string
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.lastPrompt = prompt
	return m.response, nil
}

func (m *mockLLM) ModelName() string { return "mock-llm" }

func (m *mockLLM) Ping(context.Context) error { return nil }
