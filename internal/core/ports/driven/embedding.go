package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// The dimension of returned vectors is fixed by the configured model and
// must match the VectorStore's collection dimension. That is a
// cross-component invariant; neither side enforces it locally.
//
// Implementations may include:
//   - Nebius AI Studio (Qwen3-Embedding-8B)
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
//   - Any OpenAI-compatible inference server
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts in a single
	// remote call. Vectors are returned in input order. An empty input
	// fails with domain.ErrEmptyInput.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size for the configured model.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// request that does not run inference.
	Ping(ctx context.Context) error
}
