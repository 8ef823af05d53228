// Package nebius provides an embedding service adapter for Nebius AI
// Studio's OpenAI-compatible API.
package nebius

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driven"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.studio.nebius.com/v1"
	DefaultModel   = "Qwen/Qwen3-Embedding-8B"
	DefaultTimeout = 60 * time.Second

	// DefaultRequestsPerSecond throttles outbound calls so that large
	// ingestion batches stay under the provider's rate limits.
	DefaultRequestsPerSecond = 5
)

// Model dimensions for Nebius embedding models.
var modelDimensions = map[string]int{
	"Qwen/Qwen3-Embedding-8B":      8192,
	"BAAI/bge-multilingual-gemma2": 3584,
}

// Config holds configuration for the Nebius embedding service.
type Config struct {
	// APIKey is the Nebius API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.studio.nebius.com/v1).
	// Can be changed for any OpenAI-compatible server.
	BaseURL string

	// Model is the embedding model to use (default: Qwen/Qwen3-Embedding-8B).
	Model string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration

	// Dimensions overrides the default dimension for the model.
	Dimensions int

	// RequestsPerSecond caps the outbound request rate (default: 5).
	RequestsPerSecond float64
}

// EmbeddingService generates embeddings using Nebius AI Studio.
type EmbeddingService struct {
	client     *http.Client
	limiter    *rate.Limiter
	baseURL    string
	apiKey     string
	model      string
	dimensions int
}

// embeddingRequest is the OpenAI-compatible request format.
type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// embeddingResponse is the OpenAI-compatible response format.
type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewEmbeddingService creates a new Nebius embedding service.
func NewEmbeddingService(cfg Config) (*EmbeddingService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: NEBIUS_API_KEY", domain.ErrAPIKeyMissing)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}

	dimensions := cfg.Dimensions
	if dimensions == 0 {
		var ok bool
		dimensions, ok = modelDimensions[cfg.Model]
		if !ok {
			dimensions = 8192
		}
	}

	return &EmbeddingService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		dimensions: dimensions,
	}, nil
}

// Embed generates a vector embedding for the given text.
func (s *EmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := s.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 || embeddings[0] == nil {
		return nil, fmt.Errorf("%w: no embedding returned", domain.ErrProvider)
	}
	return embeddings[0], nil
}

// EmbedBatch generates embeddings for multiple texts in one API call.
// Output order follows input order regardless of response ordering.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, domain.ErrEmptyInput
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	jsonBody, err := json.Marshal(embeddingRequest{
		Model: s.model,
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/embeddings",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded || os.IsTimeout(err) {
			return nil, fmt.Errorf("%w: embeddings: %v", domain.ErrProviderTimeout, err)
		}
		return nil, fmt.Errorf("%w: send request: %v", domain.ErrProvider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var embedResp embeddingResponse
	if err := json.Unmarshal(body, &embedResp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrProvider, err)
	}

	if embedResp.Error != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProvider, embedResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrProvider, resp.StatusCode, string(body))
	}

	if len(embedResp.Data) != len(texts) {
		return nil, fmt.Errorf("%w: %d embeddings returned for %d inputs",
			domain.ErrProvider, len(embedResp.Data), len(texts))
	}

	// Convert float64 to float32 and order by index.
	embeddings := make([][]float32, len(texts))
	for _, data := range embedResp.Data {
		if data.Index < 0 || data.Index >= len(texts) {
			continue
		}
		embedding := make([]float32, len(data.Embedding))
		for i, v := range data.Embedding {
			embedding[i] = float32(v)
		}
		embeddings[data.Index] = embedding
	}

	for i, e := range embeddings {
		if e == nil {
			return nil, fmt.Errorf("%w: missing embedding for input %d", domain.ErrProvider, i)
		}
	}

	return embeddings, nil
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return s.dimensions
}

// ModelName returns the name of the embedding model being used.
func (s *EmbeddingService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by checking the /models endpoint.
// This validates the API key without running inference.
func (s *EmbeddingService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/models", http.NoBody)
	if err != nil {
		return fmt.Errorf("nebius: failed to create ping request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: ping failed: %v", domain.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: status %d (failed to read body)", domain.ErrProvider, resp.StatusCode)
		}
		return fmt.Errorf("%w: status %d: %s", domain.ErrProvider, resp.StatusCode, string(body))
	}
	return nil
}
