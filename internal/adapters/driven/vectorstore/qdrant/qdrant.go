// Package qdrant provides a VectorStore adapter backed by Qdrant's REST
// API. It manages a single collection with cosine distance.
package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Default configuration values.
const (
	DefaultURL        = "http://localhost:6333"
	DefaultCollection = "company_data"
	DefaultTimeout    = 30 * time.Second
)

// Config holds configuration for the Qdrant store.
type Config struct {
	// URL is the Qdrant base URL (default: http://localhost:6333).
	URL string

	// APIKey authenticates requests when set. Optional for local instances.
	APIKey string

	// Collection is the collection name (default: company_data).
	Collection string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Store is a Qdrant-backed vector store for one collection.
type Store struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	collection string
}

// New creates a new Qdrant store.
func New(cfg Config) *Store {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Store{
		client:     &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.URL,
		apiKey:     cfg.APIKey,
		collection: cfg.Collection,
	}
}

// Collection returns the configured collection name.
func (s *Store) Collection() string {
	return s.collection
}

// collectionInfo is the relevant subset of Qdrant's collection response.
type collectionInfo struct {
	Result struct {
		PointsCount int `json:"points_count"`
	} `json:"result"`
	Status string `json:"status"`
}

// searchResponse is Qdrant's points/search response.
type searchResponse struct {
	Result []struct {
		ID      any            `json:"id"`
		Score   float64        `json:"score"`
		Payload map[string]any `json:"payload"`
	} `json:"result"`
}

// EnsureCollection creates the collection with cosine distance if it does
// not already exist.
func (s *Store) EnsureCollection(ctx context.Context, dimension int) error {
	status, _, err := s.do(ctx, http.MethodGet, s.collectionPath(""), nil)
	if err != nil {
		return fmt.Errorf("%w: checking collection: %v", domain.ErrStore, err)
	}
	if status == http.StatusOK {
		return nil
	}
	if status != http.StatusNotFound {
		return fmt.Errorf("%w: checking collection: status %d", domain.ErrStore, status)
	}

	body := map[string]any{
		"vectors": map[string]any{
			"size":     dimension,
			"distance": "Cosine",
		},
	}
	status, respBody, err := s.do(ctx, http.MethodPut, s.collectionPath(""), body)
	if err != nil {
		return fmt.Errorf("%w: creating collection: %v", domain.ErrStore, err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: creating collection: status %d: %s", domain.ErrStore, status, respBody)
	}
	return nil
}

// Upsert writes points to the collection, waiting for them to be applied.
func (s *Store) Upsert(ctx context.Context, points []domain.VectorPoint) error {
	if len(points) == 0 {
		return nil
	}

	type qdrantPoint struct {
		ID      string         `json:"id"`
		Vector  []float32      `json:"vector"`
		Payload map[string]any `json:"payload"`
	}

	payload := make([]qdrantPoint, len(points))
	for i, p := range points {
		payload[i] = qdrantPoint{ID: p.ID, Vector: p.Vector, Payload: p.Payload}
	}

	status, respBody, err := s.do(ctx, http.MethodPut,
		s.collectionPath("/points?wait=true"),
		map[string]any{"points": payload},
	)
	if err != nil {
		return fmt.Errorf("%w: upserting %d points: %v", domain.ErrStore, len(points), err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: upserting %d points: status %d: %s", domain.ErrStore, len(points), status, respBody)
	}
	return nil
}

// Search returns the points most similar to the vector. Thresholding is
// done server-side via score_threshold.
func (s *Store) Search(ctx context.Context, vector []float32, limit int, threshold float64) ([]domain.SearchResult, error) {
	body := map[string]any{
		"vector":          vector,
		"limit":           limit,
		"score_threshold": threshold,
		"with_payload":    true,
	}

	status, respBody, err := s.do(ctx, http.MethodPost, s.collectionPath("/points/search"), body)
	if err != nil {
		return nil, fmt.Errorf("%w: searching: %v", domain.ErrStore, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: searching: status %d: %s", domain.ErrStore, status, respBody)
	}

	var parsed searchResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding search response: %v", domain.ErrStore, err)
	}

	results := make([]domain.SearchResult, 0, len(parsed.Result))
	for _, r := range parsed.Result {
		results = append(results, domain.SearchResult{
			ID:      fmt.Sprintf("%v", r.ID),
			Score:   r.Score,
			Payload: r.Payload,
		})
	}
	return results, nil
}

// ClearAll deletes every point in the collection using an empty filter.
func (s *Store) ClearAll(ctx context.Context) error {
	body := map[string]any{
		"filter": map[string]any{},
	}

	status, respBody, err := s.do(ctx, http.MethodPost, s.collectionPath("/points/delete?wait=true"), body)
	if err != nil {
		return fmt.Errorf("%w: clearing collection: %v", domain.ErrStore, err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: clearing collection: status %d: %s", domain.ErrStore, status, respBody)
	}
	return nil
}

// Stats returns the collection's current point count.
func (s *Store) Stats(ctx context.Context) (domain.StoreStats, error) {
	status, respBody, err := s.do(ctx, http.MethodGet, s.collectionPath(""), nil)
	if err != nil {
		return domain.StoreStats{}, fmt.Errorf("%w: collection info: %v", domain.ErrStore, err)
	}
	if status != http.StatusOK {
		return domain.StoreStats{}, fmt.Errorf("%w: collection info: status %d", domain.ErrStore, status)
	}

	var info collectionInfo
	if err := json.Unmarshal(respBody, &info); err != nil {
		return domain.StoreStats{}, fmt.Errorf("%w: decoding collection info: %v", domain.ErrStore, err)
	}

	return domain.StoreStats{PointCount: info.Result.PointsCount}, nil
}

func (s *Store) collectionPath(suffix string) string {
	return "/collections/" + s.collection + suffix
}

// do performs one JSON request against the Qdrant API and returns the
// status code and raw response body.
func (s *Store) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}
