package nebius

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *EmbeddingService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := NewEmbeddingService(Config{
		APIKey:            "test-key",
		BaseURL:           srv.URL,
		RequestsPerSecond: 1000,
	})
	require.NoError(t, err)
	return svc
}

func TestNewEmbeddingService(t *testing.T) {
	t.Run("requires API key", func(t *testing.T) {
		_, err := NewEmbeddingService(Config{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrAPIKeyMissing))
	})

	t.Run("applies defaults", func(t *testing.T) {
		svc, err := NewEmbeddingService(Config{APIKey: "k"})
		require.NoError(t, err)
		assert.Equal(t, DefaultModel, svc.ModelName())
		assert.Equal(t, 8192, svc.Dimensions())
	})

	t.Run("dimension override", func(t *testing.T) {
		svc, err := NewEmbeddingService(Config{APIKey: "k", Dimensions: 1024})
		require.NoError(t, err)
		assert.Equal(t, 1024, svc.Dimensions())
	})
}

func TestEmbedBatch(t *testing.T) {
	t.Run("orders results by index", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/embeddings", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req embeddingRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, []string{"first", "second"}, req.Input)

			// Respond out of order; the client must reorder by index.
			json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{
					{"index": 1, "embedding": []float64{0.3, 0.4}},
					{"index": 0, "embedding": []float64{0.1, 0.2}},
				},
			})
		})

		got, err := svc.EmbedBatch(context.Background(), []string{"first", "second"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, []float32{0.1, 0.2}, got[0])
		assert.Equal(t, []float32{0.3, 0.4}, got[1])
	})

	t.Run("empty input", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected for empty input")
		})

		_, err := svc.EmbedBatch(context.Background(), nil)
		assert.True(t, errors.Is(err, domain.ErrEmptyInput))
	})

	t.Run("provider error payload", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "model overloaded", "type": "server_error"},
			})
		})

		_, err := svc.EmbedBatch(context.Background(), []string{"x"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrProvider))
		assert.Contains(t, err.Error(), "model overloaded")
	})

	t.Run("fewer embeddings than inputs", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{
					{"index": 0, "embedding": []float64{0.1, 0.2}},
				},
			})
		})

		_, err := svc.EmbedBatch(context.Background(), []string{"first", "second"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrProvider))
		assert.Contains(t, err.Error(), "1 embeddings returned for 2 inputs")
	})

	t.Run("client timeout maps to provider timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{}})
		}))
		t.Cleanup(srv.Close)

		svc, err := NewEmbeddingService(Config{
			APIKey:            "test-key",
			BaseURL:           srv.URL,
			Timeout:           20 * time.Millisecond,
			RequestsPerSecond: 1000,
		})
		require.NoError(t, err)

		_, err = svc.EmbedBatch(context.Background(), []string{"x"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrProviderTimeout))
	})

	t.Run("non-200 status", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{}`))
		})

		_, err := svc.EmbedBatch(context.Background(), []string{"x"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrProvider))
	})
}

func TestEmbed(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"index": 0, "embedding": []float64{1, 2, 3}},
			},
		})
	})

	got, err := svc.Embed(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, got)
}

func TestPing(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models", r.URL.Path)
			assert.Equal(t, http.MethodGet, r.Method)
			w.Write([]byte(`{"data":[]}`))
		})
		assert.NoError(t, svc.Ping(context.Background()))
	})

	t.Run("unauthorised", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		err := svc.Ping(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrProvider))
	})
}
