package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driving"
	fileextract "github.com/custodia-labs/contentgen-cli/internal/extractors/file"
)

type captureIngester struct {
	mu   sync.Mutex
	docs []domain.ExtractedDocument
}

var _ driving.IngestService = (*captureIngester)(nil)

func (c *captureIngester) IngestProfile(context.Context, *domain.CompanyProfile) (*driving.ProfileIngestResult, error) {
	return nil, nil
}

func (c *captureIngester) DeleteProfile(context.Context) (*domain.CompanyProfile, error) {
	return nil, nil
}

func (c *captureIngester) IngestDocuments(_ context.Context, docs []domain.ExtractedDocument) (*driving.DocumentIngestResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, docs...)
	return &driving.DocumentIngestResult{Accepted: len(docs), ChunksWritten: len(docs)}, nil
}

func (c *captureIngester) Stats(context.Context) (*driving.Stats, error) {
	return &driving.Stats{}, nil
}

func (c *captureIngester) sources() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.docs))
	for i, d := range c.docs {
		out[i] = d.Source
	}
	return out
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent"), nil, &captureIngester{})
	assert.Error(t, err)
}

func TestWatcher_IngestsNewFiles(t *testing.T) {
	dir := t.TempDir()
	ingester := &captureIngester{}
	extractors := []driven.Extractor{fileextract.New()}

	w, err := New(dir, extractors, ingester, WithSettle(50*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello watched world"), 0600))

	require.Eventually(t, func() bool {
		return len(ingester.sources()) == 1
	}, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, []string{"notes.txt"}, ingester.sources())

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_IgnoresUnsupportedExtensions(t *testing.T) {
	dir := t.TempDir()
	ingester := &captureIngester{}

	w, err := New(dir, []driven.Extractor{fileextract.New()}, ingester, WithSettle(20*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch.swp"), []byte("temp"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("kept"), 0600))

	require.Eventually(t, func() bool {
		return len(ingester.sources()) == 1
	}, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, []string{"notes.md"}, ingester.sources())

	cancel()
	require.NoError(t, <-done)
}
