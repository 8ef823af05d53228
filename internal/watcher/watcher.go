package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driving"
	"github.com/custodia-labs/contentgen-cli/internal/logger"
)

// DefaultSettle is how long a file must be quiet before ingestion.
const DefaultSettle = 500 * time.Millisecond

// watchedExts are the file types picked up from the watched directory.
// Everything else (editor temp files, partial downloads) is ignored.
var watchedExts = map[string]bool{
	".txt":  true,
	".md":   true,
	".docx": true,
}

// Option configures the watcher.
type Option func(*Watcher)

// WithSettle overrides the settle period.
func WithSettle(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.settle = d
		}
	}
}

// Watcher watches one directory and ingests files as they appear.
type Watcher struct {
	fs         *fsnotify.Watcher
	dir        string
	extractors []driven.Extractor
	ingester   driving.IngestService
	settle     time.Duration
}

// New creates a watcher on dir. The directory must exist.
func New(dir string, extractors []driven.Extractor, ingester driving.IngestService, opts ...Option) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fs.Add(dir); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fs:         fs,
		dir:        dir,
		extractors: extractors,
		ingester:   ingester,
		settle:     DefaultSettle,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Run processes events until the context is cancelled or the watcher is
// closed. Cancellation is a normal stop, not an error.
func (w *Watcher) Run(ctx context.Context) error {
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.settle)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !watchedExts[strings.ToLower(filepath.Ext(event.Name))] {
				continue
			}
			pending[event.Name] = time.Now()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case now := <-ticker.C:
			for path, seen := range pending {
				if now.Sub(seen) < w.settle {
					continue
				}
				delete(pending, path)
				w.ingest(ctx, path)
			}
		}
	}
}

// ingest extracts and ingests one settled file, logging failures.
func (w *Watcher) ingest(ctx context.Context, path string) {
	doc, err := w.extract(ctx, path)
	if err != nil {
		logger.Warn("could not extract %s: %v", path, err)
		return
	}

	result, err := w.ingester.IngestDocuments(ctx, []domain.ExtractedDocument{*doc})
	if err != nil {
		logger.Warn("could not ingest %s: %v", path, err)
		return
	}
	logger.Info("ingested %s: %d chunks", doc.Source, result.ChunksWritten)
}

func (w *Watcher) extract(ctx context.Context, path string) (*domain.ExtractedDocument, error) {
	for _, e := range w.extractors {
		if e.Supports(path) {
			return e.Extract(ctx, path)
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, path)
}
