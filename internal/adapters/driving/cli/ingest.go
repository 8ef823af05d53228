package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/watcher"
)

var ingestWatch string

var ingestCmd = &cobra.Command{
	Use:   "ingest [file-or-url...]",
	Short: "Extract, chunk, and embed documents",
	Long: `Extracts text from the given files (.txt, .md, .docx) or URLs,
splits it into overlapping word windows, embeds the chunks, and upserts
them into the vector store.

With --watch, ingestion runs continuously: files dropped into the watched
directory are ingested as they appear, until interrupted.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestWatch, "watch", "w", "", "watch a directory and ingest new files")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	if ingestWatch != "" || (len(args) == 0 && watchDir != "") {
		dir := ingestWatch
		if dir == "" {
			dir = watchDir
		}
		return runIngestWatch(cmd, dir)
	}

	if len(args) == 0 {
		return errors.New("nothing to ingest: pass files or URLs, or use --watch")
	}

	ctx := context.Background()
	docs := make([]domain.ExtractedDocument, 0, len(args))
	for _, source := range args {
		doc, err := extract(ctx, source)
		if err != nil {
			return fmt.Errorf("extracting %s: %w", source, err)
		}
		cmd.Printf("Extracted %s (%d words)\n", doc.Source, doc.WordCount)
		docs = append(docs, *doc)
	}

	result, err := ingestService.IngestDocuments(ctx, docs)
	if err != nil {
		if result != nil {
			cmd.Printf("Recorded %d documents, but embedding failed.\n", result.Accepted)
		}
		return fmt.Errorf("ingestion failed: %w", err)
	}

	cmd.Printf("Ingested %d documents: %d chunks written.\n", result.Accepted, result.ChunksWritten)
	return nil
}

func runIngestWatch(cmd *cobra.Command, dir string) error {
	w, err := watcher.New(dir, extractorList, ingestService)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s for new documents. Press Ctrl+C to stop.\n", dir)
	return w.Run(ctx)
}

// extract picks the first extractor that supports the source.
func extract(ctx context.Context, source string) (*domain.ExtractedDocument, error) {
	for _, e := range extractorList {
		if e.Supports(source) {
			return e.Extract(ctx, source)
		}
	}
	return nil, fmt.Errorf("%w: no extractor for %s", domain.ErrUnsupportedType, source)
}
