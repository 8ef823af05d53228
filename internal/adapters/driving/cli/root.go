// Package cli implements the contentgen command tree.
//
// Commands hold their collaborators in package-level variables so tests can
// substitute mocks. Real wiring happens lazily, on the first command that
// needs a service, so informational commands like version work without
// credentials.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/contentgen-cli/internal/adapters/driven/config/file"
	nebiusembed "github.com/custodia-labs/contentgen-cli/internal/adapters/driven/embedding/nebius"
	nebiusllm "github.com/custodia-labs/contentgen-cli/internal/adapters/driven/llm/nebius"
	"github.com/custodia-labs/contentgen-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/contentgen-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/contentgen-cli/internal/adapters/driven/vectorstore/qdrant"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driving"
	"github.com/custodia-labs/contentgen-cli/internal/core/services"
	fileextract "github.com/custodia-labs/contentgen-cli/internal/extractors/file"
	webextract "github.com/custodia-labs/contentgen-cli/internal/extractors/web"
	"github.com/custodia-labs/contentgen-cli/internal/logger"
	"github.com/custodia-labs/contentgen-cli/internal/postprocessors/chunker"
)

var version = "0.1.0"

// Persistent flags.
var (
	verbose    bool
	configPath string
)

// Service graph. Tests assign these directly; ensureServices leaves
// pre-assigned values alone.
var (
	ingestService   driving.IngestService
	generateService driving.GenerateService
	profileStore    driven.ProfileStore
	historyStore    driven.HistoryStore
	extractorList   []driven.Extractor
	watchDir        string
	storeCloser     io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "contentgen",
	Short: "Generate grounded content from your company data",
	Long: `contentgen ingests your company profile and documents into a vector
store, then uses retrieval-augmented generation to answer questions and
suggest articles, social media posts, and demo applications grounded in
that data.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.contentgen/config.toml)")
}

// Execute runs the command tree and releases wired resources afterwards.
func Execute() error {
	defer func() {
		if storeCloser != nil {
			_ = storeCloser.Close()
		}
	}()
	return rootCmd.Execute()
}

// ensureServices wires the full service graph from configuration. It is a
// no-op when services are already present.
func ensureServices() error {
	if ingestService != nil && generateService != nil {
		return nil
	}

	cfg, err := configfile.Load(configPath)
	if err != nil {
		return err
	}

	embedder, err := nebiusembed.NewEmbeddingService(nebiusembed.Config{
		APIKey:  cfg.Nebius.APIKey,
		BaseURL: cfg.Nebius.BaseURL,
		Model:   cfg.Nebius.EmbeddingModel,
	})
	if err != nil {
		return err
	}

	llm, err := nebiusllm.NewLLMService(nebiusllm.Config{
		APIKey:  cfg.Nebius.APIKey,
		BaseURL: cfg.Nebius.BaseURL,
		Model:   cfg.Nebius.CompletionModel,
	})
	if err != nil {
		return err
	}

	vectors := qdrant.New(qdrant.Config{
		URL:        cfg.Qdrant.URL,
		APIKey:     cfg.Qdrant.APIKey,
		Collection: cfg.Qdrant.Collection,
	})

	var chunkOpts []chunker.Option
	if cfg.Chunking.Size > 0 {
		chunkOpts = append(chunkOpts, chunker.WithChunkSize(cfg.Chunking.Size))
	}
	if cfg.Chunking.Overlap > 0 {
		chunkOpts = append(chunkOpts, chunker.WithOverlap(cfg.Chunking.Overlap))
	}
	chk, err := chunker.New(chunkOpts...)
	if err != nil {
		return err
	}

	var (
		profiles  driven.ProfileStore
		documents driven.DocumentStore
		history   driven.HistoryStore
	)
	switch cfg.Storage.Backend {
	case "", "memory":
		profiles = memory.NewProfileStore()
		documents = memory.NewDocumentStore()
		history = memory.NewHistoryStore()
	case "sqlite":
		store, err := sqlite.NewStore(cfg.Storage.DataDir)
		if err != nil {
			return fmt.Errorf("opening metadata store: %w", err)
		}
		storeCloser = store
		profiles = store.ProfileStore()
		documents = store.DocumentStore()
		history = store.HistoryStore()
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	ingestService = services.NewIngestService(embedder, vectors, chk, profiles, documents)
	generateService = services.NewGenerateService(embedder, vectors, llm, profiles, history)
	profileStore = profiles
	historyStore = history
	extractorList = []driven.Extractor{webextract.New(), fileextract.New()}
	watchDir = cfg.Watch.Dir
	return nil
}
