// Package file loads and persists CLI configuration from a TOML file.
//
// The default location is ~/.contentgen/config.toml. A missing file is not
// an error; defaults apply. Credentials can always be supplied through the
// NEBIUS_API_KEY and QDRANT_API_KEY environment variables, which take
// precedence over file values.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full CLI configuration.
type Config struct {
	Nebius   NebiusConfig   `toml:"nebius"`
	Qdrant   QdrantConfig   `toml:"qdrant"`
	Chunking ChunkingConfig `toml:"chunking"`
	Storage  StorageConfig  `toml:"storage"`
	Watch    WatchConfig    `toml:"watch"`
}

// NebiusConfig configures the embedding and completion provider.
type NebiusConfig struct {
	APIKey          string `toml:"api_key"`
	BaseURL         string `toml:"base_url"`
	EmbeddingModel  string `toml:"embedding_model"`
	CompletionModel string `toml:"completion_model"`
}

// QdrantConfig configures the vector store.
type QdrantConfig struct {
	URL        string `toml:"url"`
	APIKey     string `toml:"api_key"`
	Collection string `toml:"collection"`
}

// ChunkingConfig configures the document chunker. Zero values mean the
// chunker's own defaults.
type ChunkingConfig struct {
	Size    int `toml:"size"`
	Overlap int `toml:"overlap"`
}

// StorageConfig selects the metadata store backend.
type StorageConfig struct {
	// Backend is "memory" (default) or "sqlite".
	Backend string `toml:"backend"`

	// DataDir is the sqlite data directory (default: ~/.contentgen/data).
	DataDir string `toml:"data_dir"`
}

// WatchConfig configures the ingestion watch directory.
type WatchConfig struct {
	Dir string `toml:"dir"`
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".contentgen", "config.toml"), nil
}

// Load reads configuration from path, then applies environment overrides.
// If path is empty the default location is used. A missing file yields a
// zero config with overrides applied.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Defaults apply.
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories. If
// path is empty the default location is used.
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// applyEnv layers environment variables over file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("NEBIUS_API_KEY"); v != "" {
		c.Nebius.APIKey = v
	}
	if v := os.Getenv("QDRANT_API_KEY"); v != "" {
		c.Qdrant.APIKey = v
	}
	if v := os.Getenv("QDRANT_URL"); v != "" {
		c.Qdrant.URL = v
	}
}
