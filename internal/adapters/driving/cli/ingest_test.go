package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestCmd_Use(t *testing.T) {
	assert.Equal(t, "ingest [file-or-url...]", ingestCmd.Use)
}

func TestIngestCmd_HasWatchFlag(t *testing.T) {
	flag := ingestCmd.Flags().Lookup("watch")
	require.NotNil(t, flag)
	assert.Equal(t, "w", flag.Shorthand)
}

func TestIngestCmd_NoArguments(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("ingest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to ingest")
}

func TestIngestCmd_IngestsFiles(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.md")
	require.NoError(t, os.WriteFile(first, []byte("alpha content here"), 0600))
	require.NoError(t, os.WriteFile(second, []byte("beta content here"), 0600))

	out, err := execute("ingest", first, second)
	require.NoError(t, err)
	assert.Contains(t, out, "Ingested 2 documents")

	mock := ingestService.(*mockIngestService)
	require.Len(t, mock.lastDocs, 2)
	assert.Equal(t, "a.txt", mock.lastDocs[0].Source)
	assert.Equal(t, "b.md", mock.lastDocs[1].Source)
}

func TestIngestCmd_UnsupportedSource(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	// Only the file extractor is wired in tests; URLs have no extractor.
	_, err := execute("ingest", "https://example.com/page")
	assert.Error(t, err)
}
