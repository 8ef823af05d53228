package file

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
)

// createTestDOCX creates a minimal valid DOCX file in memory.
func createTestDOCX(documentXML, coreXML string) []byte {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	contentTypes, _ := w.Create("[Content_Types].xml")
	contentTypes.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
</Types>`))

	if documentXML != "" {
		doc, _ := w.Create("word/document.xml")
		doc.Write([]byte(documentXML))
	}

	if coreXML != "" {
		core, _ := w.Create("docProps/core.xml")
		core.Write([]byte(coreXML))
	}

	w.Close()
	return buf.Bytes()
}

func TestSupports(t *testing.T) {
	e := New()
	assert.True(t, e.Supports("notes.txt"))
	assert.True(t, e.Supports("/tmp/report.docx"))
	assert.False(t, e.Supports("https://example.com/page"))
	assert.False(t, e.Supports("http://example.com"))
}

func TestExtract_Text(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "release_notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("  one two three\nfour  "), 0o644))

	doc, err := New().Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "release_notes.txt", doc.Source)
	assert.Equal(t, ".txt", doc.Type)
	assert.Equal(t, "release notes", doc.Title)
	assert.Equal(t, "one two three\nfour", doc.Content)
	assert.Equal(t, 4, doc.WordCount)
	assert.False(t, doc.Timestamp.IsZero())
}

func TestExtract_Markdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(path, []byte("# Heading\n\nBody text."), 0o644))

	doc, err := New().Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, ".md", doc.Type)
	assert.Contains(t, doc.Content, "Body text.")
}

func TestExtract_DOCX(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
<w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
</w:body>
</w:document>`

	coreXML := `<?xml version="1.0" encoding="UTF-8"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">
<dc:title>Quarterly Report</dc:title>
</cp:coreProperties>`

	dir := t.TempDir()
	path := filepath.Join(dir, "report.docx")
	require.NoError(t, os.WriteFile(path, createTestDOCX(docXML, coreXML), 0o644))

	doc, err := New().Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, ".docx", doc.Type)
	assert.Equal(t, "Quarterly Report", doc.Title)
	assert.Equal(t, "First paragraph.\nSecond paragraph.", doc.Content)
	assert.Equal(t, 4, doc.WordCount)
}

func TestExtract_DOCXTitleFallback(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body><w:p><w:r><w:t>Text.</w:t></w:r></w:p></w:body>
</w:document>`

	dir := t.TempDir()
	path := filepath.Join(dir, "meeting-notes.docx")
	require.NoError(t, os.WriteFile(path, createTestDOCX(docXML, ""), 0o644))

	doc, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "meeting notes", doc.Title)
}

func TestExtract_InvalidDOCX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))

	_, err := New().Extract(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestExtract_UnsupportedType(t *testing.T) {
	_, err := New().Extract(context.Background(), "presentation.pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedType))
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := New().Extract(context.Background(), "/nonexistent/file.txt")
	require.Error(t, err)
}
