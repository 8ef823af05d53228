package file

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles local text, Markdown, and DOCX files.
type Extractor struct{}

// New creates a new file extractor.
func New() *Extractor {
	return &Extractor{}
}

// Supports reports whether the source looks like a local file path rather
// than a URL. Extension support is checked in Extract so that unsupported
// file types produce an explicit error instead of being silently skipped.
func (e *Extractor) Supports(source string) bool {
	return !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://")
}

// Extract reads the file and produces a normalised document.
func (e *Extractor) Extract(_ context.Context, source string) (*domain.ExtractedDocument, error) {
	ext := strings.ToLower(filepath.Ext(source))

	var content string
	var title string
	var err error

	switch ext {
	case ".txt", ".md":
		var data []byte
		data, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", source, err)
		}
		content = string(data)
		title = titleFromFilename(source)
	case ".docx":
		content, title, err = extractDocx(source)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, ext)
	}

	content = strings.TrimSpace(content)

	return &domain.ExtractedDocument{
		Source:    filepath.Base(source),
		Type:      ext,
		Title:     title,
		Content:   content,
		WordCount: len(strings.Fields(content)),
		Timestamp: time.Now(),
	}, nil
}

// extractDocx opens the file as a ZIP archive and pulls the text out of
// word/document.xml, and the title out of docProps/core.xml when present.
func extractDocx(source string) (content, title string, err error) {
	reader, err := zip.OpenReader(source)
	if err != nil {
		return "", "", fmt.Errorf("%w: opening %s as docx: %v", domain.ErrInvalidInput, source, err)
	}
	defer reader.Close()

	content, err = extractDocumentText(&reader.Reader)
	if err != nil {
		return "", "", err
	}

	title = extractCoreTitle(&reader.Reader)
	if title == "" {
		title = titleFromFilename(source)
	}
	return content, title, nil
}

// extractDocumentText extracts text from word/document.xml.
func extractDocumentText(reader *zip.Reader) (string, error) {
	for _, f := range reader.File {
		if f.Name != "word/document.xml" {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("%w: reading document.xml: %v", domain.ErrInvalidInput, err)
		}

		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("%w: reading document.xml: %v", domain.ErrInvalidInput, err)
		}

		return parseDocumentXML(data), nil
	}
	return "", nil
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML extracts text content from the document XML, one line
// per paragraph.
func parseDocumentXML(data []byte) string {
	var doc documentXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return ""
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		for _, r := range para.Runs {
			for _, t := range r.Text {
				result.WriteString(t.Content)
			}
		}
	}
	return strings.TrimSpace(result.String())
}

// coreXML represents the structure of docProps/core.xml.
type coreXML struct {
	Title string `xml:"title"`
}

// extractCoreTitle reads the document title from docProps/core.xml, or
// returns an empty string when absent.
func extractCoreTitle(reader *zip.Reader) string {
	for _, f := range reader.File {
		if f.Name != "docProps/core.xml" {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			break
		}

		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			break
		}

		var core coreXML
		if err := xml.Unmarshal(data, &core); err == nil {
			return strings.TrimSpace(core.Title)
		}
		break
	}
	return ""
}

// titleFromFilename derives a readable title from the file name.
func titleFromFilename(source string) string {
	filename := filepath.Base(source)
	if ext := filepath.Ext(filename); ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return filename
}
