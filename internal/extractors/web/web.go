package web

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contentgen-cli/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// DefaultTimeout bounds a single page fetch.
const DefaultTimeout = 10 * time.Second

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Extractor fetches URLs and converts their HTML to plain text.
type Extractor struct {
	client *http.Client
}

// New creates a new web extractor with the default fetch timeout.
func New() *Extractor {
	return &Extractor{
		client: &http.Client{Timeout: DefaultTimeout},
	}
}

// Supports reports whether the source is an HTTP or HTTPS URL.
func (e *Extractor) Supports(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Extract fetches the page and produces a normalised document. It never
// returns an error for fetch or parse failures; those yield a placeholder
// record instead.
func (e *Extractor) Extract(ctx context.Context, source string) (*domain.ExtractedDocument, error) {
	logger.Debug("extracting content from %s", source)

	body, err := e.fetch(ctx, source)
	if err != nil {
		logger.Warn("URL extraction failed for %s: %v", source, err)
		return placeholder(source, err), nil
	}

	content := extractMainContent(body)
	title := extractTitle(body)

	return &domain.ExtractedDocument{
		Source:    source,
		Type:      "url",
		Title:     title,
		Content:   content,
		WordCount: len(strings.Fields(content)),
		Timestamp: time.Now(),
	}, nil
}

func (e *Extractor) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// placeholder builds the record returned when a URL could not be read.
func placeholder(source string, err error) *domain.ExtractedDocument {
	return &domain.ExtractedDocument{
		Source:    source,
		Type:      "url",
		Title:     "Content extraction failed",
		Content:   fmt.Sprintf("Content from %s could not be extracted. Error: %v", source, err),
		WordCount: 0,
		Timestamp: time.Now(),
	}
}

// Pre-compiled regular expressions for HTML parsing performance.
var (
	titleTag      = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	h1Tag         = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	scriptTag     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag   = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	navTag        = regexp.MustCompile(`(?is)<nav[^>]*>.*?</nav>`)
	footerTag     = regexp.MustCompile(`(?is)<footer[^>]*>.*?</footer>`)
	headerTag     = regexp.MustCompile(`(?is)<header[^>]*>.*?</header>`)
	svgTag        = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)
	htmlComments  = regexp.MustCompile(`(?s)<!--.*?-->`)
	mainTag       = regexp.MustCompile(`(?is)<main[^>]*>(.*?)</main>`)
	articleTag    = regexp.MustCompile(`(?is)<article[^>]*>(.*?)</article>`)
	bodyTag       = regexp.MustCompile(`(?is)<body[^>]*>(.*?)</body>`)
	blockElements = regexp.MustCompile(`(?i)</?(p|div|br|hr|h[1-6]|li|tr|blockquote|pre|table|section|article)[^>]*>`)
	allTags       = regexp.MustCompile(`<[^>]+>`)
	multiSpaces   = regexp.MustCompile(`\s+`)
)

// extractMainContent strips boilerplate elements and returns the text of
// the page's main content area, falling back to the whole body.
func extractMainContent(page string) string {
	page = scriptTag.ReplaceAllString(page, "")
	page = styleTag.ReplaceAllString(page, "")
	page = noscriptTag.ReplaceAllString(page, "")
	page = navTag.ReplaceAllString(page, "")
	page = footerTag.ReplaceAllString(page, "")
	page = headerTag.ReplaceAllString(page, "")
	page = svgTag.ReplaceAllString(page, "")
	page = htmlComments.ReplaceAllString(page, "")

	// Prefer the dedicated content containers over the full body.
	content := page
	for _, re := range []*regexp.Regexp{mainTag, articleTag, bodyTag} {
		if matches := re.FindStringSubmatch(page); len(matches) > 1 {
			content = matches[1]
			break
		}
	}

	content = blockElements.ReplaceAllString(content, " ")
	content = allTags.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	content = multiSpaces.ReplaceAllString(content, " ")

	return strings.TrimSpace(content)
}

// extractTitle pulls the page title from <title>, falling back to the
// first <h1>, then to "Untitled".
func extractTitle(page string) string {
	for _, re := range []*regexp.Regexp{titleTag, h1Tag} {
		if matches := re.FindStringSubmatch(page); len(matches) > 1 {
			title := strings.TrimSpace(html.UnescapeString(allTags.ReplaceAllString(matches[1], "")))
			if title != "" {
				return title
			}
		}
	}
	return "Untitled"
}
