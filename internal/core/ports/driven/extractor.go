package driven

import (
	"context"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
)

// Extractor converts a source (file path or URL) into an ExtractedDocument.
//
// URL extractors do not fail on unreachable or unparseable pages: they
// return a placeholder record describing the failure, with a zero word
// count. Consumers must tolerate such records.
type Extractor interface {
	// Supports reports whether this extractor handles the source.
	Supports(source string) bool

	// Extract produces the normalised document for the source.
	Extract(ctx context.Context, source string) (*domain.ExtractedDocument, error)
}
