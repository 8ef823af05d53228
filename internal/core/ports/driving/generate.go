package driving

import (
	"context"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
)

// QueryOptions configures a retrieval-augmented query.
type QueryOptions struct {
	// TopK is the maximum number of context documents (default 5).
	TopK int

	// ScoreThreshold is the minimum similarity score (default 0.7).
	// Zero means the default.
	ScoreThreshold float64
}

// SuggestOptions configures suggestion generation.
type SuggestOptions struct {
	// Goals is a free-form statement of what the content should achieve.
	Goals string

	// Profile overrides the stored company profile when non-nil.
	Profile *domain.CompanyProfile
}

// GenerateService produces grounded answers and content suggestions.
//
// Failures in this path propagate: a grounded answer is never silently
// replaced by a fabricated one. Malformed model output, by contrast, is
// recovered locally and degrades to free-text suggestions.
type GenerateService interface {
	// AnswerQuery embeds the query, retrieves context, and asks the
	// completion provider for a grounded answer. An empty context does
	// not fail the query; the model is told to answer from general
	// knowledge instead.
	AnswerQuery(ctx context.Context, query string, opts QueryOptions) (*domain.Answer, error)

	// GenerateSuggestions retrieves context for the content type and
	// goals, prompts the model, and normalises its output into a
	// SuggestionSet. Never fails on malformed model output.
	GenerateSuggestions(ctx context.Context, contentType domain.ContentType, opts SuggestOptions) (*domain.SuggestionSet, error)

	// AnalyzeProfile asks the model for strategic insights about the
	// profile. The result is the model's JSON if parseable, raw text
	// otherwise.
	AnalyzeProfile(ctx context.Context, profile *domain.CompanyProfile) (any, error)
}
