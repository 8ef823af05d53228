package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driving"
	"github.com/custodia-labs/contentgen-cli/internal/formatter"
	"github.com/custodia-labs/contentgen-cli/internal/logger"
)

// Ensure GenerateService implements the interface.
var _ driving.GenerateService = (*GenerateService)(nil)

// Retrieval defaults.
const (
	defaultTopK            = 5
	defaultQueryThreshold  = 0.7
	suggestThreshold       = 0.5
	suggestionTokenBudget  = 1500
	answerTokenBudget      = 2000
	contextSnippetMaxChars = 200
)

// defaultProfile grounds suggestion generation when no profile has been
// uploaded and none was passed in.
var defaultProfile = domain.CompanyProfile{
	Description: "A content generation platform that helps create social media posts and articles based on uploaded documents and company information.",
	Industry:    "Technology",
	Goals: []string{
		"Generate engaging social media content",
		"Create informative articles and blog posts",
		"Provide AI-powered content suggestions",
	},
}

// GenerateService produces grounded answers and content suggestions.
type GenerateService struct {
	embedder driven.EmbeddingService
	vectors  driven.VectorStore
	llm      driven.LLMService
	profiles driven.ProfileStore
	history  driven.HistoryStore
}

// NewGenerateService creates a new generate service.
func NewGenerateService(
	embedder driven.EmbeddingService,
	vectors driven.VectorStore,
	llm driven.LLMService,
	profiles driven.ProfileStore,
	history driven.HistoryStore,
) *GenerateService {
	return &GenerateService{
		embedder: embedder,
		vectors:  vectors,
		llm:      llm,
		profiles: profiles,
		history:  history,
	}
}

// AnswerQuery embeds the query, retrieves context, and asks the completion
// provider for a grounded answer.
func (s *GenerateService) AnswerQuery(ctx context.Context, query string, opts driving.QueryOptions) (*domain.Answer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is empty", domain.ErrInvalidInput)
	}

	logger.Section("Retrieval-Augmented Query")

	topK := opts.TopK
	if topK <= 0 {
		topK = defaultTopK
	}
	threshold := opts.ScoreThreshold
	if threshold == 0 {
		threshold = defaultQueryThreshold
	}

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	results, err := s.vectors.Search(ctx, embedding, topK, threshold)
	if err != nil {
		return nil, fmt.Errorf("searching context: %w", err)
	}
	logger.Debug("retrieved %d context documents", len(results))

	prompt := answerPrompt(query, results)
	response, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens: answerTokenBudget,
	})
	if err != nil {
		return nil, fmt.Errorf("generating answer: %w", err)
	}

	answer := &domain.Answer{
		Query:    query,
		Response: response,
		Context:  results,
	}

	s.record(ctx, "rag", map[string]any{
		"query":        query,
		"contextCount": len(results),
	})
	return answer, nil
}

// answerPrompt builds the grounded-answer prompt. With no context the model
// is told to answer from general knowledge instead of failing the query.
func answerPrompt(query string, results []domain.SearchResult) string {
	if len(results) == 0 {
		return fmt.Sprintf(`No relevant context documents were found for this query. Answer from general knowledge, and say so.

Query: %s

Response:`, query)
	}

	type contextEntry struct {
		Text  string  `json:"text"`
		Type  string  `json:"type"`
		Score float64 `json:"score"`
	}
	entries := make([]contextEntry, len(results))
	for i, r := range results {
		entries[i] = contextEntry{Text: r.Text(), Type: r.PayloadString("type"), Score: r.Score}
	}
	contextJSON, _ := json.Marshal(entries)

	return fmt.Sprintf(`Based on the following context and query, provide a comprehensive and relevant response:

Context: %s

Query: %s

Please provide a detailed response that:
1. Directly addresses the query
2. Uses information from the provided context
3. Is well-structured and professional
4. Includes actionable insights when applicable

Response:`, contextJSON, query)
}

// GenerateSuggestions retrieves context for the content type and goals,
// prompts the model, and normalises its output.
func (s *GenerateService) GenerateSuggestions(ctx context.Context, contentType domain.ContentType, opts driving.SuggestOptions) (*domain.SuggestionSet, error) {
	if !contentType.Valid() {
		return nil, fmt.Errorf("%w: unknown content type %q", domain.ErrInvalidInput, contentType)
	}

	logger.Section("Suggestion Generation")

	profile := opts.Profile
	if profile == nil {
		stored, err := s.profiles.Get(ctx)
		if err == nil {
			profile = stored
		} else {
			profile = &defaultProfile
		}
	}

	// Context retrieval is best effort. An unreachable store or provider
	// only costs grounding, not the generation itself.
	results := s.searchContext(ctx, searchQuery(contentType, opts.Goals))

	prompt := suggestionPrompt(contentType, profile, opts.Goals, results)
	response, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens: suggestionTokenBudget,
	})
	if err != nil {
		return nil, fmt.Errorf("generating %s suggestions: %w", contentType, err)
	}

	set := &domain.SuggestionSet{
		ContentType: contentType,
		ContextUsed: len(results),
		RawResponse: response,
	}

	if items, ok := extractJSONArray(response); ok {
		set.Suggestions = formatter.Suggestions(contentType, items)
		set.Parsed = true
	} else {
		logger.Warn("could not parse model output as JSON, degrading to text")
		set.Suggestions = formatter.TextSuggestion(response)
		set.Parsed = false
	}

	s.record(ctx, "generation", map[string]any{
		"contentType":  string(contentType),
		"goals":        opts.Goals,
		"contextCount": len(results),
		"parsed":       set.Parsed,
	})
	return set, nil
}

// searchQuery picks the retrieval query: stated goals when given, otherwise
// a content-type default.
func searchQuery(contentType domain.ContentType, goals string) string {
	if goals != "" {
		return goals
	}
	switch contentType {
	case domain.ContentTypeSocialPost:
		return "social media content engagement"
	case domain.ContentTypeArticle:
		return "article content writing"
	case domain.ContentTypeDemo:
		return "demo application ideas development"
	default:
		return "content generation"
	}
}

// searchContext embeds the query and searches the vector store, returning
// nil on any failure.
func (s *GenerateService) searchContext(ctx context.Context, query string) []domain.SearchResult {
	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		logger.Warn("could not embed search query: %v", err)
		return nil
	}

	results, err := s.vectors.Search(ctx, embedding, defaultTopK, suggestThreshold)
	if err != nil {
		logger.Warn("could not search for context: %v", err)
		return nil
	}
	logger.Debug("found %d relevant documents", len(results))
	return results
}

// suggestionSpecs drives the per-content-type prompt sections.
var suggestionSpecs = map[domain.ContentType]struct {
	intro  string
	asks   string
	format string
}{
	domain.ContentTypeArticle: {
		intro: "suggest 3 article ideas that align with the company's goals and reference the uploaded content",
		asks: `1. Article title
2. Brief description (2-3 sentences)
3. Key points to cover (reference uploaded documents when relevant)
4. Target audience
5. Estimated reading time`,
		format: "title, description, keyPoints, targetAudience, readingTime",
	},
	domain.ContentTypeSocialPost: {
		intro: "suggest 5 social media post ideas that reference and promote the uploaded content",
		asks: `1. Post title/headline
2. Post content (2-3 sentences, reference uploaded documents)
3. Suggested hashtags
4. Best platform (LinkedIn, Twitter, Instagram, etc.)
5. Engagement strategy`,
		format: "title, content, hashtags, platform, engagementStrategy",
	},
	domain.ContentTypeDemo: {
		intro: "suggest 3 demo application ideas that showcase the company's capabilities and leverage the uploaded content",
		asks: `1. Demo title
2. Demo description (how it relates to uploaded documents)
3. Key features to highlight
4. Target audience
5. Estimated demo duration`,
		format: "title, description, keyFeatures, targetAudience, duration",
	},
}

// suggestionPrompt builds the generation prompt with the company data,
// goals, and truncated context snippets.
func suggestionPrompt(contentType domain.ContentType, profile *domain.CompanyProfile, goals string, results []domain.SearchResult) string {
	spec := suggestionSpecs[contentType]

	var contextInfo strings.Builder
	if len(results) > 0 {
		contextInfo.WriteString("\n\nRelevant Context from Uploaded Documents:\n")
		for i, r := range results {
			source := r.PayloadString("source")
			if source == "" {
				source = "Document"
			}
			truncated := r.Text()
			if runes := []rune(truncated); len(runes) > contextSnippetMaxChars {
				truncated = string(runes[:contextSnippetMaxChars]) + "..."
			}
			fmt.Fprintf(&contextInfo, "%d. Source: %s\n   Content: %s\n\n", i+1, source, truncated)
		}
	}

	profileJSON, _ := json.Marshal(profile)

	return fmt.Sprintf(`Based on the following company information and uploaded documents, %s:

Company Data: %s
Company Goals: %s%s

Please provide:
%s

Format as JSON array with objects containing: %s.`,
		spec.intro, profileJSON, goals, contextInfo.String(), spec.asks, spec.format)
}

var (
	fencedJSONArray = regexp.MustCompile("(?s)```json\\s*(\\[.*?\\])\\s*```")
	bareJSONArray   = regexp.MustCompile(`(?s)\[.*\]`)
)

// extractJSONArray recovers a JSON array of objects from model output.
// It tries, in order: a fenced json code block, the widest bracketed
// substring, the whole response, and finally each balanced object
// fragment parsed on its own. Non-object array elements are dropped;
// fragments that fail to parse are kept in position as free-text items
// so their content is not lost.
func extractJSONArray(response string) ([]map[string]any, bool) {
	candidates := []string{}
	if m := fencedJSONArray.FindStringSubmatch(response); len(m) > 1 {
		candidates = append(candidates, m[1])
	}
	if m := bareJSONArray.FindString(response); m != "" {
		candidates = append(candidates, m)
	}
	candidates = append(candidates, response)

	for _, candidate := range candidates {
		var raw []any
		if err := json.Unmarshal([]byte(strings.TrimSpace(candidate)), &raw); err != nil {
			continue
		}
		items := make([]map[string]any, 0, len(raw))
		for _, entry := range raw {
			if obj, ok := entry.(map[string]any); ok {
				items = append(items, obj)
			}
		}
		if len(items) > 0 {
			return items, true
		}
	}

	var (
		items  []map[string]any
		parsed int
	)
	for _, frag := range objectFragments(response) {
		var obj map[string]any
		if err := json.Unmarshal([]byte(frag), &obj); err == nil {
			items = append(items, obj)
			parsed++
		} else {
			items = append(items, map[string]any{"type": "text", "content": frag})
		}
	}
	if parsed > 0 {
		return items, true
	}
	return nil, false
}

// objectFragments returns the balanced top-level {...} substrings of s,
// tracking string literals so braces inside values don't split fragments.
func objectFragments(s string) []string {
	var frags []string
	depth := 0
	start := -1
	inString := false
	escaped := false
	for i, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					frags = append(frags, s[start:i+1])
				}
			}
		}
	}
	return frags
}

// AnalyzeProfile asks the model for strategic insights about the profile.
func (s *GenerateService) AnalyzeProfile(ctx context.Context, profile *domain.CompanyProfile) (any, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("validating profile: %w", err)
	}

	profileJSON, _ := json.Marshal(profile)
	prompt := fmt.Sprintf(`Analyze the following company data and provide insights:

Company Data: %s

Please provide:
1. Key strengths and opportunities
2. Potential content themes
3. Target audience analysis
4. Recommended content strategy
5. Competitive advantages to highlight

Format as JSON with these sections.`, profileJSON)

	response, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens: suggestionTokenBudget,
	})
	if err != nil {
		return nil, fmt.Errorf("analyzing profile: %w", err)
	}

	s.record(ctx, "analysis", nil)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(response)), &parsed); err == nil {
		return parsed, nil
	}
	return response, nil
}

// record appends a history entry, logging instead of failing on error.
func (s *GenerateService) record(ctx context.Context, entryType string, detail map[string]any) {
	entry := domain.HistoryEntry{
		ID:        uuid.New().String(),
		Type:      entryType,
		Timestamp: time.Now(),
		Detail:    detail,
	}
	if err := s.history.Append(ctx, entry); err != nil {
		logger.Warn("could not record history entry: %v", err)
	}
}
