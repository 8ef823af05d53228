package domain

import "time"

// ContentType selects the kind of content to generate.
type ContentType string

// Supported content types.
const (
	ContentTypeArticle    ContentType = "article"
	ContentTypeSocialPost ContentType = "social_media_post"
	ContentTypeDemo       ContentType = "demo_application"
)

// Valid reports whether the content type is one of the supported kinds.
func (c ContentType) Valid() bool {
	switch c {
	case ContentTypeArticle, ContentTypeSocialPost, ContentTypeDemo:
		return true
	}
	return false
}

// SuggestionKind tags a Suggestion variant.
type SuggestionKind string

// Suggestion variants. KindText is the free-text fallback used when the
// model's output could not be parsed as structured JSON.
const (
	KindArticle SuggestionKind = "article"
	KindPost    SuggestionKind = "social_media_post"
	KindDemo    SuggestionKind = "demo_application"
	KindText    SuggestionKind = "text"
)

// Suggestion is one generated content idea in canonical shape.
// Exactly one of Article, Post, Demo, or Text is set, per Kind.
type Suggestion struct {
	ID      int            `json:"id"`
	Kind    SuggestionKind `json:"kind"`
	Article *ArticleIdea   `json:"article,omitempty"`
	Post    *SocialPost    `json:"post,omitempty"`
	Demo    *DemoIdea      `json:"demo,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// ArticleIdea is a suggested article.
type ArticleIdea struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	KeyPoints      []string `json:"keyPoints"`
	TargetAudience string   `json:"targetAudience"`
	ReadingTime    string   `json:"readingTime"`
}

// SocialPost is a suggested social media post, including presentation
// metadata derived from the platform.
type SocialPost struct {
	Title              string   `json:"title"`
	Content            string   `json:"content"`
	Hashtags           []string `json:"hashtags"`
	Platform           string   `json:"platform"`
	EngagementStrategy string   `json:"engagementStrategy"`
	FormattedHashtags  []string `json:"formattedHashtags"`
	PlatformIcon       string   `json:"platformIcon"`
	PlatformColor      string   `json:"platformColor"`
}

// DemoIdea is a suggested demo application.
type DemoIdea struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	KeyFeatures    []string `json:"keyFeatures"`
	TargetAudience string   `json:"targetAudience"`
	Duration       string   `json:"duration"`
}

// SuggestionSet is the result of one generation call.
type SuggestionSet struct {
	// ContentType is the requested kind.
	ContentType ContentType `json:"contentType"`

	// Suggestions are the generated ideas, in model order.
	Suggestions []Suggestion `json:"suggestions"`

	// Parsed is false when structured extraction failed and the set
	// degraded to free-text items.
	Parsed bool `json:"parsed"`

	// ContextUsed is how many retrieved documents grounded the prompt.
	ContextUsed int `json:"contextUsed"`

	// RawResponse is the unmodified model output.
	RawResponse string `json:"-"`
}

// Answer is the result of a retrieval-augmented query.
type Answer struct {
	// Query is the original question.
	Query string `json:"query"`

	// Response is the model's answer text.
	Response string `json:"response"`

	// Context is the retrieved context the answer was grounded in,
	// ordered by descending score. May be empty.
	Context []SearchResult `json:"context"`
}

// HistoryEntry records one generation, query, or analysis invocation.
type HistoryEntry struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"` // "generation", "rag", or "analysis"
	Timestamp time.Time      `json:"timestamp"`
	Detail    map[string]any `json:"detail,omitempty"`
}
