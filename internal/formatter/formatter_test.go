package formatter

import (
	"testing"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
)

func TestArticle(t *testing.T) {
	t.Run("snake_case keys", func(t *testing.T) {
		item := map[string]any{
			"title":                  "Scaling Search",
			"brief_description":      "How we index",
			"key_points":             []any{"sharding", "caching"},
			"target_audience":        "engineers",
			"estimated_reading_time": "8 min",
		}
		got := Article(item, 0)
		if got.Title != "Scaling Search" || got.Description != "How we index" {
			t.Errorf("unexpected title/description: %+v", got)
		}
		if len(got.KeyPoints) != 2 || got.KeyPoints[0] != "sharding" {
			t.Errorf("unexpected key points: %v", got.KeyPoints)
		}
		if got.TargetAudience != "engineers" || got.ReadingTime != "8 min" {
			t.Errorf("unexpected audience/reading time: %+v", got)
		}
	})

	t.Run("camelCase keys", func(t *testing.T) {
		item := map[string]any{
			"title":          "T",
			"description":    "D",
			"keyPoints":      []any{"a"},
			"targetAudience": "devs",
			"readingTime":    "3 min",
		}
		got := Article(item, 0)
		if got.Description != "D" || got.KeyPoints[0] != "a" || got.ReadingTime != "3 min" {
			t.Errorf("camelCase keys not honoured: %+v", got)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		got := Article(map[string]any{}, 2)
		if got.Title != "Article 3" {
			t.Errorf("expected placeholder title, got %q", got.Title)
		}
		if got.ReadingTime != "5-10 min" {
			t.Errorf("expected default reading time, got %q", got.ReadingTime)
		}
		if got.KeyPoints == nil || len(got.KeyPoints) != 0 {
			t.Errorf("expected empty key points, got %v", got.KeyPoints)
		}
	})
}

func TestPost(t *testing.T) {
	t.Run("full post", func(t *testing.T) {
		item := map[string]any{
			"post_title":          "Launch day",
			"post_content":        "We shipped.",
			"suggested_hashtags":  []any{"launch", "#startup"},
			"best_platform":       "Twitter",
			"engagement_strategy": "Ask a question",
		}
		got := Post(item, 0)
		if got.Title != "Launch day" || got.Content != "We shipped." {
			t.Errorf("unexpected title/content: %+v", got)
		}
		if got.Platform != "Twitter" || got.PlatformIcon != "🐦" || got.PlatformColor != "#1DA1F2" {
			t.Errorf("platform lookup failed: %+v", got)
		}
		if got.FormattedHashtags[0] != "#launch" || got.FormattedHashtags[1] != "#startup" {
			t.Errorf("hashtag normalisation failed: %v", got.FormattedHashtags)
		}
	})

	t.Run("defaults to LinkedIn", func(t *testing.T) {
		got := Post(map[string]any{}, 0)
		if got.Platform != "LinkedIn" || got.PlatformIcon != "💼" || got.PlatformColor != "#0077B5" {
			t.Errorf("expected LinkedIn defaults, got %+v", got)
		}
		if got.Title != "Post 1" {
			t.Errorf("expected placeholder title, got %q", got.Title)
		}
	})

	t.Run("unknown platform gets generic icon", func(t *testing.T) {
		got := Post(map[string]any{"platform": "Mastodon"}, 0)
		if got.PlatformIcon != "📱" || got.PlatformColor != "#6B7280" {
			t.Errorf("expected generic fallback, got %+v", got)
		}
	})
}

func TestDemo(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		got := Demo(map[string]any{"demo_description": "walkthrough"}, 0)
		if got.Title != "Demo 1" || got.Description != "walkthrough" {
			t.Errorf("unexpected demo: %+v", got)
		}
		if got.Duration != "15-30 min" {
			t.Errorf("expected default duration, got %q", got.Duration)
		}
	})

	t.Run("explicit duration", func(t *testing.T) {
		got := Demo(map[string]any{"estimated_demo_duration": "10 min"}, 0)
		if got.Duration != "10 min" {
			t.Errorf("expected 10 min, got %q", got.Duration)
		}
	})
}

func TestSuggestions(t *testing.T) {
	items := []map[string]any{
		{"title": "A"},
		{"title": "B"},
	}

	t.Run("articles", func(t *testing.T) {
		got := Suggestions(domain.ContentTypeArticle, items)
		if len(got) != 2 {
			t.Fatalf("expected 2 suggestions, got %d", len(got))
		}
		if got[0].ID != 1 || got[1].ID != 2 {
			t.Errorf("expected 1-based IDs, got %d/%d", got[0].ID, got[1].ID)
		}
		if got[0].Kind != domain.KindArticle || got[0].Article == nil {
			t.Errorf("expected article variant, got %+v", got[0])
		}
		if got[1].Article.Title != "B" {
			t.Errorf("expected title B, got %q", got[1].Article.Title)
		}
	})

	t.Run("posts", func(t *testing.T) {
		got := Suggestions(domain.ContentTypeSocialPost, items)
		if got[0].Kind != domain.KindPost || got[0].Post == nil {
			t.Errorf("expected post variant, got %+v", got[0])
		}
	})

	t.Run("demos", func(t *testing.T) {
		got := Suggestions(domain.ContentTypeDemo, items)
		if got[0].Kind != domain.KindDemo || got[0].Demo == nil {
			t.Errorf("expected demo variant, got %+v", got[0])
		}
	})

	t.Run("free-text entries pass through in position", func(t *testing.T) {
		mixed := []map[string]any{
			{"title": "A"},
			{"type": "text", "content": " {\"title\": broken} "},
			{"title": "B"},
		}
		got := Suggestions(domain.ContentTypeArticle, mixed)
		if len(got) != 3 {
			t.Fatalf("expected 3 suggestions, got %d", len(got))
		}
		if got[1].Kind != domain.KindText || got[1].Text != `{"title": broken}` {
			t.Errorf("expected text variant in position, got %+v", got[1])
		}
		if got[0].Kind != domain.KindArticle || got[2].Kind != domain.KindArticle {
			t.Errorf("expected articles around the text entry, got %+v / %+v", got[0], got[2])
		}
		if got[1].ID != 2 || got[2].ID != 3 {
			t.Errorf("expected sequential IDs, got %d/%d", got[1].ID, got[2].ID)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		got := Suggestions(domain.ContentTypeArticle, nil)
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty slice, got %v", got)
		}
	})
}

func TestTextSuggestion(t *testing.T) {
	got := TextSuggestion("  some prose the model produced  \n")
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(got))
	}
	if got[0].Kind != domain.KindText || got[0].Text != "some prose the model produced" {
		t.Errorf("unexpected fallback suggestion: %+v", got[0])
	}
}
