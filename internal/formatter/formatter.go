// Package formatter normalises model-produced content ideas into their
// canonical domain shapes. Models are inconsistent about key casing
// (snake_case vs camelCase) and frequently omit fields, so every accessor
// here tolerates both spellings and substitutes a sensible default.
// Formatting never fails: malformed input yields zero-valued fields.
package formatter

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
)

// DefaultPlatform is assumed when a post names no platform.
const DefaultPlatform = "LinkedIn"

// Display defaults for fields models commonly omit.
const (
	defaultReadingTime  = "5-10 min"
	defaultDemoDuration = "15-30 min"
)

var platformIcons = map[string]string{
	"LinkedIn":  "💼",
	"Twitter":   "🐦",
	"Instagram": "📸",
	"Facebook":  "📘",
	"YouTube":   "📺",
	"TikTok":    "🎵",
}

var platformColors = map[string]string{
	"LinkedIn":  "#0077B5",
	"Twitter":   "#1DA1F2",
	"Instagram": "#E4405F",
	"Facebook":  "#1877F2",
	"YouTube":   "#FF0000",
	"TikTok":    "#000000",
}

// Suggestions converts a list of parsed JSON objects into canonical
// suggestions of the requested content type. IDs are assigned 1-based in
// input order.
func Suggestions(contentType domain.ContentType, items []map[string]any) []domain.Suggestion {
	out := make([]domain.Suggestion, 0, len(items))
	for i, item := range items {
		out = append(out, suggestion(contentType, item, i))
	}
	return out
}

// TextSuggestion wraps unparseable model output as a single free-text
// suggestion so callers always receive a non-empty result.
func TextSuggestion(raw string) []domain.Suggestion {
	return []domain.Suggestion{{
		ID:   1,
		Kind: domain.KindText,
		Text: strings.TrimSpace(raw),
	}}
}

func suggestion(contentType domain.ContentType, item map[string]any, index int) domain.Suggestion {
	// Free-text entries produced when a fragment of the model's output
	// could not be parsed pass through untyped, whatever the content type.
	if t, _ := item["type"].(string); t == "text" {
		if content, ok := item["content"].(string); ok {
			return domain.Suggestion{ID: index + 1, Kind: domain.KindText, Text: strings.TrimSpace(content)}
		}
	}

	switch contentType {
	case domain.ContentTypeSocialPost:
		post := Post(item, index)
		return domain.Suggestion{ID: index + 1, Kind: domain.KindPost, Post: &post}
	case domain.ContentTypeDemo:
		demo := Demo(item, index)
		return domain.Suggestion{ID: index + 1, Kind: domain.KindDemo, Demo: &demo}
	default:
		article := Article(item, index)
		return domain.Suggestion{ID: index + 1, Kind: domain.KindArticle, Article: &article}
	}
}

// Article normalises one article idea. index is 0-based and used only for
// the placeholder title.
func Article(item map[string]any, index int) domain.ArticleIdea {
	return domain.ArticleIdea{
		Title:          stringField(item, fmt.Sprintf("Article %d", index+1), "title"),
		Description:    stringField(item, "", "description", "brief_description"),
		KeyPoints:      stringSlice(item, "keyPoints", "key_points"),
		TargetAudience: stringField(item, "", "targetAudience", "target_audience"),
		ReadingTime:    stringField(item, defaultReadingTime, "readingTime", "estimated_reading_time"),
	}
}

// Post normalises one social media post, resolving the platform before
// deriving its icon and colour.
func Post(item map[string]any, index int) domain.SocialPost {
	platform := stringField(item, DefaultPlatform, "best_platform", "platform")
	hashtags := stringSlice(item, "suggested_hashtags", "hashtags")
	return domain.SocialPost{
		Title:              stringField(item, fmt.Sprintf("Post %d", index+1), "post_title", "title"),
		Content:            stringField(item, "", "post_content", "content"),
		Hashtags:           hashtags,
		Platform:           platform,
		EngagementStrategy: stringField(item, "", "engagement_strategy", "engagementStrategy"),
		FormattedHashtags:  Hashtags(hashtags),
		PlatformIcon:       PlatformIcon(platform),
		PlatformColor:      PlatformColor(platform),
	}
}

// Demo normalises one demo application idea.
func Demo(item map[string]any, index int) domain.DemoIdea {
	return domain.DemoIdea{
		Title:          stringField(item, fmt.Sprintf("Demo %d", index+1), "title"),
		Description:    stringField(item, "", "description", "demo_description"),
		KeyFeatures:    stringSlice(item, "keyFeatures", "key_features"),
		TargetAudience: stringField(item, "", "targetAudience", "target_audience"),
		Duration:       stringField(item, defaultDemoDuration, "duration", "estimated_demo_duration"),
	}
}

// Hashtags prefixes each tag with '#' unless it already has one.
func Hashtags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		out = append(out, tag)
	}
	return out
}

// PlatformIcon returns the display icon for a platform, falling back to a
// generic one for unknown platforms.
func PlatformIcon(platform string) string {
	if icon, ok := platformIcons[platform]; ok {
		return icon
	}
	return "📱"
}

// PlatformColor returns the brand colour for a platform, falling back to a
// neutral grey for unknown platforms.
func PlatformColor(platform string) string {
	if color, ok := platformColors[platform]; ok {
		return color
	}
	return "#6B7280"
}

// stringField returns the first key present in item with a non-empty string
// value, or fallback.
func stringField(item map[string]any, fallback string, keys ...string) string {
	for _, key := range keys {
		if s, ok := item[key].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// stringSlice returns the first key present in item holding a list,
// keeping only its string elements. Missing or non-list values yield an
// empty slice, never nil.
func stringSlice(item map[string]any, keys ...string) []string {
	for _, key := range keys {
		list, ok := item[key].([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(list))
		for _, v := range list {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}
