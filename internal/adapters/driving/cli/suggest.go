package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driving"
)

var (
	suggestType  string
	suggestGoals string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate content suggestions",
	Long: `Generates content suggestions grounded in the company profile and
ingested documents. Supported types: article (3 ideas), post (5 social
media posts), demo (3 demo applications).`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestType, "type", "t", "article", "content type: article, post, or demo")
	suggestCmd.Flags().StringVarP(&suggestGoals, "goals", "g", "", "what the content should achieve")
	rootCmd.AddCommand(suggestCmd)
}

// contentTypeAliases maps flag shorthands to canonical content types.
var contentTypeAliases = map[string]domain.ContentType{
	"article":           domain.ContentTypeArticle,
	"post":              domain.ContentTypeSocialPost,
	"social_media_post": domain.ContentTypeSocialPost,
	"demo":              domain.ContentTypeDemo,
	"demo_application":  domain.ContentTypeDemo,
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	contentType, ok := contentTypeAliases[strings.ToLower(suggestType)]
	if !ok {
		return fmt.Errorf("unknown content type %q: use article, post, or demo", suggestType)
	}

	set, err := generateService.GenerateSuggestions(context.Background(), contentType, driving.SuggestOptions{
		Goals: suggestGoals,
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if !set.Parsed {
		cmd.Println("The model's output could not be structured; raw suggestions:")
		cmd.Println()
	}
	for _, s := range set.Suggestions {
		printSuggestion(cmd, s)
	}
	if set.ContextUsed > 0 {
		cmd.Printf("Grounded in %d ingested documents.\n", set.ContextUsed)
	}
	return nil
}

func printSuggestion(cmd *cobra.Command, s domain.Suggestion) {
	switch s.Kind {
	case domain.KindArticle:
		cmd.Printf("[%d] %s\n", s.ID, s.Article.Title)
		cmd.Printf("    %s\n", s.Article.Description)
		for _, p := range s.Article.KeyPoints {
			cmd.Printf("    - %s\n", p)
		}
		cmd.Printf("    Audience: %s  Reading time: %s\n", s.Article.TargetAudience, s.Article.ReadingTime)
	case domain.KindPost:
		cmd.Printf("[%d] %s %s\n", s.ID, s.Post.PlatformIcon, s.Post.Title)
		cmd.Printf("    %s\n", s.Post.Content)
		if len(s.Post.FormattedHashtags) > 0 {
			cmd.Printf("    %s\n", strings.Join(s.Post.FormattedHashtags, " "))
		}
		cmd.Printf("    Platform: %s  Strategy: %s\n", s.Post.Platform, s.Post.EngagementStrategy)
	case domain.KindDemo:
		cmd.Printf("[%d] %s\n", s.ID, s.Demo.Title)
		cmd.Printf("    %s\n", s.Demo.Description)
		for _, f := range s.Demo.KeyFeatures {
			cmd.Printf("    - %s\n", f)
		}
		cmd.Printf("    Audience: %s  Duration: %s\n", s.Demo.TargetAudience, s.Demo.Duration)
	default:
		cmd.Println(s.Text)
	}
	cmd.Println()
}
