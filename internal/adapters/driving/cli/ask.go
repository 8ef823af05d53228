package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driving"
)

var (
	askTopK      int
	askThreshold float64
)

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Answer a question grounded in ingested data",
	Long: `Embeds the query, retrieves the most similar ingested content, and
asks the completion model for an answer grounded in that context. When
nothing relevant is found the model answers from general knowledge and
says so.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "maximum context documents (default 5)")
	askCmd.Flags().Float64Var(&askThreshold, "threshold", 0, "minimum similarity score (default 0.7)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	answer, err := generateService.AnswerQuery(context.Background(), args[0], driving.QueryOptions{
		TopK:           askTopK,
		ScoreThreshold: askThreshold,
	})
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	cmd.Println(answer.Response)

	if len(answer.Context) > 0 {
		cmd.Println()
		cmd.Println("Grounded in:")
		for i, r := range answer.Context {
			source := r.PayloadString("source")
			if source == "" {
				source = "unknown"
			}
			cmd.Printf("  [%d] %s (%.2f)\n", i+1, source, r.Score)
		}
	}
	return nil
}
