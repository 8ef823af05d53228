package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	historyType   string
	historyLimit  int
	historyOffset int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past generations and queries",
	Long: `Lists recorded invocations, newest first. Entry types are
"generation" (suggestions), "rag" (queries), and "analysis".`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyType, "type", "t", "", "filter by entry type")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum entries (0 for all)")
	historyCmd.Flags().IntVar(&historyOffset, "offset", 0, "entries to skip")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	entries, err := historyStore.List(context.Background(), historyType, historyLimit, historyOffset)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No history.")
		return nil
	}

	for _, e := range entries {
		cmd.Printf("%s  %-10s  %s\n", e.Timestamp.Format(time.RFC3339), e.Type, e.ID)
		if ct, ok := e.Detail["contentType"]; ok {
			cmd.Printf("    type: %v\n", ct)
		}
		if q, ok := e.Detail["query"]; ok {
			cmd.Printf("    query: %v\n", q)
		}
	}
	return nil
}
