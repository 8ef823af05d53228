package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show ingested state",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	stats, err := ingestService.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}

	profile := "no"
	if stats.HasProfile {
		profile = "yes"
	}
	cmd.Printf("Vectors:   %d\n", stats.PointCount)
	cmd.Printf("Documents: %d\n", stats.DocumentCount)
	cmd.Printf("Profile:   %s\n", profile)
	return nil
}
