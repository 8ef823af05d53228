package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driving"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the company profile",
	Long: `Uploads, inspects, analyses, and deletes the company profile that
grounds content generation. The profile is a JSON file with description,
industry, goals, targets, products, and values fields; at least one of
description, goals, or industry is required.`,
}

var profileUploadCmd = &cobra.Command{
	Use:   "upload [profile.json]",
	Short: "Upload and embed the company profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileUpload,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored company profile",
	Args:  cobra.NoArgs,
	RunE:  runProfileShow,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the profile and its vectors",
	Args:  cobra.NoArgs,
	RunE:  runProfileDelete,
}

var profileAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Ask the model for insights about the profile",
	Args:  cobra.NoArgs,
	RunE:  runProfileAnalyze,
}

func init() {
	profileCmd.AddCommand(profileUploadCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	profileCmd.AddCommand(profileAnalyzeCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileUpload(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading profile: %w", err)
	}

	var profile domain.CompanyProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("parsing profile: %w", err)
	}

	result, err := ingestService.IngestProfile(context.Background(), &profile)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	if result.Outcome == driving.OutcomeDegraded {
		cmd.Println("Profile stored, but embedding failed: no vectors were written.")
		cmd.Println("Generation will fall back to the profile text only.")
		return nil
	}
	cmd.Printf("Profile uploaded: %d vectors written.\n", result.PointsWritten)
	return nil
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	profile, err := profileStore.Get(context.Background())
	if errors.Is(err, domain.ErrNoProfile) {
		cmd.Println("No profile uploaded.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func runProfileDelete(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	_, err := ingestService.DeleteProfile(context.Background())
	if errors.Is(err, domain.ErrNoProfile) {
		cmd.Println("No profile to delete.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	cmd.Println("Profile deleted.")
	return nil
}

func runProfileAnalyze(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	ctx := context.Background()
	profile, err := profileStore.Get(ctx)
	if errors.Is(err, domain.ErrNoProfile) {
		return errors.New("no profile uploaded; run 'contentgen profile upload' first")
	}
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	analysis, err := generateService.AnalyzeProfile(ctx, profile)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	switch v := analysis.(type) {
	case string:
		cmd.Println(v)
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding analysis: %w", err)
		}
		cmd.Println(string(data))
	}
	return nil
}
