package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oss-wishlist/wishlists/internal/config"
	"github.com/oss-wishlist/wishlists/internal/github"
	"github.com/oss-wishlist/wishlists/internal/logging"
	"github.com/oss-wishlist/wishlists/internal/wishlist"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the wishlist cache from GitHub issues",
	Long: `This command lists the open wishlist issues of the configured repository,
resolves the authoritative form text for each (original body or the latest
resubmission posted by the wishlist bot), parses them into wishlist records,
and writes the aggregated JSON cache file.

A failure to list issues aborts the run without touching the cache file.
A failure to list a single issue's comments only degrades that issue to its
original body.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		label, err := cmd.Flags().GetString("label")
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		applyFlagOverrides(cmd, cfg)

		ctx := cmd.Context()

		githubClient, err := github.NewClient(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize GitHub client: %w", err)
		}

		fmt.Printf("Building wishlist cache from '%s'\n", cfg.Wishlist.Repository)

		// Closed or withdrawn wishlists are excluded by the listing filter;
		// the tracker itself is the source of truth.
		issues, err := githubClient.ListWishlistIssues(ctx, cfg.Wishlist.Repository, "open", label)
		if err != nil {
			return fmt.Errorf("failed to fetch wishlist issues: %w", err)
		}

		fmt.Printf("Found %d wishlist issues to process\n", len(issues))

		records := wishlist.BuildAll(ctx, githubClient, cfg.Wishlist.Repository, issues, cfg.Wishlist.BotLogin)
		cache := wishlist.Aggregate(records, time.Now().UTC())

		if err := wishlist.WriteCache(cache, cfg.Wishlist.OutputPath); err != nil {
			return fmt.Errorf("failed to write wishlist cache: %w", err)
		}

		printSummary(cache, cfg.Wishlist.OutputPath)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringP("label", "l", "", "Only process issues carrying this label")
}

// applyFlagOverrides lets command-line flags win over environment
// configuration for the values both can set.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if repository, err := cmd.Flags().GetString("repository"); err == nil && repository != "" {
		cfg.Wishlist.Repository = repository
	}
	if output, err := cmd.Flags().GetString("output"); err == nil && output != "" {
		cfg.Wishlist.OutputPath = output
	}
	logging.Debug("effective configuration",
		"repository", cfg.Wishlist.Repository,
		"output", cfg.Wishlist.OutputPath,
		"bot_login", cfg.Wishlist.BotLogin)
}
