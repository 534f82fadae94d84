package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wishlists",
	Short: "Wishlists builds a JSON cache from GitHub wishlist issues",
	Long: `Wishlists polls a GitHub repository's issue tracker, parses issue-form
markdown into structured wishlist records, and serializes the aggregate into a
single JSON cache file for downstream consumption (e.g., a static site).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add persistent flags that will be available to all commands
	rootCmd.PersistentFlags().StringP("repository", "r", "", "GitHub repository hosting wishlist issues (e.g., 'owner/repo')")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Path of the JSON cache file")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(statsCmd)
}
