package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/oss-wishlist/wishlists/internal/config"
	"github.com/oss-wishlist/wishlists/internal/wishlist"
	"github.com/oss-wishlist/wishlists/pkg/models"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print summary statistics from an existing wishlist cache",
	Long: `This command reads a previously built wishlist cache file and displays
its summary counts without contacting GitHub.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}
		if output == "" {
			output = config.DefaultOutputPath
		}

		cache, err := wishlist.LoadCache(output)
		if err != nil {
			return fmt.Errorf("failed to load wishlist cache: %w", err)
		}

		printSummary(*cache, output)
		return nil
	},
}

// printSummary displays the human-readable counts after a build or load.
func printSummary(cache models.WishlistCache, path string) {
	fmt.Printf("\nWishlist cache: %s (generated %s)\n", path, cache.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("- Total wishlists: %d\n", cache.Total)
	fmt.Printf("- Approved: %d\n", cache.Approved)
	fmt.Printf("- Pending: %d\n", cache.Pending)

	if len(cache.EcosystemStats) > 0 {
		fmt.Println("\nEcosystems:")
		for _, name := range sortedKeys(cache.EcosystemStats) {
			fmt.Printf("- %s: %d\n", name, cache.EcosystemStats[name])
		}
	}

	if len(cache.ServiceStats) > 0 {
		fmt.Println("\nRequested services:")
		for _, name := range sortedKeys(cache.ServiceStats) {
			fmt.Printf("- %s: %d\n", name, cache.ServiceStats[name])
		}
	}
}

// sortedKeys returns map keys in lexicographic order for stable output.
func sortedKeys(stats map[string]int) []string {
	keys := make([]string, 0, len(stats))
	for key := range stats {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
