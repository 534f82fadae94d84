package wishlist

import (
	"time"

	"github.com/oss-wishlist/wishlists/pkg/models"
)

// SchemaVersion identifies the cache document shape written by this build.
const SchemaVersion = 1

// Aggregate computes the cache document from the full record set. It must
// only run once every record has been built. Each stats map counts
// records, not occurrences: a record declaring the same technology twice
// still contributes one.
func Aggregate(records []models.WishlistRecord, generatedAt time.Time) models.WishlistCache {
	if records == nil {
		records = []models.WishlistRecord{}
	}
	cache := models.WishlistCache{
		SchemaVersion:  SchemaVersion,
		GeneratedAt:    generatedAt,
		Total:          len(records),
		EcosystemStats: map[string]int{},
		ServiceStats:   map[string]int{},
		Wishlists:      records,
	}

	for _, record := range records {
		if record.Approved {
			cache.Approved++
		}
		countDistinct(cache.EcosystemStats, record.Technologies)
		countDistinct(cache.ServiceStats, record.Wishes)
	}
	cache.Pending = cache.Total - cache.Approved

	return cache
}

// countDistinct increments stats once per distinct value in the record's
// list, so repeated values within one record count a single time.
func countDistinct(stats map[string]int, values []string) {
	seen := map[string]bool{}
	for _, value := range values {
		if seen[value] {
			continue
		}
		seen[value] = true
		stats[value]++
	}
}
