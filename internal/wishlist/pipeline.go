package wishlist

import (
	"context"
	"sync"

	"github.com/oss-wishlist/wishlists/internal/form"
	"github.com/oss-wishlist/wishlists/pkg/models"
)

// BuildAll resolves and builds a record for every issue. Comment resolution
// is fanned out across issues, one goroutine per issue writing only its own
// slice index; the whole set joins before returning, so callers see a
// complete result or nothing. Records come back in issue listing order.
func BuildAll(ctx context.Context, lister form.CommentLister, repository string, issues []models.GitHubIssue, botLogin string) []models.WishlistRecord {
	records := make([]models.WishlistRecord, len(issues))

	wg := sync.WaitGroup{}
	for i, issue := range issues {
		wg.Add(1)
		go func(i int, issue models.GitHubIssue) {
			defer wg.Done()
			body := form.Resolve(ctx, lister, repository, issue, botLogin)
			records[i] = Build(issue, body)
		}(i, issue)
	}
	wg.Wait()

	return records
}
