package form

import (
	"context"

	"github.com/oss-wishlist/wishlists/internal/logging"
	"github.com/oss-wishlist/wishlists/pkg/models"
)

// CommentLister lists the comments of a single issue. Implemented by the
// GitHub client; tests substitute a fake.
type CommentLister interface {
	ListIssueComments(ctx context.Context, repository string, issueNumber int) ([]models.IssueComment, error)
}

// Resolve returns the authoritative form text for an issue.
//
// Issue forms cannot be edited in place, so the wishlist bot posts a
// resubmitted form as a fresh comment. Among the comments authored by the
// bot, the most recently created one wins, provided it actually contains
// form sections. In every other case, including a failed comment listing,
// the original issue body is authoritative. A listing failure is a
// per-issue degradation, never a run abort.
func Resolve(ctx context.Context, lister CommentLister, repository string, issue models.GitHubIssue, botLogin string) string {
	comments, err := lister.ListIssueComments(ctx, repository, issue.Number)
	if err != nil {
		logging.Warn("failed to list issue comments, falling back to issue body",
			"repository", repository,
			"issue_number", issue.Number,
			"error", err)
		return issue.Body
	}

	var latest *models.IssueComment
	for i := range comments {
		comment := &comments[i]
		if comment.Author != botLogin {
			continue
		}
		if latest == nil || comment.CreatedAt.After(latest.CreatedAt) {
			latest = comment
		}
	}

	if latest == nil {
		return issue.Body
	}
	if !HasFormSections(latest.Body) {
		logging.Debug("latest bot comment has no form sections, using issue body",
			"issue_number", issue.Number)
		return issue.Body
	}

	logging.Debug("using resubmitted form from bot comment",
		"issue_number", issue.Number,
		"comment_created_at", latest.CreatedAt)
	return latest.Body
}
