package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oss-wishlist/wishlists/pkg/models"
)

const botLogin = "github-actions[bot]"

// fakeCommentLister returns canned comments or a canned error.
type fakeCommentLister struct {
	comments []models.IssueComment
	err      error
}

func (f *fakeCommentLister) ListIssueComments(ctx context.Context, repository string, issueNumber int) ([]models.IssueComment, error) {
	return f.comments, f.err
}

func TestResolve(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issue := models.GitHubIssue{
		Number: 7,
		Body:   "### Project Name\noriginal\n",
	}

	tests := []struct {
		name     string
		lister   *fakeCommentLister
		expected string
	}{
		{
			name:     "No comments uses issue body",
			lister:   &fakeCommentLister{},
			expected: issue.Body,
		},
		{
			name: "Listing failure falls back to issue body",
			lister: &fakeCommentLister{
				err: errors.New("rate limited"),
			},
			expected: issue.Body,
		},
		{
			name: "Bot comment with form sections is authoritative",
			lister: &fakeCommentLister{
				comments: []models.IssueComment{
					{Author: botLogin, Body: "### Project Name\nresubmitted\n", CreatedAt: base},
				},
			},
			expected: "### Project Name\nresubmitted\n",
		},
		{
			name: "Most recent bot comment wins",
			lister: &fakeCommentLister{
				comments: []models.IssueComment{
					{Author: botLogin, Body: "### Project Name\nsecond\n", CreatedAt: base.Add(2 * time.Hour)},
					{Author: botLogin, Body: "### Project Name\nfirst\n", CreatedAt: base},
				},
			},
			expected: "### Project Name\nsecond\n",
		},
		{
			name: "Non-bot comments are ignored",
			lister: &fakeCommentLister{
				comments: []models.IssueComment{
					{Author: "some-user", Body: "### Project Name\nspoofed\n", CreatedAt: base.Add(time.Hour)},
				},
			},
			expected: issue.Body,
		},
		{
			name: "Bot comment without form sections falls back",
			lister: &fakeCommentLister{
				comments: []models.IssueComment{
					{Author: botLogin, Body: "Thanks, we received your submission!", CreatedAt: base},
				},
			},
			expected: issue.Body,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(context.Background(), tt.lister, "acme/wishlists", issue, botLogin)
			assert.Equal(t, tt.expected, got)
		})
	}
}
