package wishlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oss-wishlist/wishlists/pkg/models"
)

func TestDeriveID(t *testing.T) {
	tests := []struct {
		name        string
		repoURL     string
		projectName string
		issueNumber int
		expected    string
	}{
		{
			name:        "Full URL with .git suffix",
			repoURL:     "https://github.com/Acme/My.Repo.git",
			issueNumber: 42,
			expected:    "my-repo-42",
		},
		{
			name:        "Short owner/repo form",
			repoURL:     "acme/Lib_Example",
			issueNumber: 7,
			expected:    "lib-example-7",
		},
		{
			name:        "Trailing slash",
			repoURL:     "https://github.com/acme/widgets/",
			issueNumber: 3,
			expected:    "widgets-3",
		},
		{
			name:        "No URL falls back to project name",
			projectName: "My Cool Project!",
			issueNumber: 9,
			expected:    "my-cool-project-9",
		},
		{
			name:        "Neither usable falls back to generic id",
			repoURL:     "",
			projectName: "---",
			issueNumber: 11,
			expected:    "wishlist-11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deriveID(tt.repoURL, tt.projectName, tt.issueNumber))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"My.Repo", "my-repo"},
		{"  Edge--Case  ", "edge-case"},
		{"already-slugged", "already-slugged"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestBuild(t *testing.T) {
	created := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	body := `### Project Name
Foo

### Repository URL
https://github.com/Acme/My.Repo.git

### Maintainer Username
@octocat

### Services Needed
- [x] Security audit
- [ ] Fuzzing
- [x] Documentation review

### Resources Needed
- [x] CI minutes

### Technologies
Go, TypeScript, Go

### Urgency Level
High - Needed within weeks

### Project Size
Small - Fewer than 3 maintainers

### Additional Context
We ship quarterly.
`

	issue := models.GitHubIssue{
		Number:    42,
		Title:     "Wishlist: Foo",
		Body:      body,
		State:     "open",
		CreatedAt: created,
		UpdatedAt: updated,
		Labels:    []string{"wishlist", "approved-wishlist"},
	}

	record := Build(issue, issue.Body)

	assert.Equal(t, "my-repo-42", record.ID)
	assert.Equal(t, 42, record.IssueNumber)
	assert.Equal(t, "Foo", record.ProjectName)
	assert.Equal(t, "https://github.com/Acme/My.Repo.git", record.RepositoryURL)
	assert.Equal(t, "octocat", record.Maintainer)
	assert.Equal(t, "https://github.com/octocat.png", record.MaintainerAvatarURL)
	assert.True(t, record.Approved)
	assert.Equal(t, []string{"Security audit", "Documentation review"}, record.Wishes)
	assert.Equal(t, []string{"CI minutes"}, record.Resources)
	assert.Equal(t, []string{"Go", "TypeScript", "Go"}, record.Technologies)
	assert.Equal(t, "high", record.Urgency)
	assert.Equal(t, "small", record.Size)
	assert.Equal(t, "We ship quarterly.", record.AdditionalContext)
	assert.Equal(t, "https://oss-wishlist.github.io/fulfill/?issue=42", record.FulfillURL)
	assert.Equal(t, created, record.CreatedAt)
	assert.Equal(t, updated, record.UpdatedAt)
}

func TestBuildDefaults(t *testing.T) {
	issue := models.GitHubIssue{
		Number: 5,
		Title:  "A bare wishlist",
		Body:   "no form sections at all",
		Labels: []string{"wishlist"},
	}

	record := Build(issue, issue.Body)

	assert.Equal(t, "a-bare-wishlist-5", record.ID)
	assert.Equal(t, "A bare wishlist", record.ProjectName)
	assert.Empty(t, record.RepositoryURL)
	assert.Empty(t, record.Maintainer)
	assert.Empty(t, record.MaintainerAvatarURL)
	assert.False(t, record.Approved)
	assert.Equal(t, "medium", record.Urgency)
	assert.Empty(t, record.Size)

	// Empty sequences stay non-nil so they serialize as [].
	require.NotNil(t, record.Wishes)
	require.NotNil(t, record.Resources)
	require.NotNil(t, record.Technologies)
	assert.Empty(t, record.Wishes)
}

func TestBuildGenericFallbackID(t *testing.T) {
	issue := models.GitHubIssue{Number: 13, Title: "", Body: ""}

	record := Build(issue, issue.Body)

	assert.Equal(t, "wishlist-13", record.ID)
	assert.Equal(t, "Wishlist #13", record.ProjectName)
}

func TestBuildExplicitFulfillURL(t *testing.T) {
	body := "### Project Name\nBar\n\nFulfill this wishlist: https://example.com/fulfill/bar\n"
	issue := models.GitHubIssue{Number: 8, Body: body}

	record := Build(issue, issue.Body)

	assert.Equal(t, "https://example.com/fulfill/bar", record.FulfillURL)
}

func TestHasApprovalLabel(t *testing.T) {
	assert.True(t, hasApprovalLabel([]string{"wishlist", "approved"}))
	assert.True(t, hasApprovalLabel([]string{"Approved-Wishlist"}))
	assert.False(t, hasApprovalLabel([]string{"wishlist", "needs-triage"}))
	assert.False(t, hasApprovalLabel(nil))
}
