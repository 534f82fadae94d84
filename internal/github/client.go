// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v41/github"
	"golang.org/x/oauth2"

	"github.com/oss-wishlist/wishlists/internal/config"
	"github.com/oss-wishlist/wishlists/internal/logging"
	"github.com/oss-wishlist/wishlists/pkg/models"
)

// Client encapsulates the GitHub API client.
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub API client using configuration from environment variables.
// It initializes the client with the appropriate base URL, authenticates with the GitHub API,
// and tests the connection. It returns the configured client or an error if initialization fails.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	token := cfg.GitHub.Token
	if token == "" {
		return nil, fmt.Errorf("github token not found in configuration")
	}

	// Get domain from config, default to github.com
	domain := cfg.GitHub.Domain
	if domain == "" {
		domain = "github.com"
	}

	// Construct API URL based on domain
	var apiURL string
	if domain == "github.com" {
		apiURL = "https://api.github.com/"
	} else {
		apiURL = fmt.Sprintf("https://%s/api/v3/", domain)
	}

	logging.Info("github configuration",
		"domain", domain,
		"api_url", apiURL,
		"token", logging.MaskSensitive(token))

	// Create the oauth2 client
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	client := github.NewClient(tc)

	// If not using default GitHub.com, set custom API endpoint
	if domain != "github.com" {
		parsedURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url: %w", err)
		}

		client.BaseURL = parsedURL
		client.UploadURL = parsedURL
	}

	// Test the token
	testCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	user, _, err := client.Users.Get(testCtx, "")
	if err != nil {
		logging.Error("failed to test github token", "error", err)
		return nil, fmt.Errorf("error testing github token: %w", err)
	}

	logging.Info("github authentication successful",
		"username", user.GetLogin())

	return &Client{client: client}, nil
}

// splitRepository parses an "owner/repo" slug.
func splitRepository(repository string) (string, string, error) {
	parts := strings.Split(repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository format: %s, expected format: owner/repo", repository)
	}
	return parts[0], parts[1], nil
}

// ListWishlistIssues retrieves all issues in the given state from a GitHub
// repository, optionally filtered to a label. It consumes every page of
// results, filters out pull requests and converts the GitHub API objects
// to our internal model. The repository should be in the format
// "owner/repo". A failure here is fatal to the caller; there is no partial
// result.
func (c *Client) ListWishlistIssues(ctx context.Context, repository, state, label string) ([]models.GitHubIssue, error) {
	owner, repo, err := splitRepository(repository)
	if err != nil {
		return nil, err
	}

	opts := &github.IssueListByRepoOptions{
		State: state,
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}
	if label != "" {
		opts.Labels = []string{label}
	}

	var allIssues []*github.Issue
	for {
		issues, resp, err := c.client.Issues.ListByRepo(ctx, owner, repo, opts)
		if err != nil {
			logging.Error("failed to fetch github issues",
				"repository", repository,
				"error", err)
			return nil, fmt.Errorf("failed to fetch GitHub issues: %w", err)
		}

		allIssues = append(allIssues, issues...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	// Filter out pull requests and convert to our internal model
	var result []models.GitHubIssue
	for _, issue := range allIssues {
		// Pull requests are also returned by the Issues API
		if issue.PullRequestLinks != nil {
			continue
		}
		result = append(result, convertIssue(issue))
	}

	logging.Debug("fetched github issues",
		"repository", repository,
		"state", state,
		"count", len(result))
	return result, nil
}

// ListIssueComments retrieves every comment on a GitHub issue, consuming
// all pages. The repository should be in the format "owner/repo".
func (c *Client) ListIssueComments(ctx context.Context, repository string, issueNumber int) ([]models.IssueComment, error) {
	owner, repo, err := splitRepository(repository)
	if err != nil {
		return nil, err
	}

	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	var result []models.IssueComment
	for {
		comments, resp, err := c.client.Issues.ListComments(ctx, owner, repo, issueNumber, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch comments for issue %s#%d: %w", repo, issueNumber, err)
		}

		for _, comment := range comments {
			result = append(result, convertComment(comment))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return result, nil
}

// convertIssue maps a GitHub API issue onto the internal model.
func convertIssue(issue *github.Issue) models.GitHubIssue {
	labelNames := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labelNames = append(labelNames, label.GetName())
	}

	return models.GitHubIssue{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Body:      issue.GetBody(),
		State:     issue.GetState(),
		CreatedAt: issue.GetCreatedAt(),
		UpdatedAt: issue.GetUpdatedAt(),
		Labels:    labelNames,
	}
}

// convertComment maps a GitHub API issue comment onto the internal model.
func convertComment(comment *github.IssueComment) models.IssueComment {
	return models.IssueComment{
		Author:    comment.GetUser().GetLogin(),
		Body:      comment.GetBody(),
		CreatedAt: comment.GetCreatedAt(),
		UpdatedAt: comment.GetUpdatedAt(),
	}
}
