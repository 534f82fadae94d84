// Package models defines data structures shared across the application.
package models

import (
	"time"
)

// GitHubIssue represents a GitHub issue with its essential fields
type GitHubIssue struct {
	// Number is the issue number in GitHub (e.g., 42)
	Number int

	// Title is the issue's title or summary
	Title string

	// Body is the full markdown body of the issue
	Body string

	// State is the current state of the issue ("open" or "closed")
	State string

	// CreatedAt is the timestamp when the issue was created
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the issue was last updated
	UpdatedAt time.Time

	// Labels is a slice of label names attached to the issue
	Labels []string
}

// IssueComment represents a single comment on a GitHub issue. Comments are
// only consumed by the form resolver, which looks for resubmitted issue
// forms posted by the wishlist bot.
type IssueComment struct {
	// Author is the login of the user that posted the comment
	Author string

	// Body is the full markdown body of the comment
	Body string

	// CreatedAt is the timestamp when the comment was created
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the comment was last updated
	UpdatedAt time.Time
}

// WishlistRecord is the canonical structured output derived from one
// wishlist issue. Optional string fields are empty when absent, never null.
type WishlistRecord struct {
	// ID is a stable identifier derived from the repository or project
	// name plus the issue number (e.g., "my-repo-42")
	ID string `json:"id"`

	// IssueNumber is the source issue number
	IssueNumber int `json:"issueNumber"`

	// ProjectName is the declared project name, falling back to the issue
	// title when the form field is missing
	ProjectName string `json:"projectName"`

	// RepositoryURL is the declared repository URL, possibly empty
	RepositoryURL string `json:"repositoryUrl,omitempty"`

	// Maintainer is the maintainer's GitHub login, leading '@' stripped
	Maintainer string `json:"maintainer,omitempty"`

	// MaintainerAvatarURL is derived from the maintainer login; empty when
	// no maintainer was declared
	MaintainerAvatarURL string `json:"maintainerAvatarUrl,omitempty"`

	// Approved is derived from label membership, never from form text
	Approved bool `json:"approved"`

	// Wishes lists the requested services in source order
	Wishes []string `json:"wishes"`

	// Resources lists the requested resources in source order
	Resources []string `json:"resources"`

	// Technologies lists the declared technologies/ecosystems, duplicates
	// preserved as written
	Technologies []string `json:"technologies"`

	// Urgency is one of "low", "medium", "high" or "critical"
	Urgency string `json:"urgency"`

	// Size is one of "small", "medium" or "large", or empty when the form
	// value was missing or unrecognized
	Size string `json:"size,omitempty"`

	// FulfillURL links to the fulfillment flow for this wishlist
	FulfillURL string `json:"fulfillUrl"`

	// Notes holds free-text notes from the form
	Notes string `json:"notes,omitempty"`

	// AdditionalContext holds the form's additional-context field
	AdditionalContext string `json:"additionalContext,omitempty"`

	// CreatedAt is the source issue's creation timestamp
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the source issue's last-update timestamp
	UpdatedAt time.Time `json:"updatedAt"`
}

// WishlistCache is the persisted aggregate document. It is rebuilt from
// scratch on every run and replaces any previous file at the output path.
type WishlistCache struct {
	// SchemaVersion identifies the cache document shape
	SchemaVersion int `json:"schema_version"`

	// GeneratedAt is the time the cache was built
	GeneratedAt time.Time `json:"generatedAt"`

	// Total is the number of wishlist records in the cache
	Total int `json:"total"`

	// Approved is the number of records with an approval label
	Approved int `json:"approved"`

	// Pending is Total minus Approved
	Pending int `json:"pending"`

	// EcosystemStats maps each technology to the number of records declaring it
	EcosystemStats map[string]int `json:"ecosystemStats"`

	// ServiceStats maps each requested service to the number of records requesting it
	ServiceStats map[string]int `json:"serviceStats"`

	// Wishlists holds the records in listing order
	Wishlists []WishlistRecord `json:"wishlists"`
}
