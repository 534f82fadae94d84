// Package wishlist turns resolved issue-form text into wishlist records,
// aggregates them and persists the cache document.
package wishlist

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/oss-wishlist/wishlists/internal/form"
	"github.com/oss-wishlist/wishlists/internal/logging"
	"github.com/oss-wishlist/wishlists/pkg/models"
)

// Canonical issue-form section titles.
const (
	sectionProjectName       = "Project Name"
	sectionRepositoryURL     = "Repository URL"
	sectionMaintainer        = "Maintainer Username"
	sectionServices          = "Services Needed"
	sectionResources         = "Resources Needed"
	sectionTechnologies      = "Technologies"
	sectionUrgency           = "Urgency Level"
	sectionSize              = "Project Size"
	sectionAdditionalContext = "Additional Context"
	sectionNotes             = "Notes"
)

// Labels whose presence marks a wishlist as approved.
var approvalLabels = []string{"approved", "approved-wishlist"}

// fulfillMarkerRe matches the explicit fulfillment link a maintainer can
// embed in the form body.
var fulfillMarkerRe = regexp.MustCompile(`(?i)fulfill this wishlist:\s*(\S+)`)

// nonAlnumRe matches runs of characters that slugify collapses to hyphens.
var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// Build composes one WishlistRecord from an issue and its authoritative
// form text. Missing or malformed fields never fail the build; they
// resolve to the documented defaults.
func Build(issue models.GitHubIssue, formText string) models.WishlistRecord {
	projectName := form.DecodeText(form.ExtractSection(formText, sectionProjectName))
	repoURL := form.DecodeChoice(form.ExtractSection(formText, sectionRepositoryURL))
	maintainer := strings.TrimPrefix(form.DecodeChoice(form.ExtractSection(formText, sectionMaintainer)), "@")

	record := models.WishlistRecord{
		ID:            deriveID(repoURL, projectName, issue.Number),
		IssueNumber:   issue.Number,
		ProjectName:   projectName,
		RepositoryURL: repoURL,
		Maintainer:    maintainer,
		Approved:      hasApprovalLabel(issue.Labels),
		Wishes:        form.DecodeChecklist(form.ExtractSection(formText, sectionServices)),
		Resources:     form.DecodeChecklist(form.ExtractSection(formText, sectionResources)),
		Technologies:  form.DecodeCommaList(form.ExtractSection(formText, sectionTechnologies)),
		Urgency:       form.DecodeUrgency(form.ExtractSection(formText, sectionUrgency)),
		Size:          form.DecodeSize(form.ExtractSection(formText, sectionSize)),
		FulfillURL:    deriveFulfillURL(formText, issue.Number),
		Notes:         form.DecodeText(form.ExtractSection(formText, sectionNotes)),
		CreatedAt:     issue.CreatedAt,
		UpdatedAt:     issue.UpdatedAt,
	}
	record.AdditionalContext = form.DecodeText(form.ExtractSection(formText, sectionAdditionalContext))

	// Sequences serialize as [] rather than null when empty.
	record.Wishes = orEmpty(record.Wishes)
	record.Resources = orEmpty(record.Resources)
	record.Technologies = orEmpty(record.Technologies)

	if record.ProjectName == "" {
		record.ProjectName = fallbackProjectName(issue)
		logging.Warn("wishlist form is missing a project name, using fallback",
			"issue_number", issue.Number,
			"project_name", record.ProjectName)
	}

	if record.Maintainer != "" {
		record.MaintainerAvatarURL = fmt.Sprintf("https://github.com/%s.png", record.Maintainer)
	}

	return record
}

// deriveID builds the stable record identifier. The repository name wins
// when present, then the project name, then a generic fallback. All three
// end with the issue number so the identifier survives form edits.
func deriveID(repoURL, projectName string, issueNumber int) string {
	if slug := Slugify(repoNameFromURL(repoURL)); slug != "" {
		return fmt.Sprintf("%s-%d", slug, issueNumber)
	}
	if slug := Slugify(projectName); slug != "" {
		return fmt.Sprintf("%s-%d", slug, issueNumber)
	}
	return fmt.Sprintf("wishlist-%d", issueNumber)
}

// repoNameFromURL extracts the repository name from a full URL or a short
// "owner/repo" form, stripping a trailing ".git" suffix.
func repoNameFromURL(repoURL string) string {
	repoURL = strings.TrimSuffix(strings.TrimRight(strings.TrimSpace(repoURL), "/"), ".git")
	if repoURL == "" {
		return ""
	}
	if idx := strings.LastIndex(repoURL, "/"); idx >= 0 {
		return repoURL[idx+1:]
	}
	return repoURL
}

// Slugify lowercases a name, collapses non-alphanumeric runs to single
// hyphens and strips leading and trailing hyphens.
func Slugify(name string) string {
	slug := nonAlnumRe.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// deriveFulfillURL prefers an explicit fulfillment link embedded in the
// form body, synthesizing the default fulfillment URL otherwise.
func deriveFulfillURL(formText string, issueNumber int) string {
	if m := fulfillMarkerRe.FindStringSubmatch(formText); m != nil {
		return m[1]
	}
	return fmt.Sprintf("https://oss-wishlist.github.io/fulfill/?issue=%d", issueNumber)
}

// hasApprovalLabel reports whether any of the issue's labels marks the
// wishlist as approved. Approval only ever comes from labels.
func hasApprovalLabel(labels []string) bool {
	for _, label := range labels {
		for _, approval := range approvalLabels {
			if strings.EqualFold(label, approval) {
				return true
			}
		}
	}
	return false
}

// orEmpty replaces a nil slice with an empty one.
func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// fallbackProjectName names a record whose form lacks a project name.
func fallbackProjectName(issue models.GitHubIssue) string {
	if title := strings.TrimSpace(issue.Title); title != "" {
		return title
	}
	return fmt.Sprintf("Wishlist #%d", issue.Number)
}
