// Package form parses GitHub issue-form markdown into typed field values.
//
// Issue forms render each question as a level-three markdown heading
// followed by the answer text. The functions here are best-effort text
// extraction: a missing or malformed field never produces an error, only
// an empty value that callers resolve with their own defaults.
package form

import (
	"strings"
)

// noResponse is the placeholder GitHub inserts when a form field was left
// blank. Decoders treat it as equivalent to an empty answer.
const noResponse = "_no response_"

// headingPrefix marks the start of a form section.
const headingPrefix = "###"

// ExtractSection returns the trimmed text block following the "### <title>"
// heading, up to the next heading or the end of the text. The title match
// is case-insensitive. Returns the empty string when the heading is absent
// or its body is empty.
func ExtractSection(text, title string) string {
	var captured []string
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		if heading, ok := headingTitle(line); ok {
			if inSection {
				break
			}
			if strings.EqualFold(heading, title) {
				inSection = true
			}
			continue
		}
		if inSection {
			captured = append(captured, line)
		}
	}

	return strings.TrimSpace(strings.Join(captured, "\n"))
}

// HasFormSections reports whether the text contains at least one form
// section heading. The resolver uses this to tell a resubmitted form apart
// from an ordinary discussion comment.
func HasFormSections(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if _, ok := headingTitle(line); ok {
			return true
		}
	}
	return false
}

// headingTitle returns the title of a level-three heading line. Deeper
// headings (####) do not terminate a section.
func headingTitle(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, headingPrefix) {
		return "", false
	}
	rest := trimmed[len(headingPrefix):]
	if strings.HasPrefix(rest, "#") {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// isNoResponse reports whether a trimmed value is GitHub's blank-field
// placeholder.
func isNoResponse(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), noResponse)
}
