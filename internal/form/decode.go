package form

import (
	"strings"
)

// Urgency levels recognized by DecodeUrgency.
const (
	UrgencyLow      = "low"
	UrgencyMedium   = "medium"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"
)

// Project sizes recognized by DecodeSize.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// checkedMarker is the token marking a checked checkbox line. Matching is
// case-insensitive, so "[X]" is accepted too.
const checkedMarker = "[x]"

// DecodeChecklist returns the checked items of a markdown checkbox list in
// source order. The checkbox marker and the leading list bullet are
// stripped; empty items and the blank-field placeholder are dropped.
// Duplicates are preserved.
func DecodeChecklist(block string) []string {
	var items []string
	for _, line := range strings.Split(block, "\n") {
		idx := strings.Index(strings.ToLower(line), checkedMarker)
		if idx < 0 {
			continue
		}
		item := strings.TrimSpace(line[idx+len(checkedMarker):])
		if item == "" || isNoResponse(item) {
			continue
		}
		items = append(items, item)
	}
	return items
}

// DecodeCommaList splits a comma-separated field into trimmed values.
// Empty segments are dropped; duplicates and casing are preserved.
func DecodeCommaList(block string) []string {
	if isNoResponse(block) {
		return nil
	}
	var values []string
	for _, piece := range strings.Split(block, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		values = append(values, piece)
	}
	return values
}

// DecodeChoice returns the selected option of a dropdown field. Dropdown
// options often carry a trailing human-readable description separated by
// " - " ("High - Needed within weeks"); only the option itself is kept.
func DecodeChoice(block string) string {
	if isNoResponse(block) {
		return ""
	}
	line, _, _ := strings.Cut(block, "\n")
	if idx := strings.Index(line, " - "); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

// DecodeUrgency decodes an urgency field into its canonical lowercase
// value. Missing or unrecognized values fall back to medium.
func DecodeUrgency(block string) string {
	switch strings.ToLower(DecodeChoice(block)) {
	case UrgencyLow:
		return UrgencyLow
	case UrgencyMedium:
		return UrgencyMedium
	case UrgencyHigh:
		return UrgencyHigh
	case UrgencyCritical:
		return UrgencyCritical
	default:
		return UrgencyMedium
	}
}

// DecodeSize decodes a project-size field into its canonical lowercase
// value. Unlike urgency there is no sensible default, so missing or
// unrecognized values decode to the empty string and the field is omitted.
func DecodeSize(block string) string {
	switch strings.ToLower(DecodeChoice(block)) {
	case SizeSmall:
		return SizeSmall
	case SizeMedium:
		return SizeMedium
	case SizeLarge:
		return SizeLarge
	default:
		return ""
	}
}

// DecodeText returns a free-text field's trimmed value, treating the
// blank-field placeholder as empty.
func DecodeText(block string) string {
	if isNoResponse(block) {
		return ""
	}
	return strings.TrimSpace(block)
}
