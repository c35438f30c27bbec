package util

import "strings"

// CleanText collapses whitespace runs and strips non-breaking-space
// artifacts that job boards leave in rendered text.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// TrimRegion normalizes a labeled page region's text. Lever regions
// carry a trailing slash separator.
func TrimRegion(s string) string {
	return strings.TrimSpace(strings.TrimRight(CleanText(s), "/"))
}
