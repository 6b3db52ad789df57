package services

import (
	"strings"
	"unicode"
)

// Slugify normalizes a value into a URL-safe slug: lowercase, with every run
// of non-alphanumeric characters collapsed to a single hyphen and leading or
// trailing hyphens trimmed.
func Slugify(value string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(value) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune('-')
		}
	}
	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}

// SplitTags parses a comma-separated tag list, trimming each token and
// dropping empty ones. Order is preserved.
func SplitTags(value string) []string {
	tags := []string{}
	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			tags = append(tags, token)
		}
	}
	return tags
}
