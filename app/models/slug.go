package models

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify maps a title to a URL-safe identifier: lowercased, with every
// run of whitespace, punctuation, or other non-alphanumeric characters
// collapsed to a single hyphen, and leading/trailing hyphens stripped.
// Titles that normalize to nothing (e.g. all punctuation) fall back to
// "post-" plus a random 8-character suffix so the result is never empty.
// Uniqueness is not guaranteed here; the post repository enforces it at
// write time.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugSeparators.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "post-" + uuid.NewString()[:8]
	}
	return slug
}
