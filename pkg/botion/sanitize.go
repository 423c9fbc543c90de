package botion

import (
	"regexp"
	"strings"
)

// Untitled is the name used for titles with nothing left after sanitizing.
const Untitled = "untitled"

var (
	unsafeChars = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Zs}-]`)
	separators  = regexp.MustCompile(`[-\s\p{Zs}]+`)
)

// SanitizeTitle turns a plot title into a file name stem: characters other
// than letters, digits, underscores, whitespace and hyphens are dropped,
// the rest is trimmed and lower-cased, and runs of whitespace and hyphens
// become a single underscore.
func SanitizeTitle(title string) string {
	s := unsafeChars.ReplaceAllString(title, "")
	s = strings.ToLower(strings.TrimSpace(s))
	s = separators.ReplaceAllString(s, "_")
	if s == "" {
		return Untitled
	}
	return s
}
