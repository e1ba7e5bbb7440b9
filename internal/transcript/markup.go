package transcript

import (
	"regexp"
	"strings"
)

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Format converts emphasis markers to strong tags and newlines to visual
// line breaks. Applied once at resolution time. Idempotent: text with no
// remaining ** pairs or newlines passes through unchanged.
func Format(text string) string {
	formatted := boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	return strings.ReplaceAll(formatted, "\n", "<br>")
}
