package tui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	strongPattern = regexp.MustCompile(`<strong>(.*?)</strong>`)
	strongStyle   = lipgloss.NewStyle().Bold(true)
)

// renderMarkup maps the transcript's resolved markup to terminal styling:
// strong tags become bold text, <br> becomes a newline.
func renderMarkup(text string) string {
	out := strongPattern.ReplaceAllStringFunc(text, func(match string) string {
		inner := strongPattern.FindStringSubmatch(match)[1]
		return strongStyle.Render(inner)
	})
	return strings.ReplaceAll(out, "<br>", "\n")
}
