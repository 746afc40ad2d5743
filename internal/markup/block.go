package markup

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

var (
	quotePrefix    = regexp.MustCompile(`^>\s?`)
	headingPrefix  = regexp.MustCompile(`^#{1,6}\s+`)
	bulletPrefix   = regexp.MustCompile(`^[-*+]\s+`)
	numberedPrefix = regexp.MustCompile(`^\d+[.)]\s+`)
	linkSyntax     = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
)

// StripBlock removes block-level markdown from a single line: blockquote markers, then one heading, bullet or
// numbered-list prefix. Links become their label. Inline emphasis is left alone.
func StripBlock(line string) string {
	s := strings.TrimSpace(line)
	for quotePrefix.MatchString(s) {
		s = strings.TrimLeft(quotePrefix.ReplaceAllString(s, ""), " \t")
	}
	switch {
	case headingPrefix.MatchString(s):
		s = headingPrefix.ReplaceAllString(s, "")
	case bulletPrefix.MatchString(s):
		s = bulletPrefix.ReplaceAllString(s, "")
	case numberedPrefix.MatchString(s):
		s = numberedPrefix.ReplaceAllString(s, "")
	}
	return linkSyntax.ReplaceAllString(s, "$1")
}

// Summary returns a single-line, plain-text summary of text: escape sequences are dropped, the first non-blank line
// is stripped of block and inline markup, and the result is truncated to width display cells. width <= 0 disables
// truncation.
func Summary(text string, width int) string {
	text = ansi.Strip(text)
	first := ""
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" && !isFence(line) {
			first = line
			break
		}
	}
	s := strings.Join(strings.Fields(StripInline(StripBlock(first))), " ")
	if width > 0 && runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return s
}
