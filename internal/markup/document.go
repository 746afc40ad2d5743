package markup

import (
	"strings"

	"permit/internal/render"
)

const bulletGlyph = "• "

// RenderDocument renders multi-line markdown line by line. Fenced code is kept verbatim in fixed pitch, headings are
// bold, bullets use a dot glyph and blockquotes are italic. Links are shown by label. Everything outside fences goes
// through RenderInline.
func RenderDocument(text string, base render.Style) []render.Line {
	codeStyle := spanStyle(spanCode, base)
	fenceStyle := base
	fenceStyle.Color = render.ColorDim

	raw := strings.Split(text, "\n")
	lines := make([]render.Line, 0, len(raw))
	inFence := false
	for _, line := range raw {
		if isFence(line) {
			inFence = !inFence
			lines = append(lines, render.NewLine(render.Run(line, fenceStyle)))
			continue
		}
		if inFence {
			lines = append(lines, render.NewLine(render.Run(line, codeStyle)))
			continue
		}
		lines = append(lines, renderBlockLine(line, base))
	}
	return lines
}

func renderBlockLine(line string, base render.Style) render.Line {
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	s := linkSyntax.ReplaceAllString(line[len(indent):], "$1")
	var runs []render.StyledRun
	if indent != "" {
		runs = append(runs, render.Run(indent, base))
	}

	switch {
	case headingPrefix.MatchString(s):
		body := headingPrefix.ReplaceAllString(s, "")
		runs = append(runs, RenderInline(body, base.Bold())...)
	case quotePrefix.MatchString(s):
		quote := base.Italic()
		quote.Color = render.ColorMarkupQuote
		runs = append(runs, render.Run("│ ", quote))
		runs = append(runs, RenderInline(StripBlock(s), quote)...)
	case bulletPrefix.MatchString(s) && !isRule(s):
		runs = append(runs, render.Run(bulletGlyph, base))
		runs = append(runs, RenderInline(bulletPrefix.ReplaceAllString(s, ""), base)...)
	default:
		runs = append(runs, RenderInline(s, base)...)
	}
	return render.Line{Runs: runs}
}

func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

// isRule reports a thematic break such as "---" or "* * *", which must not be read as a bullet.
func isRule(s string) bool {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if len(s) < 3 {
		return false
	}
	return strings.Trim(s, "-") == "" || strings.Trim(s, "*") == ""
}
