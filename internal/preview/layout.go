package preview

import (
	"strings"

	"permit/internal/render"
)

const sectionIndent = "  "

var (
	titleStyle = render.Plain(render.ColorTitle).Bold()
	labelStyle = render.Plain(render.ColorLabel).Bold()
)

// Lines flattens the preview into display lines: the title, then each section label followed by its indented lines,
// sections separated by a blank line.
func (p Preview) Lines() []render.Line {
	lines := []render.Line{render.NewLine(render.Run(p.Title, titleStyle))}
	indent := render.Run(sectionIndent, textStyle)
	for _, s := range p.Sections {
		lines = append(lines, render.Line{}, render.NewLine(render.Run(s.Label, labelStyle)))
		lines = append(lines, render.PrefixLines(s.Lines, indent, indent)...)
	}
	return lines
}

// ANSI renders the preview for a terminal using palette.
func (p Preview) ANSI(palette render.Palette) string {
	return strings.Join(render.LinesToStrings(p.Lines(), palette), "\n")
}

// Plain renders the preview without styling.
func (p Preview) Plain() string {
	out := render.LinesToPlainStrings(p.Lines())
	for i := range out {
		out[i] = strings.TrimRight(out[i], " ")
	}
	return strings.Join(out, "\n")
}
