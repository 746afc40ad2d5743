package shell

import (
	"strings"

	"permit/internal/render"
)

var classStyles = map[TokenClass]render.Style{
	Command:       render.Plain(render.ColorShellCommand).Bold(),
	Keyword:       render.Plain(render.ColorShellKeyword).Bold(),
	Flag:          render.Plain(render.ColorShellFlag),
	StringLiteral: render.Plain(render.ColorShellString),
	Operator:      render.Plain(render.ColorShellOperator),
	Comment:       render.Plain(render.ColorShellComment).Italic(),
	Plain:         render.Plain(render.ColorShellPlain),
}

// StyleFor returns the style used for a token class.
func StyleFor(class TokenClass) render.Style {
	if st, ok := classStyles[class]; ok {
		return st
	}
	return classStyles[Plain]
}

// Highlight tokenizes one line and styles each token by class.
func Highlight(line string) []render.StyledRun {
	tokens := Tokenize(line)
	runs := make([]render.StyledRun, 0, len(tokens))
	for _, tok := range tokens {
		runs = append(runs, render.Run(tok.Text, StyleFor(tok.Class)))
	}
	return runs
}

// HighlightLines highlights a multi-line script, one render.Line per physical line.
func HighlightLines(script string) []render.Line {
	raw := strings.Split(script, "\n")
	lines := make([]render.Line, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, render.Line{Runs: Highlight(l)})
	}
	return lines
}

// HighlightScript highlights a multi-line script as a flat run sequence, re-joining lines with literal "\n" runs.
func HighlightScript(script string) []render.StyledRun {
	var runs []render.StyledRun
	for i, l := range strings.Split(script, "\n") {
		if i > 0 {
			runs = append(runs, render.Run("\n", StyleFor(Plain)))
		}
		runs = append(runs, Highlight(l)...)
	}
	return runs
}
