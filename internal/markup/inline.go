// Package markup renders the small markdown subset that shows up in tool payloads: inline emphasis and code, and a
// line-oriented view of headings, lists, quotes and fenced code.
package markup

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"permit/internal/render"
)

type spanKind int

const (
	spanBoldItalic spanKind = iota
	spanBold
	spanItalic
	spanCode
)

type spanPattern struct {
	re   *regexp.Regexp
	kind spanKind
	// intraword delimiters ('_') may not touch a word character on their outer side.
	flanked bool
}

// Ordered by priority; on equal start positions the earlier pattern wins.
var spanPatterns = []spanPattern{
	{re: regexp.MustCompile(`\*\*\*(\S(?:.*?\S)?)\*\*\*`), kind: spanBoldItalic},
	{re: regexp.MustCompile(`___(\S(?:.*?\S)?)___`), kind: spanBoldItalic, flanked: true},
	{re: regexp.MustCompile(`\*\*(\S(?:.*?\S)?)\*\*`), kind: spanBold},
	{re: regexp.MustCompile(`__(\S(?:.*?\S)?)__`), kind: spanBold, flanked: true},
	{re: regexp.MustCompile(`\*([^*\s](?:[^*]*[^*\s])?)\*`), kind: spanItalic},
	{re: regexp.MustCompile(`_([^_\s](?:[^_]*[^_\s])?)_`), kind: spanItalic, flanked: true},
	{re: regexp.MustCompile("`([^`]+)`"), kind: spanCode},
}

// match is a span found in the text: [start,end) is the whole span, [innerStart,innerEnd) its content.
type match struct {
	start, end           int
	innerStart, innerEnd int
	kind                 spanKind
}

// RenderInline renders bold, italic, bold-italic and code spans, removing their delimiters. Spans are matched left to
// right without overlap; the earliest start wins. Text outside spans keeps base.
func RenderInline(text string, base render.Style) []render.StyledRun {
	var runs []render.StyledRun
	pos := 0
	for pos < len(text) {
		m, ok := nextSpan(text, pos)
		if !ok {
			break
		}
		if m.start > pos {
			runs = append(runs, render.Run(text[pos:m.start], base))
		}
		runs = append(runs, render.Run(text[m.innerStart:m.innerEnd], spanStyle(m.kind, base)))
		pos = m.end
	}
	if pos < len(text) {
		runs = append(runs, render.Run(text[pos:], base))
	}
	return runs
}

// StripInline returns text with inline delimiters removed.
func StripInline(text string) string {
	return render.PlainText(RenderInline(text, render.Style{}))
}

func spanStyle(kind spanKind, base render.Style) render.Style {
	switch kind {
	case spanBoldItalic:
		return base.Bold().Italic()
	case spanBold:
		return base.Bold()
	case spanItalic:
		return base.Italic()
	default:
		st := base.Fixed()
		st.Color = render.ColorMarkupCode
		st.Background = render.ColorMarkupCodeBackground
		return st
	}
}

func nextSpan(text string, from int) (match, bool) {
	best := match{start: -1}
	for _, p := range spanPatterns {
		m, ok := findFrom(p, text, from)
		if !ok {
			continue
		}
		if best.start < 0 || m.start < best.start {
			best = m
		}
	}
	return best, best.start >= 0
}

func findFrom(p spanPattern, text string, from int) (match, bool) {
	for from < len(text) {
		loc := p.re.FindStringSubmatchIndex(text[from:])
		if loc == nil {
			return match{}, false
		}
		m := match{
			start:      from + loc[0],
			end:        from + loc[1],
			innerStart: from + loc[2],
			innerEnd:   from + loc[3],
			kind:       p.kind,
		}
		if !p.flanked || outerFlanksClear(text, m.start, m.end) {
			return m, true
		}
		from = m.start + 1
	}
	return match{}, false
}

func outerFlanksClear(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
