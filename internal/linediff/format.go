package linediff

import (
	"fmt"
	"strconv"

	"permit/internal/render"
)

const minGutterWidth = 3

// gutterSlack keeps the gutter stable when the anchor line is slightly off.
const gutterSlack = 5

// Prefix glyphs per row kind.
const (
	PrefixRemoval  = "- "
	PrefixAddition = "+ "
	PrefixContext  = "  "
)

// RowKind classifies a formatted row.
type RowKind int

// Row kinds.
const (
	RowContext RowKind = iota
	RowRemoval
	RowAddition
	RowEllipsis
)

// Row is one rendered diff line.
type Row struct {
	Kind   RowKind
	Number int    // 1-based line number shown in the gutter; 0 for RowEllipsis.
	Text   string // Line text without prefix or gutter.
	Runs   []render.StyledRun
}

var (
	gutterStyle   = render.Plain(render.ColorDiffGutter)
	contextStyle  = render.Plain(render.ColorDiffContext)
	removalStyle  = render.Plain(render.ColorDiffRemoved).WithBackground(render.ColorDiffRemovedBg)
	additionStyle = render.Plain(render.ColorDiffAdded).WithBackground(render.ColorDiffAddedBg)
	ellipsisStyle = render.Plain(render.ColorDiffEllipsis)
)

// GutterWidth returns the width of the line-number column for ops starting at startLine.
func GutterWidth(ops []Op, startLine int) int {
	startLine = clampStart(startLine)
	oldCount, newCount := 0, 0
	for _, op := range ops {
		n := 1
		if op.IsEllipsis() {
			n = op.Skipped
		}
		switch op.Kind {
		case OpContext:
			oldCount += n
			newCount += n
		case OpRemoval:
			oldCount += n
		case OpAddition:
			newCount += n
		}
	}
	w := len(strconv.Itoa(startLine + max(oldCount, newCount) + gutterSlack))
	return max(minGutterWidth, w)
}

// Format renders ops into one Row per op, numbering old and new lines independently from startLine.
func Format(ops []Op, startLine int) []Row {
	startLine = clampStart(startLine)
	width := GutterWidth(ops, startLine)
	oldNo, newNo := startLine, startLine

	rows := make([]Row, 0, len(ops))
	for _, op := range ops {
		var row Row
		switch {
		case op.IsEllipsis():
			row = ellipsisRow(op, width)
			oldNo += op.Skipped
			newNo += op.Skipped
		case op.Kind == OpRemoval:
			row = numberedRow(RowRemoval, oldNo, op.Text, width, PrefixRemoval, removalStyle)
			oldNo++
		case op.Kind == OpAddition:
			row = numberedRow(RowAddition, newNo, op.Text, width, PrefixAddition, additionStyle)
			newNo++
		default:
			row = numberedRow(RowContext, newNo, op.Text, width, PrefixContext, contextStyle)
			oldNo++
			newNo++
		}
		rows = append(rows, row)
	}
	return rows
}

// Unified diffs, collapses and formats in one call.
func Unified(oldText, newText string, startLine int) []Row {
	return Format(Collapse(Diff(oldText, newText)), startLine)
}

// Lines converts rows to render lines.
func Lines(rows []Row) []render.Line {
	out := make([]render.Line, 0, len(rows))
	for _, r := range rows {
		out = append(out, render.Line{Runs: r.Runs})
	}
	return out
}

func numberedRow(kind RowKind, number int, text string, width int, prefix string, style render.Style) Row {
	return Row{
		Kind:   kind,
		Number: number,
		Text:   text,
		Runs: []render.StyledRun{
			render.Run(render.PadLeft(strconv.Itoa(number), width)+" ", gutterStyle),
			render.Run(prefix, style),
			render.Run(text, style),
		},
	}
}

func ellipsisRow(op Op, width int) Row {
	note := fmt.Sprintf("%d unchanged lines", op.Skipped)
	if op.Skipped == 1 {
		note = "1 unchanged line"
	}
	return Row{
		Kind: RowEllipsis,
		Text: op.Text,
		Runs: []render.StyledRun{
			render.Run(render.Center(op.Text, width)+" ", gutterStyle),
			render.Run(PrefixContext, ellipsisStyle),
			render.Run(note, ellipsisStyle.Italic()),
		},
	}
}

func clampStart(startLine int) int {
	if startLine < 1 {
		return 1
	}
	return startLine
}
