package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ToANSI renders runs as a terminal string using p.
func ToANSI(runs []StyledRun, p Palette) string {
	var sb strings.Builder
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		sb.WriteString(p.LipglossStyle(r.Style).Render(r.Text))
	}
	return sb.String()
}

// LinesToStrings renders each line with ToANSI.
func LinesToStrings(lines []Line, p Palette) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, ToANSI(line.Runs, p))
	}
	return out
}

// Width returns the display width of runs in terminal cells.
func Width(runs []StyledRun) int {
	w := 0
	for _, r := range runs {
		w += runewidth.StringWidth(r.Text)
	}
	return w
}

// PadLeft right-aligns s in width cells.
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// Center centers s in width cells; an odd remainder goes to the right.
func Center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
