package render

import "strings"

// ColorID is a semantic color name that a Palette resolves to a terminal color.
type ColorID string

// Weight is the font weight.
type Weight int

const (
	WeightRegular Weight = iota
	WeightBold
)

// Slant is the font slant.
type Slant int

const (
	SlantUpright Slant = iota
	SlantItalic
)

// Pitch is proportional or fixed.
type Pitch int

const (
	PitchProportional Pitch = iota
	PitchFixed
)

// Style is the visual attributes of a run. An empty Background means none.
type Style struct {
	Color      ColorID
	Weight     Weight
	Slant      Slant
	Pitch      Pitch
	Background ColorID
}

// Plain returns a style with only a foreground color.
func Plain(color ColorID) Style {
	return Style{Color: color}
}

// Bold returns a bold copy.
func (s Style) Bold() Style {
	s.Weight = WeightBold
	return s
}

// Italic returns an italic copy.
func (s Style) Italic() Style {
	s.Slant = SlantItalic
	return s
}

// Fixed returns a fixed-pitch copy.
func (s Style) Fixed() Style {
	s.Pitch = PitchFixed
	return s
}

// WithBackground returns a copy with background bg.
func (s Style) WithBackground(bg ColorID) Style {
	s.Background = bg
	return s
}

// StyledRun is text with one style; every renderer produces these.
type StyledRun struct {
	Text  string
	Style Style
}

// Run builds a StyledRun.
func Run(text string, style Style) StyledRun {
	return StyledRun{Text: text, Style: style}
}

// Line is one visual row. Its runs never contain '\n'.
type Line struct {
	Runs []StyledRun
}

// NewLine builds a Line from runs.
func NewLine(runs ...StyledRun) Line {
	return Line{Runs: runs}
}

// Text returns the line without styling.
func (l Line) Text() string {
	return PlainText(l.Runs)
}

// PlainText concatenates the text of runs.
func PlainText(runs []StyledRun) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Compact merges adjacent runs with equal styles and drops empty ones.
func Compact(runs []StyledRun) []StyledRun {
	out := make([]StyledRun, 0, len(runs))
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == r.Style {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	return out
}

// SplitLines splits runs into lines at '\n'; styles carry across the break.
func SplitLines(runs []StyledRun) []Line {
	lines := []Line{}
	current := []StyledRun{}
	for _, r := range runs {
		parts := strings.Split(r.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, Line{Runs: current})
				current = []StyledRun{}
			}
			if part != "" {
				current = append(current, StyledRun{Text: part, Style: r.Style})
			}
		}
	}
	return append(lines, Line{Runs: current})
}

// LinesToPlainStrings returns the plain text of each line.
func LinesToPlainStrings(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, line.Text())
	}
	return out
}

// PrefixLines prepends initial to the first line and subsequent to the rest.
func PrefixLines(lines []Line, initial StyledRun, subsequent StyledRun) []Line {
	out := make([]Line, 0, len(lines))
	for i, l := range lines {
		runs := make([]StyledRun, 0, len(l.Runs)+1)
		if i == 0 {
			runs = append(runs, initial)
		} else {
			runs = append(runs, subsequent)
		}
		runs = append(runs, l.Runs...)
		out = append(out, Line{Runs: runs})
	}
	return out
}

// IsBlank reports whether line has no non-space text.
func IsBlank(line Line) bool {
	for _, r := range line.Runs {
		if strings.TrimSpace(r.Text) != "" {
			return false
		}
	}
	return true
}
