package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors.
const (
	ColorDefault ColorID = "default"
	ColorDim     ColorID = "dim"
	ColorTitle   ColorID = "title"
	ColorLabel   ColorID = "label"
	ColorWarning ColorID = "warning"

	ColorDiffContext          ColorID = "diff.context"
	ColorDiffRemoved          ColorID = "diff.removed"
	ColorDiffRemovedBg        ColorID = "diff.removed.bg"
	ColorDiffRemovedEmphasis  ColorID = "diff.removed.emphasis"
	ColorDiffAdded            ColorID = "diff.added"
	ColorDiffAddedBg          ColorID = "diff.added.bg"
	ColorDiffAddedEmphasis    ColorID = "diff.added.emphasis"
	ColorDiffGutter           ColorID = "diff.gutter"
	ColorDiffEllipsis         ColorID = "diff.ellipsis"
	ColorShellCommand         ColorID = "shell.command"
	ColorShellKeyword         ColorID = "shell.keyword"
	ColorShellFlag            ColorID = "shell.flag"
	ColorShellString          ColorID = "shell.string"
	ColorShellOperator        ColorID = "shell.operator"
	ColorShellComment         ColorID = "shell.comment"
	ColorShellPlain           ColorID = "shell.plain"
	ColorMarkupCode           ColorID = "markup.code"
	ColorMarkupCodeBackground ColorID = "markup.code.bg"
	ColorMarkupQuote          ColorID = "markup.quote"
)

// ANSI standard and bright colors, indexed like SGR 30-37 and 90-97.
var (
	ANSIColors = [8]ColorID{
		"ansi.black", "ansi.red", "ansi.green", "ansi.yellow",
		"ansi.blue", "ansi.magenta", "ansi.cyan", "ansi.white",
	}
	ANSIBrightColors = [8]ColorID{
		"ansi.bright.black", "ansi.bright.red", "ansi.bright.green", "ansi.bright.yellow",
		"ansi.bright.blue", "ansi.bright.magenta", "ansi.bright.cyan", "ansi.bright.white",
	}
)

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Palette maps ColorIDs to lipgloss color strings ("#rrggbb" or an ANSI index). A missing or empty entry means the
// terminal default.
type Palette map[ColorID]string

var darkPalette = Palette{
	ColorDim:     "#6c7086",
	ColorTitle:   "#cdd6f4",
	ColorLabel:   "#89b4fa",
	ColorWarning: "#f9e2af",

	ColorDiffContext:         "#a6adc8",
	ColorDiffRemoved:         "#f38ba8",
	ColorDiffRemovedBg:       "#3b2330",
	ColorDiffRemovedEmphasis: "#6e2e42",
	ColorDiffAdded:           "#a6e3a1",
	ColorDiffAddedBg:         "#1f3324",
	ColorDiffAddedEmphasis:   "#2f5a37",
	ColorDiffGutter:          "#585b70",
	ColorDiffEllipsis:        "#6c7086",

	ColorShellCommand:  "#89b4fa",
	ColorShellKeyword:  "#cba6f7",
	ColorShellFlag:     "#fab387",
	ColorShellString:   "#a6e3a1",
	ColorShellOperator: "#f5c2e7",
	ColorShellComment:  "#6c7086",

	ColorMarkupCode:           "#f5e0dc",
	ColorMarkupCodeBackground: "#313244",
	ColorMarkupQuote:          "#9399b2",
}

var lightPalette = Palette{
	ColorDim:     "#8c8fa1",
	ColorTitle:   "#4c4f69",
	ColorLabel:   "#1e66f5",
	ColorWarning: "#df8e1d",

	ColorDiffContext:         "#5c5f77",
	ColorDiffRemoved:         "#d20f39",
	ColorDiffRemovedBg:       "#fbe3e7",
	ColorDiffRemovedEmphasis: "#f4b8c4",
	ColorDiffAdded:           "#40a02b",
	ColorDiffAddedBg:         "#e3f5df",
	ColorDiffAddedEmphasis:   "#b9e4ae",
	ColorDiffGutter:          "#9ca0b0",
	ColorDiffEllipsis:        "#8c8fa1",

	ColorShellCommand:  "#1e66f5",
	ColorShellKeyword:  "#8839ef",
	ColorShellFlag:     "#fe640b",
	ColorShellString:   "#40a02b",
	ColorShellOperator: "#ea76cb",
	ColorShellComment:  "#8c8fa1",

	ColorMarkupCode:           "#dc8a78",
	ColorMarkupCodeBackground: "#e6e9ef",
	ColorMarkupQuote:          "#7c7f93",
}

// DefaultPalette returns a copy of the palette for theme. Unknown themes get dark.
func DefaultPalette(theme string) Palette {
	base := darkPalette
	if strings.EqualFold(strings.TrimSpace(theme), ThemeLight) {
		base = lightPalette
	}
	out := make(Palette, len(base)+16)
	for k, v := range base {
		out[k] = v
	}
	for i := range ANSIColors {
		out[ANSIColors[i]] = strconv.Itoa(i)
		out[ANSIBrightColors[i]] = strconv.Itoa(i + 8)
	}
	return out
}

// With returns a new palette with overrides applied; p is not modified.
func (p Palette) With(overrides map[string]string) Palette {
	out := make(Palette, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		key := strings.TrimSpace(k)
		if key == "" {
			continue
		}
		out[ColorID(key)] = strings.TrimSpace(v)
	}
	return out
}

// Lookup returns the color for id; ok is false when the terminal default applies.
func (p Palette) Lookup(id ColorID) (string, bool) {
	if id == "" || id == ColorDefault {
		return "", false
	}
	v, ok := p[id]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// LipglossStyle converts s to a lipgloss style. Pitch is ignored: terminals are fixed pitch.
func (p Palette) LipglossStyle(s Style) lipgloss.Style {
	st := lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if c, ok := p.Lookup(s.Color); ok {
		st = st.Foreground(lipgloss.Color(c))
	}
	if c, ok := p.Lookup(s.Background); ok {
		st = st.Background(lipgloss.Color(c))
	}
	if s.Weight == WeightBold {
		st = st.Bold(true)
	}
	if s.Slant == SlantItalic {
		st = st.Italic(true)
	}
	return st
}
