// Package sgr decodes ANSI SGR color sequences in terminal output into styled runs.
//
// Only foreground color codes are interpreted: 0 and 39 reset to the caller's default, 30-37 and 90-97 select the
// standard and bright colors. Every other code is ignored. Decoding never fails; malformed sequences are shown as text.
package sgr

import (
	"strconv"
	"strings"

	"permit/internal/render"
)

// Introducer is the control sequence introducer, ESC '['.
const Introducer = "\x1b["

// Decode splits raw into runs colored by the SGR sequences it contains. Text before the first sequence uses
// defaultColor. Runs with empty text are omitted.
func Decode(raw string, defaultColor render.ColorID) []render.StyledRun {
	segments := strings.Split(raw, Introducer)
	runs := make([]render.StyledRun, 0, len(segments))
	emit := func(text string, color render.ColorID) {
		if text == "" {
			return
		}
		runs = append(runs, render.Run(text, render.Plain(color)))
	}

	emit(segments[0], defaultColor)
	current := defaultColor
	for _, seg := range segments[1:] {
		end := strings.IndexByte(seg, 'm')
		if end < 0 {
			emit(seg, current)
			continue
		}
		current = applyParams(seg[:end], current, defaultColor)
		emit(seg[end+1:], current)
	}
	return runs
}

// DecodeLines decodes raw and splits the result into lines; colors carry across line breaks.
func DecodeLines(raw string, defaultColor render.ColorID) []render.Line {
	return render.SplitLines(Decode(raw, defaultColor))
}

func applyParams(params string, current, defaultColor render.ColorID) render.ColorID {
	if params == "" {
		return current
	}
	for _, p := range strings.Split(params, ";") {
		code, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			continue
		}
		if c, ok := colorFor(code, defaultColor); ok {
			current = c
		}
	}
	return current
}

// colorFor maps a single SGR code to a color; ok is false for codes that leave the color unchanged.
func colorFor(code int, defaultColor render.ColorID) (render.ColorID, bool) {
	switch {
	case code == 0 || code == 39:
		return defaultColor, true
	case code >= 30 && code <= 37:
		return render.ANSIColors[code-30], true
	case code >= 90 && code <= 97:
		return render.ANSIBrightColors[code-90], true
	default:
		return "", false
	}
}
