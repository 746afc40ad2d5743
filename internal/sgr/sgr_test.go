package sgr

import (
	"testing"

	"permit/internal/render"
)

func TestDecode(t *testing.T) {
	red := render.ANSIColors[1]
	brightBlue := render.ANSIBrightColors[4]
	def := render.ColorDefault

	type run struct {
		text  string
		color render.ColorID
	}
	tests := []struct {
		name string
		raw  string
		want []run
	}{
		{"plain", "plain text", []run{{"plain text", def}}},
		{"empty", "", nil},
		{"reset", "\x1b[31mred\x1b[0mnormal", []run{{"red", red}, {"normal", def}}},
		{"default fg", "\x1b[31mred\x1b[39mback", []run{{"red", red}, {"back", def}}},
		{"prefix then color", "a\x1b[94mb", []run{{"a", def}, {"b", brightBlue}}},
		{"bold and color", "\x1b[1;31mx", []run{{"x", red}}},
		{"unknown code is ignored", "\x1b[31ma\x1b[4mb", []run{{"a", red}, {"b", red}}},
		{"empty params keep color", "\x1b[32ma\x1b[mb", []run{{"a", render.ANSIColors[2]}, {"b", render.ANSIColors[2]}}},
		{"malformed segment is verbatim", "\x1b[33mok\x1b[2Kx", []run{{"ok", render.ANSIColors[3]}, {"2Kx", render.ANSIColors[3]}}},
		{"garbage params", "\x1b[zz;31mred", []run{{"red", red}}},
		{"last code wins", "\x1b[31;32mg", []run{{"g", render.ANSIColors[2]}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.raw, def)
			if len(got) != len(tt.want) {
				t.Fatalf("Decode(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
			for i, w := range tt.want {
				if got[i].Text != w.text || got[i].Style.Color != w.color {
					t.Fatalf("run %d = {%q %s}, want {%q %s}", i, got[i].Text, got[i].Style.Color, w.text, w.color)
				}
			}
		})
	}
}

func TestDecode_CustomDefault(t *testing.T) {
	got := Decode("\x1b[31mx\x1b[0my", render.ColorDim)
	if len(got) != 2 || got[1].Style.Color != render.ColorDim {
		t.Fatalf("expected reset to caller default, got %+v", got)
	}
}

func TestDecodeLines(t *testing.T) {
	lines := DecodeLines("\x1b[31mone\ntwo\x1b[0m\nthree", render.ColorDefault)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[1].Runs[0].Style.Color != render.ANSIColors[1] {
		t.Fatalf("color should carry across the line break: %+v", lines[1].Runs)
	}
	if lines[2].Text() != "three" || lines[2].Runs[0].Style.Color != render.ColorDefault {
		t.Fatalf("unexpected third line: %+v", lines[2])
	}
}
