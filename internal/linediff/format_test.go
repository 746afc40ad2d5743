package linediff

import (
	"strings"
	"testing"

	"permit/internal/render"
)

func TestFormat_EndToEnd(t *testing.T) {
	ops := Collapse(Diff("a\nb\nc", "a\nB\nc"))
	rows := Format(ops, 1)

	type want struct {
		kind   RowKind
		number int
		text   string
	}
	wants := []want{
		{RowContext, 1, "a"},
		{RowRemoval, 2, "b"},
		{RowAddition, 2, "B"},
		{RowContext, 3, "c"},
	}
	if len(rows) != len(wants) {
		t.Fatalf("expected %d rows, got %d", len(wants), len(rows))
	}
	for i, w := range wants {
		r := rows[i]
		if r.Kind != w.kind || r.Number != w.number || r.Text != w.text {
			t.Fatalf("row %d = {%v %d %q}, want {%v %d %q}", i, r.Kind, r.Number, r.Text, w.kind, w.number, w.text)
		}
	}
	if w := GutterWidth(ops, 1); w != 3 {
		t.Fatalf("GutterWidth = %d, want 3", w)
	}

	plain := render.LinesToPlainStrings(Lines(rows))
	wantPlain := []string{
		"  1   a",
		"  2 - b",
		"  2 + B",
		"  3   c",
	}
	for i := range wantPlain {
		if plain[i] != wantPlain[i] {
			t.Fatalf("row %d plain = %q, want %q", i, plain[i], wantPlain[i])
		}
	}
}

func TestFormat_RowStyles(t *testing.T) {
	rows := Format(Diff("a", "b"), 1)
	if rows[0].Runs[2].Style.Color != render.ColorDiffRemoved || rows[0].Runs[2].Style.Background != render.ColorDiffRemovedBg {
		t.Fatalf("unexpected removal style: %+v", rows[0].Runs[2].Style)
	}
	if rows[1].Runs[2].Style.Color != render.ColorDiffAdded || rows[1].Runs[2].Style.Background != render.ColorDiffAddedBg {
		t.Fatalf("unexpected addition style: %+v", rows[1].Runs[2].Style)
	}
	if rows[0].Runs[0].Style.Color != render.ColorDiffGutter {
		t.Fatalf("unexpected gutter style: %+v", rows[0].Runs[0].Style)
	}
	if rows[0].Runs[1].Text != PrefixRemoval || rows[1].Runs[1].Text != PrefixAddition {
		t.Fatalf("unexpected prefixes: %q %q", rows[0].Runs[1].Text, rows[1].Runs[1].Text)
	}
}

func TestGutterWidth_LargeStart(t *testing.T) {
	var old, nw []string
	for i := 0; i < 10; i++ {
		old = append(old, "x")
		nw = append(nw, "y")
	}
	ops := Diff(strings.Join(old, "\n"), strings.Join(nw, "\n"))
	w := GutterWidth(ops, 998)
	if w < 4 {
		t.Fatalf("GutterWidth = %d, want >= 4", w)
	}
	for _, r := range Format(ops, 998) {
		gutter := r.Runs[0].Text
		if len(gutter) != w+1 {
			t.Fatalf("gutter %q not padded to width %d", gutter, w)
		}
	}
}

func TestFormat_EllipsisAdvancesCounters(t *testing.T) {
	var old []string
	for i := 1; i <= 12; i++ {
		old = append(old, "line")
	}
	oldText := strings.Join(old, "\n")
	newText := oldText + "\nadded"

	rows := Format(Collapse(Diff(oldText, newText)), 10)
	var ellipsis, added *Row
	for i := range rows {
		switch rows[i].Kind {
		case RowEllipsis:
			ellipsis = &rows[i]
		case RowAddition:
			added = &rows[i]
		}
	}
	if ellipsis == nil || added == nil {
		t.Fatalf("expected ellipsis and addition rows, got %+v", rows)
	}
	if ellipsis.Number != 0 {
		t.Fatalf("ellipsis row must not carry a number, got %d", ellipsis.Number)
	}
	if !strings.Contains(ellipsis.Runs[0].Text, Ellipsis) {
		t.Fatalf("ellipsis gutter = %q", ellipsis.Runs[0].Text)
	}
	if added.Number != 22 {
		t.Fatalf("addition number = %d, want 22", added.Number)
	}
	if !strings.Contains(render.PlainText(ellipsis.Runs), "7 unchanged lines") {
		t.Fatalf("ellipsis note = %q", render.PlainText(ellipsis.Runs))
	}
}

func TestFormat_ClampsStartLine(t *testing.T) {
	rows := Format(Diff("a", "a"), 0)
	if rows[0].Number != 1 {
		t.Fatalf("Number = %d, want 1", rows[0].Number)
	}
}

func TestUnified(t *testing.T) {
	rows := Unified("a\nb", "a\nc", 5)
	if len(rows) != 3 || rows[1].Number != 6 || rows[2].Number != 6 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
