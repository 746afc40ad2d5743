package linediff

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

func opsString(ops []Op) []string {
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		out = append(out, fmt.Sprintf("%s:%s", op.Kind, op.Text))
	}
	return out
}

func TestDiff_Identity(t *testing.T) {
	text := "alpha\nbeta\ngamma"
	ops := Diff(text, text)
	if len(ops) != 3 {
		t.Fatalf("expected 3 ops, got %v", opsString(ops))
	}
	for i, op := range ops {
		if op.Kind != OpContext {
			t.Fatalf("op %d: kind %s, want context", i, op.Kind)
		}
	}
}

func TestDiff_SingleDifferingLine(t *testing.T) {
	got := opsString(Diff("a", "b"))
	want := []string{"removal:a", "addition:b"}
	if !slices.Equal(got, want) {
		t.Fatalf("Diff(a,b)=%v want %v", got, want)
	}
}

func TestDiff_Cases(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
		want []string
	}{
		{
			name: "middle line changed",
			old:  "a\nb\nc",
			new:  "a\nB\nc",
			want: []string{"context:a", "removal:b", "addition:B", "context:c"},
		},
		{
			name: "pure insertion",
			old:  "a\nc",
			new:  "a\nb\nc",
			want: []string{"context:a", "addition:b", "context:c"},
		},
		{
			name: "pure deletion",
			old:  "a\nb\nc",
			new:  "a\nc",
			want: []string{"context:a", "removal:b", "context:c"},
		},
		{
			name: "swap prefers addition on ties",
			old:  "x\ny",
			new:  "y\nx",
			want: []string{"removal:x", "context:y", "addition:x"},
		},
		{
			name: "empty old",
			old:  "",
			new:  "x",
			want: []string{"removal:", "addition:x"},
		},
		{
			name: "both empty",
			old:  "",
			new:  "",
			want: []string{"context:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := opsString(Diff(tt.old, tt.new))
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Diff(%q,%q)=%v want %v", tt.old, tt.new, got, tt.want)
			}
		})
	}
}

func TestDiff_RoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"a\nb\nc\nd", "b\nc\ne\nd\nf"},
		{"func main() {\n\tfmt.Println(1)\n}\n", "func main() {\n\tlog.Println(1)\n\tos.Exit(0)\n}\n"},
		{"same\nsame\nsame", "same\nother\nsame\nsame"},
		{"", "one\ntwo"},
		{"one\ntwo", ""},
	}
	for _, p := range pairs {
		ops := Diff(p[0], p[1])
		if got := OldLines(ops); !slices.Equal(got, SplitLines(p[0])) {
			t.Fatalf("old side mismatch for %q: got %q", p[0], got)
		}
		if got := NewLines(ops); !slices.Equal(got, SplitLines(p[1])) {
			t.Fatalf("new side mismatch for %q: got %q", p[1], got)
		}
	}
}

func TestDiff_SizeGuard(t *testing.T) {
	var a, b []string
	for i := 0; i < 600; i++ {
		a = append(a, fmt.Sprintf("old %d", i))
		b = append(b, fmt.Sprintf("new %d", i))
	}
	ops := Diff(strings.Join(a, "\n"), strings.Join(b, "\n"))
	if len(ops) != 1200 {
		t.Fatalf("expected 1200 ops, got %d", len(ops))
	}
	for i, op := range ops {
		want := OpRemoval
		if i >= 600 {
			want = OpAddition
		}
		if op.Kind != want {
			t.Fatalf("op %d: kind %s want %s", i, op.Kind, want)
		}
	}
}

func TestDiff_SizeGuardSkipsSharedLines(t *testing.T) {
	lines := make([]string, MaxTableLines+1)
	for i := range lines {
		lines[i] = "same"
	}
	text := strings.Join(lines, "\n")
	ops := Diff(text, text)
	if len(ops) != 2*len(lines) {
		t.Fatalf("expected full replacement over the threshold, got %d ops", len(ops))
	}
}

func TestAdditions(t *testing.T) {
	got := opsString(Additions("a\nb"))
	want := []string{"addition:a", "addition:b"}
	if !slices.Equal(got, want) {
		t.Fatalf("Additions=%v want %v", got, want)
	}
}
