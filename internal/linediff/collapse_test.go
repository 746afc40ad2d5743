package linediff

import (
	"strings"
	"testing"
)

func contextOps(n int) []Op {
	ops := make([]Op, n)
	for i := range ops {
		ops[i] = Op{Kind: OpContext, Text: "same"}
	}
	return ops
}

func TestCollapse_LongRun(t *testing.T) {
	got := Collapse(contextOps(10))
	if len(got) != 6 {
		t.Fatalf("expected 6 ops, got %d: %v", len(got), opsString(got))
	}
	if !got[3].IsEllipsis() || got[3].Text != Ellipsis || got[3].Skipped != 5 {
		t.Fatalf("expected ellipsis marker at index 3, got %+v", got[3])
	}
	for _, i := range []int{0, 1, 2, 4, 5} {
		if got[i].IsEllipsis() || got[i].Kind != OpContext {
			t.Fatalf("op %d should be plain context, got %+v", i, got[i])
		}
	}
}

func TestCollapse_ShortRunUntouched(t *testing.T) {
	got := Collapse(contextOps(5))
	if len(got) != 5 {
		t.Fatalf("expected run of 5 to pass through, got %d ops", len(got))
	}
	for _, op := range got {
		if op.IsEllipsis() {
			t.Fatalf("unexpected ellipsis in %v", opsString(got))
		}
	}
}

func TestCollapse_KeepsBoundaryLines(t *testing.T) {
	old := []string{"head"}
	for i := 0; i < 8; i++ {
		old = append(old, string(rune('a'+i)))
	}
	old = append(old, "tail")
	newText := strings.Replace(strings.Join(old, "\n"), "head", "HEAD", 1)
	newText = strings.Replace(newText, "tail", "TAIL", 1)

	got := opsString(Collapse(Diff(strings.Join(old, "\n"), newText)))
	want := []string{
		"removal:head", "addition:HEAD",
		"context:a", "context:b", "context:c",
		"context:" + Ellipsis,
		"context:g", "context:h",
		"removal:tail", "addition:TAIL",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("Collapse=%v want %v", got, want)
	}
}

func TestCollapse_Empty(t *testing.T) {
	if got := Collapse(nil); len(got) != 0 {
		t.Fatalf("expected no ops, got %v", got)
	}
}
