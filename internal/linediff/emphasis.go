package linediff

import (
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"

	"permit/internal/render"
)

// emphasisTimeout bounds the character diff of one line pair; on expiry go-diff returns a coarser but valid diff.
const emphasisTimeout = 50 * time.Millisecond

var (
	removalEmphasis  = removalStyle.Bold().WithBackground(render.ColorDiffRemovedEmphasis)
	additionEmphasis = additionStyle.Bold().WithBackground(render.ColorDiffAddedEmphasis)
)

// Emphasize highlights the changed segments of replaced lines. A block of N removals immediately followed by N
// additions is paired line by line; each pair is diffed by character and the differing segments get a bold, stronger
// background. Pairs with nothing in common are left as is. Row kinds, numbers and texts never change.
func Emphasize(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	dmp := newMatcher()

	for i := 0; i < len(out); {
		if out[i].Kind != RowRemoval {
			i++
			continue
		}
		remStart := i
		for i < len(out) && out[i].Kind == RowRemoval {
			i++
		}
		addStart := i
		for i < len(out) && out[i].Kind == RowAddition {
			i++
		}
		n := addStart - remStart
		if i-addStart != n {
			continue
		}
		for k := 0; k < n; k++ {
			rem, add := &out[remStart+k], &out[addStart+k]
			diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(rem.Text, add.Text, false))
			if !hasEqual(diffs) {
				continue
			}
			rem.Runs = emphasizedRuns(*rem, diffs, diffmatchpatch.DiffDelete, removalStyle, removalEmphasis)
			add.Runs = emphasizedRuns(*add, diffs, diffmatchpatch.DiffInsert, additionStyle, additionEmphasis)
		}
	}
	return out
}

func newMatcher() *diffmatchpatch.DiffMatchPatch {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = emphasisTimeout
	return dmp
}

func hasEqual(diffs []diffmatchpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual && d.Text != "" {
			return true
		}
	}
	return false
}

// emphasizedRuns keeps the gutter and prefix runs of row and rebuilds the text runs from diffs on one side.
func emphasizedRuns(row Row, diffs []diffmatchpatch.Diff, side diffmatchpatch.Operation, base, emphasis render.Style) []render.StyledRun {
	runs := make([]render.StyledRun, 0, len(diffs)+2)
	if len(row.Runs) >= 2 {
		runs = append(runs, row.Runs[0], row.Runs[1])
	}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			runs = append(runs, render.Run(d.Text, base))
		case side:
			runs = append(runs, render.Run(d.Text, emphasis))
		}
	}
	return render.Compact(runs)
}
