package linediff

// Context run limits for Collapse.
const (
	collapseThreshold = 5
	collapseHead      = 3
	collapseTail      = 2
)

// Ellipsis is the text of the Collapse marker op.
const Ellipsis = "…"

// Collapse replaces every run of more than 5 context lines with its first 3 lines, an ellipsis marker, and its last 2
// lines. Shorter runs and all non-context ops pass through unchanged.
func Collapse(ops []Op) []Op {
	out := make([]Op, 0, len(ops))
	var run []Op

	flush := func() {
		if len(run) <= collapseThreshold {
			out = append(out, run...)
		} else {
			out = append(out, run[:collapseHead]...)
			out = append(out, Op{Kind: OpContext, Text: Ellipsis, Skipped: len(run) - collapseHead - collapseTail})
			out = append(out, run[len(run)-collapseTail:]...)
		}
		run = run[:0]
	}

	for _, op := range ops {
		if op.Kind == OpContext && !op.IsEllipsis() {
			run = append(run, op)
			continue
		}
		flush()
		out = append(out, op)
	}
	flush()
	return out
}
