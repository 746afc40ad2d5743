package linediff

import "strings"

// MaxTableLines is the largest line count on either side for which Diff builds the LCS table.
const MaxTableLines = 500

// OpKind is a line operation from old text to new text.
type OpKind int

// Line operations.
const (
	OpContext OpKind = iota
	OpRemoval
	OpAddition
)

func (k OpKind) String() string {
	switch k {
	case OpContext:
		return "context"
	case OpRemoval:
		return "removal"
	case OpAddition:
		return "addition"
	default:
		return "unknown"
	}
}

// Op is a single line operation. Skipped is non-zero only for the ellipsis marker produced by Collapse, where it counts
// the elided context lines.
type Op struct {
	Kind    OpKind
	Text    string
	Skipped int
}

// IsEllipsis reports whether op is a Collapse marker.
func (op Op) IsEllipsis() bool {
	return op.Kind == OpContext && op.Skipped > 0
}

// SplitLines splits text on '\n'. The empty string is a single empty line.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// Diff returns the line operations turning oldText into newText, in document order.
func Diff(oldText, newText string) []Op {
	a := SplitLines(oldText)
	b := SplitLines(newText)
	m, n := len(a), len(b)

	if m > MaxTableLines || n > MaxTableLines {
		return replaceAll(a, b)
	}

	// dp[i*(n+1)+j] is the LCS length of a[:i] and b[:j].
	w := n + 1
	dp := make([]int, (m+1)*w)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				dp[i*w+j] = dp[(i-1)*w+j-1] + 1
			} else if up, left := dp[(i-1)*w+j], dp[i*w+j-1]; up >= left {
				dp[i*w+j] = up
			} else {
				dp[i*w+j] = left
			}
		}
	}

	ops := make([]Op, 0, m+n)
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			ops = append(ops, Op{Kind: OpContext, Text: a[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || dp[i*w+j-1] >= dp[(i-1)*w+j]):
			ops = append(ops, Op{Kind: OpAddition, Text: b[j-1]})
			j--
		default:
			ops = append(ops, Op{Kind: OpRemoval, Text: a[i-1]})
			i--
		}
	}

	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	return ops
}

func replaceAll(a, b []string) []Op {
	ops := make([]Op, 0, len(a)+len(b))
	for _, line := range a {
		ops = append(ops, Op{Kind: OpRemoval, Text: line})
	}
	for _, line := range b {
		ops = append(ops, Op{Kind: OpAddition, Text: line})
	}
	return ops
}

// Additions returns text as all-addition ops, for files that do not exist yet.
func Additions(text string) []Op {
	return replaceAll(nil, SplitLines(text))
}

// OldLines returns the old-side lines encoded by ops (Removal and non-marker Context).
func OldLines(ops []Op) []string {
	return sideLines(ops, OpRemoval)
}

// NewLines returns the new-side lines encoded by ops (Addition and non-marker Context).
func NewLines(ops []Op) []string {
	return sideLines(ops, OpAddition)
}

func sideLines(ops []Op, kind OpKind) []string {
	out := []string{}
	for _, op := range ops {
		if op.IsEllipsis() {
			continue
		}
		if op.Kind == OpContext || op.Kind == kind {
			out = append(out, op.Text)
		}
	}
	return out
}
