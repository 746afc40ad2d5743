// Package linediff computes and renders line-level diffs for edit previews.
//
// The pipeline is:
//
//	ops := linediff.Diff(oldText, newText)   // LCS edit script, document order
//	ops = linediff.Collapse(ops)             // elide long unchanged runs
//	rows := linediff.Format(ops, startLine)  // numbered, styled rows
//
// Invariants of Diff output:
//   - concat(Removal+Context texts) == SplitLines(old)
//   - concat(Addition+Context texts) == SplitLines(new)
//
// When either side has more than MaxTableLines lines, Diff skips the LCS table and returns a full
// replacement (all removals, then all additions).
//
// On equal-length alternatives the backtrack prefers an Addition over a Removal. Walking backwards, that places
// additions after removals in document order, so a changed line renders as "-old" then "+new".
//
// Everything here is pure and safe for concurrent use.
package linediff
