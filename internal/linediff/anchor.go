package linediff

import "strings"

// AnchorStatus reports how FindStartLine resolved its line.
type AnchorStatus int

const (
	// AnchorFound means the fragment was found and the line is exact for the content given.
	AnchorFound AnchorStatus = iota
	// AnchorNotFound means the fragment does not occur in the content; the line defaults to 1.
	AnchorNotFound
	// AnchorEmpty means the fragment was empty; the line defaults to 1.
	AnchorEmpty
)

func (s AnchorStatus) String() string {
	switch s {
	case AnchorFound:
		return "found"
	case AnchorNotFound:
		return "not_found"
	case AnchorEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// FindStartLine returns the 1-based line where the first exact occurrence of fragment starts in content.
//
// The match is contiguous and may span several lines. A fragment that starts mid-line anchors to that line. If the
// content changed since the fragment was captured the result can be stale; callers should treat anything other than
// AnchorFound as approximate.
func FindStartLine(content, fragment string) (int, AnchorStatus) {
	if fragment == "" {
		return 1, AnchorEmpty
	}
	idx := strings.Index(content, fragment)
	if idx < 0 {
		return 1, AnchorNotFound
	}
	return strings.Count(content[:idx], "\n") + 1, AnchorFound
}
