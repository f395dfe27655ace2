package domain

import "strings"

// DiffType represents the classification of a diff segment.
type DiffType int

const (
	DiffUnchanged DiffType = iota
	DiffRemoved
	DiffAdded
)

func (t DiffType) String() string {
	switch t {
	case DiffRemoved:
		return "removed"
	case DiffAdded:
		return "added"
	default:
		return "unchanged"
	}
}

// DiffSegment is a maximal run of consecutive lines sharing one classification.
// A segment always carries at least one line.
type DiffSegment struct {
	Type  DiffType
	Lines []string
}

// DiffResult is the ordered segment sequence for one comparison. An empty
// result means no diff was computed.
type DiffResult []DiffSegment

// Empty reports whether no diff was computed.
func (r DiffResult) Empty() bool {
	return len(r) == 0
}

// SideLines returns the lines that belong to one side: Unchanged and Removed
// lines for the left side, Unchanged and Added lines for the right side.
func (r DiffResult) SideLines(side Side) []string {
	skip := DiffAdded
	if side == SideRight {
		skip = DiffRemoved
	}
	var lines []string
	for _, seg := range r {
		if seg.Type != skip {
			lines = append(lines, seg.Lines...)
		}
	}
	return lines
}

// SegmentsFromChunks converts primitive output into a DiffResult. Exactly one
// trailing newline is stripped from each chunk before splitting it into lines,
// and adjacent chunks of the same type are merged.
func SegmentsFromChunks(chunks []Chunk) DiffResult {
	var result DiffResult
	for _, c := range chunks {
		typ := DiffUnchanged
		switch {
		case c.Added:
			typ = DiffAdded
		case c.Removed:
			typ = DiffRemoved
		}
		result = appendSegment(result, typ, chunkLines(c.Value))
	}
	return result
}

func chunkLines(value string) []string {
	lines := strings.Split(strings.TrimSuffix(value, "\n"), "\n")
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func appendSegment(segs DiffResult, typ DiffType, lines []string) DiffResult {
	if len(segs) > 0 && segs[len(segs)-1].Type == typ {
		segs[len(segs)-1].Lines = append(segs[len(segs)-1].Lines, lines...)
		return segs
	}
	return append(segs, DiffSegment{Type: typ, Lines: lines})
}
