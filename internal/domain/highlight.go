package domain

// LineHighlight is the background classification of a rendered line.
type LineHighlight int

const (
	HighlightNone LineHighlight = iota
	HighlightAdded
	HighlightRemoved
)

func (h LineHighlight) String() string {
	switch h {
	case HighlightAdded:
		return "added"
	case HighlightRemoved:
		return "removed"
	default:
		return "none"
	}
}

// HighlightFor resolves the highlight of line lineIndex on the given side by
// walking the cumulative line offsets of segments. Added segments highlight
// only on the right, Removed segments only on the left. Indexes outside the
// segments get HighlightNone.
func HighlightFor(segments DiffResult, side Side, lineIndex int) LineHighlight {
	if lineIndex < 0 {
		return HighlightNone
	}
	cumulative := 0
	for _, seg := range segments {
		n := len(seg.Lines)
		if lineIndex >= cumulative && lineIndex < cumulative+n {
			return highlightOf(seg.Type, side)
		}
		cumulative += n
	}
	return HighlightNone
}

func highlightOf(typ DiffType, side Side) LineHighlight {
	switch {
	case typ == DiffAdded && side == SideRight:
		return HighlightAdded
	case typ == DiffRemoved && side == SideLeft:
		return HighlightRemoved
	default:
		return HighlightNone
	}
}

// HighlightTable is a flat per-line lookup built once per DiffResult.
// For returns exactly what HighlightFor would for the same segments.
type HighlightTable struct {
	types []DiffType
}

// NewHighlightTable expands segments into one entry per line.
func NewHighlightTable(segments DiffResult) *HighlightTable {
	total := 0
	for _, seg := range segments {
		total += len(seg.Lines)
	}
	types := make([]DiffType, 0, total)
	for _, seg := range segments {
		for range seg.Lines {
			types = append(types, seg.Type)
		}
	}
	return &HighlightTable{types: types}
}

// For returns the highlight of line lineIndex on side.
func (t *HighlightTable) For(side Side, lineIndex int) LineHighlight {
	if t == nil || lineIndex < 0 || lineIndex >= len(t.types) {
		return HighlightNone
	}
	return highlightOf(t.types[lineIndex], side)
}

// Len returns the total number of lines covered by the table.
func (t *HighlightTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.types)
}
