package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// middleChanged is the result of comparing "a\nb\nc" with "a\nx\nc".
var middleChanged = DiffResult{
	{Type: DiffUnchanged, Lines: []string{"a"}},
	{Type: DiffRemoved, Lines: []string{"b"}},
	{Type: DiffAdded, Lines: []string{"x"}},
	{Type: DiffUnchanged, Lines: []string{"c"}},
}

func TestHighlightFor(t *testing.T) {
	tests := []struct {
		name  string
		side  Side
		index int
		want  LineHighlight
	}{
		{"unchanged left", SideLeft, 0, HighlightNone},
		{"unchanged right", SideRight, 0, HighlightNone},
		{"removed on left", SideLeft, 1, HighlightRemoved},
		{"removed not on right", SideRight, 1, HighlightNone},
		{"added on right", SideRight, 2, HighlightAdded},
		{"added not on left", SideLeft, 2, HighlightNone},
		{"trailing unchanged", SideRight, 3, HighlightNone},
		{"out of range", SideLeft, 4, HighlightNone},
		{"far out of range", SideRight, 1000, HighlightNone},
		{"negative index", SideLeft, -1, HighlightNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HighlightFor(middleChanged, tt.side, tt.index))
		})
	}

	t.Run("empty result", func(t *testing.T) {
		assert.Equal(t, HighlightNone, HighlightFor(nil, SideLeft, 0))
	})
}

func TestHighlightFor_Consistency(t *testing.T) {
	segments := DiffResult{
		{Type: DiffAdded, Lines: []string{"n1", "n2"}},
		{Type: DiffUnchanged, Lines: []string{"u1", "u2", "u3"}},
		{Type: DiffRemoved, Lines: []string{"o1"}},
		{Type: DiffAdded, Lines: []string{""}},
	}

	cumulative := 0
	for _, seg := range segments {
		for i := range seg.Lines {
			idx := cumulative + i
			left := HighlightFor(segments, SideLeft, idx)
			right := HighlightFor(segments, SideRight, idx)
			switch seg.Type {
			case DiffAdded:
				assert.Equal(t, HighlightAdded, right, "line %d", idx)
				assert.Equal(t, HighlightNone, left, "line %d", idx)
			case DiffRemoved:
				assert.Equal(t, HighlightRemoved, left, "line %d", idx)
				assert.Equal(t, HighlightNone, right, "line %d", idx)
			default:
				assert.Equal(t, HighlightNone, left, "line %d", idx)
				assert.Equal(t, HighlightNone, right, "line %d", idx)
			}
		}
		cumulative += len(seg.Lines)
	}
}

func TestHighlightTable_MatchesHighlightFor(t *testing.T) {
	results := []DiffResult{
		nil,
		middleChanged,
		{{Type: DiffRemoved, Lines: []string{"a", "b", "c"}}, {Type: DiffAdded, Lines: []string{"d"}}},
	}
	for _, r := range results {
		table := NewHighlightTable(r)
		for idx := -2; idx < table.Len()+3; idx++ {
			for _, side := range []Side{SideLeft, SideRight} {
				assert.Equal(t, HighlightFor(r, side, idx), table.For(side, idx), "side %v line %d", side, idx)
			}
		}
	}
}

func TestHighlightTable_Nil(t *testing.T) {
	var table *HighlightTable
	assert.Equal(t, HighlightNone, table.For(SideRight, 0))
	assert.Equal(t, 0, table.Len())
}
