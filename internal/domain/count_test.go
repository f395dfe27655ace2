package domain

import "testing"

func TestCountChangedLines(t *testing.T) {
	tests := []struct {
		name     string
		segments DiffResult
		want     int
	}{
		{"empty", nil, 0},
		{"middle line changed", middleChanged, 2},
		{"unchanged only", DiffResult{{Type: DiffUnchanged, Lines: []string{"foo"}}}, 0},
		{"multi-line segments", DiffResult{
			{Type: DiffRemoved, Lines: []string{"a", "b", "c"}},
			{Type: DiffAdded, Lines: []string{"d", "e"}},
			{Type: DiffUnchanged, Lines: []string{"f"}},
		}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountChangedLines(tt.segments); got != tt.want {
				t.Errorf("CountChangedLines() = %d, want %d", got, tt.want)
			}
		})
	}
}
