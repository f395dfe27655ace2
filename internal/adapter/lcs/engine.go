package lcs

import (
	"fmt"
	"strings"

	"github.com/omegaatt36/codecompare/internal/domain"
)

// DefaultMaxLines bounds each side so the O(n*m) table stays small. The
// engine is meant for small inputs; large files belong to the myers engine.
const DefaultMaxLines = 2000

// Engine implements port.DiffPrimitive with a longest-common-subsequence
// table over whole lines.
type Engine struct {
	MaxLines int
}

// NewEngine returns an Engine refusing inputs longer than maxLines per side.
// A non-positive maxLines selects DefaultMaxLines.
func NewEngine(maxLines int) *Engine {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	return &Engine{MaxLines: maxLines}
}

// DiffLines computes a line-level diff of left and right.
func (e *Engine) DiffLines(left, right string) ([]domain.Chunk, error) {
	oldLines := splitLines(left)
	newLines := splitLines(right)
	if len(oldLines) > e.MaxLines || len(newLines) > e.MaxLines {
		return nil, fmt.Errorf("%w: %d and %d lines, limit %d",
			domain.ErrInputTooLarge, len(oldLines), len(newLines), e.MaxLines)
	}

	table := computeLCS(oldLines, newLines)

	// Backtrack to build diff operations
	type op struct {
		line string
		kind domain.DiffType
	}
	var ops []op

	i, j := len(oldLines), len(newLines)
	for i > 0 || j > 0 {
		if i > 0 && j > 0 && oldLines[i-1] == newLines[j-1] {
			ops = append(ops, op{oldLines[i-1], domain.DiffUnchanged})
			i--
			j--
		} else if j > 0 && (i == 0 || table[i][j-1] >= table[i-1][j]) {
			ops = append(ops, op{newLines[j-1], domain.DiffAdded})
			j--
		} else {
			ops = append(ops, op{oldLines[i-1], domain.DiffRemoved})
			i--
		}
	}

	// Reverse ops (built in reverse order)
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}

	var chunks []domain.Chunk
	for _, o := range ops {
		chunks = appendChunk(chunks, o.line, o.kind)
	}
	return chunks, nil
}

func appendChunk(chunks []domain.Chunk, line string, kind domain.DiffType) []domain.Chunk {
	added, removed := kind == domain.DiffAdded, kind == domain.DiffRemoved
	if n := len(chunks); n > 0 && chunks[n-1].Added == added && chunks[n-1].Removed == removed {
		chunks[n-1].Value += line
		return chunks
	}
	return append(chunks, domain.Chunk{Value: line, Added: added, Removed: removed})
}

// splitLines splits text into lines that keep their terminating newline.
func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func computeLCS(a, b []string) [][]int {
	m, n := len(a), len(b)
	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else if table[i-1][j] >= table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}
	return table
}
