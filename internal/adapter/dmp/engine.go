package dmp

import (
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/omegaatt36/codecompare/internal/domain"
)

// Engine implements port.DiffPrimitive with diff-match-patch in line mode:
// every line is mapped to a single rune, diffed, and mapped back.
type Engine struct {
	Timeout time.Duration
}

// NewEngine returns an Engine. A zero timeout lets the diff run to completion.
func NewEngine(timeout time.Duration) *Engine {
	return &Engine{Timeout: timeout}
}

func (e *Engine) DiffLines(left, right string) ([]domain.Chunk, error) {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = e.Timeout

	a, b, lineArray := dmp.DiffLinesToRunes(left, right)
	diffs := dmp.DiffMainRunes(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	chunks := make([]domain.Chunk, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		chunks = append(chunks, domain.Chunk{
			Value:   d.Text,
			Added:   d.Type == diffmatchpatch.DiffInsert,
			Removed: d.Type == diffmatchpatch.DiffDelete,
		})
	}
	return chunks, nil
}
