package difflib

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/omegaatt36/codecompare/internal/domain"
)

// DefaultMaxLines bounds each side. SequenceMatcher has no timeout and
// slows down quadratically on inputs with many repeated lines.
const DefaultMaxLines = 2000

// Engine implements port.DiffPrimitive with difflib's SequenceMatcher over
// lines. Replace opcodes become a removal followed by an addition.
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

func (e *Engine) DiffLines(left, right string) ([]domain.Chunk, error) {
	a := splitLines(left)
	b := splitLines(right)
	if limit := e.limit(); len(a) > limit || len(b) > limit {
		return nil, fmt.Errorf("%w: %d and %d lines, limit %d",
			domain.ErrInputTooLarge, len(a), len(b), limit)
	}

	m := difflib.NewMatcherWithJunk(a, b, false, nil)

	var chunks []domain.Chunk
	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'e':
			chunks = append(chunks, domain.Chunk{Value: strings.Join(a[op.I1:op.I2], "")})
		case 'd':
			chunks = append(chunks, domain.Chunk{Value: strings.Join(a[op.I1:op.I2], ""), Removed: true})
		case 'i':
			chunks = append(chunks, domain.Chunk{Value: strings.Join(b[op.J1:op.J2], ""), Added: true})
		case 'r':
			chunks = append(chunks,
				domain.Chunk{Value: strings.Join(a[op.I1:op.I2], ""), Removed: true},
				domain.Chunk{Value: strings.Join(b[op.J1:op.J2], ""), Added: true},
			)
		}
	}
	return chunks, nil
}

func (e *Engine) limit() int {
	if e.MaxLines <= 0 {
		return DefaultMaxLines
	}
	return e.MaxLines
}

// splitLines keeps each line's newline. difflib.SplitLines is not used
// because it appends a newline to the last element, inventing a line.
func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
