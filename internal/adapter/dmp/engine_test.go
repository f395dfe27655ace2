package dmp

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omegaatt36/codecompare/internal/domain"
)

func TestEngine_DiffLines(t *testing.T) {
	e := NewEngine(time.Second)

	t.Run("identical texts", func(t *testing.T) {
		chunks, err := e.DiffLines("foo\n", "foo\n")
		require.NoError(t, err)
		assert.Equal(t, []domain.Chunk{{Value: "foo\n"}}, chunks)
	})

	t.Run("middle line replaced", func(t *testing.T) {
		chunks, err := e.DiffLines("a\nb\nc\n", "a\nx\nc\n")
		require.NoError(t, err)
		assert.Equal(t, []domain.Chunk{
			{Value: "a\n"},
			{Value: "b\n", Removed: true},
			{Value: "x\n", Added: true},
			{Value: "c\n"},
		}, chunks)
	})

	t.Run("never splits a line", func(t *testing.T) {
		chunks, err := e.DiffLines("prefix-a\nsame\n", "prefix-b\nsame\n")
		require.NoError(t, err)
		for _, c := range chunks {
			assert.True(t, strings.HasSuffix(c.Value, "\n"), "chunk %q", c.Value)
		}
		assert.Equal(t, []domain.Chunk{
			{Value: "prefix-a\n", Removed: true},
			{Value: "prefix-b\n", Added: true},
			{Value: "same\n"},
		}, chunks)
	})

	t.Run("appended lines", func(t *testing.T) {
		chunks, err := e.DiffLines("a\n", "a\nb\nc\n")
		require.NoError(t, err)
		assert.Equal(t, []domain.Chunk{
			{Value: "a\n"},
			{Value: "b\nc\n", Added: true},
		}, chunks)
	})
}
