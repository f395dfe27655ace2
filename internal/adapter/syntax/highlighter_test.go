package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlighter_HighlightLines(t *testing.T) {
	h := NewHighlighter("")

	t.Run("one fragment per line", func(t *testing.T) {
		src := "package main\n\nfunc main() {}\n"
		out := h.HighlightLines(src, "go")
		require.Len(t, out, 4)
		assert.Contains(t, out[0], "package")
		assert.Contains(t, out[0], "<span")
		assert.Equal(t, "", out[1])
		assert.Equal(t, "", out[3])
	})

	t.Run("escapes html", func(t *testing.T) {
		out := h.HighlightLines("<script>alert(1)</script>", "text")
		require.Len(t, out, 1)
		assert.NotContains(t, out[0], "<script>")
		assert.Contains(t, out[0], "&lt;script&gt;")
	})

	t.Run("unknown language falls back", func(t *testing.T) {
		out := h.HighlightLines("a\nb", "no-such-language")
		require.Len(t, out, 2)
		assert.True(t, strings.Contains(out[0], "a"))
		assert.True(t, strings.Contains(out[1], "b"))
	})
}

func TestNewHighlighter_UnknownStyle(t *testing.T) {
	h := NewHighlighter("no-such-style")
	assert.NotNil(t, h.style)
}
