package syntax

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle matches the dark theme of the page.
const DefaultStyle = "github-dark"

// Highlighter implements port.Highlighter with chroma. Each line is rendered
// as a run of inline-styled spans so it can sit inside any container.
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter returns a Highlighter using the named chroma style, or the
// chroma fallback style when the name is unknown.
func NewHighlighter(styleName string) *Highlighter {
	if styleName == "" {
		styleName = DefaultStyle
	}
	return &Highlighter{style: styles.Get(styleName)}
}

// HighlightLines returns one HTML fragment per "\n"-separated line of source.
// Lines the lexer cannot account for are returned escaped but unstyled.
func (h *Highlighter) HighlightLines(source, language string) []string {
	lines := strings.Split(source, "\n")
	out := make([]string, len(lines))

	it, err := h.lexer(source, language).Tokenise(nil, source)
	if err != nil {
		for i, line := range lines {
			out[i] = templ.EscapeString(line)
		}
		return out
	}

	tokenLines := chroma.SplitTokensIntoLines(it.Tokens())
	for i, line := range lines {
		if i < len(tokenLines) && lineText(tokenLines[i]) == line {
			out[i] = h.render(tokenLines[i])
		} else {
			out[i] = templ.EscapeString(line)
		}
	}
	return out
}

func (h *Highlighter) lexer(source, language string) chroma.Lexer {
	var l chroma.Lexer
	if language != "" {
		l = lexers.Get(language)
	}
	if l == nil {
		l = lexers.Analyse(source)
	}
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

func (h *Highlighter) render(tokens []chroma.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		text := strings.TrimSuffix(tok.Value, "\n")
		if text == "" {
			continue
		}
		css := h.css(tok.Type)
		if css == "" {
			b.WriteString(templ.EscapeString(text))
			continue
		}
		b.WriteString(`<span style="`)
		b.WriteString(css)
		b.WriteString(`">`)
		b.WriteString(templ.EscapeString(text))
		b.WriteString("</span>")
	}
	return b.String()
}

func (h *Highlighter) css(tt chroma.TokenType) string {
	entry := h.style.Get(tt)
	var parts []string
	if entry.Colour.IsSet() {
		parts = append(parts, "color:"+entry.Colour.String())
	}
	if entry.Bold == chroma.Yes {
		parts = append(parts, "font-weight:bold")
	}
	if entry.Italic == chroma.Yes {
		parts = append(parts, "font-style:italic")
	}
	return strings.Join(parts, ";")
}

func lineText(tokens []chroma.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Value)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
