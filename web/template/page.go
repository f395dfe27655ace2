package template

//go:generate templ generate

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/omegaatt36/codecompare/internal/domain"
)

// PageData is everything the page templates need to render.
type PageData struct {
	Left     string
	Right    string
	Settings domain.Settings

	LeftRows  []LineRow
	RightRows []LineRow

	LeftLineCount  int
	RightLineCount int
	DiffCount      int
	Computed       bool

	Toast *domain.Notification
}

// LineRow is one rendered line of a pane. HTML is already escaped.
type LineRow struct {
	Number    int
	HTML      string
	Highlight domain.LineHighlight
}

// Block is either a single row or a run of collapsed unchanged rows.
type Block struct {
	Row       LineRow
	Collapsed int
}

// Blocks groups rows for display. When collapse is set, every run of rows
// without a highlight becomes a single collapsed block.
func Blocks(rows []LineRow, collapse bool) []Block {
	blocks := make([]Block, 0, len(rows))
	for _, r := range rows {
		if !collapse || r.Highlight != domain.HighlightNone {
			blocks = append(blocks, Block{Row: r})
			continue
		}
		if n := len(blocks); n > 0 && blocks[n-1].Collapsed > 0 {
			blocks[n-1].Collapsed++
			continue
		}
		blocks = append(blocks, Block{Collapsed: 1})
	}
	return blocks
}

func collapsed(data PageData) bool {
	return data.Computed && !data.Settings.ShowUnchanged
}

func appAttributes(s domain.Settings) templ.Attributes {
	return templ.Attributes{
		"class": "app theme-" + s.Theme,
		"style": fmt.Sprintf("--font-size:%dpx;--split:%d%%", s.FontSize, s.SplitView),
	}
}

// formValues encodes a single hx-vals pair.
func formValues(key, value string) string {
	return fmt.Sprintf("{%q:%q}", key, value)
}

func buttonClass(active bool) string {
	if active {
		return "btn active"
	}
	return "btn"
}

func toastClass(level domain.NotificationLevel) string {
	if level == domain.NotifyError {
		return "toast error"
	}
	return "toast success"
}

func paneClass(side domain.Side, wrap bool) string {
	if wrap {
		return "pane pane-" + side.String() + " wrap"
	}
	return "pane pane-" + side.String() + " nowrap"
}

func highlightClass(h domain.LineHighlight) string {
	switch h {
	case domain.HighlightAdded:
		return "added"
	case domain.HighlightRemoved:
		return "removed"
	default:
		return "same"
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
