package domain

import "fmt"

const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	MinFontSize = 12
	MaxFontSize = 24

	MinSplitView = 20
	MaxSplitView = 80
)

// Settings holds every user-adjustable option. Only IgnoreWhitespace and
// IgnoreCase affect the diff; the rest are presentation only.
type Settings struct {
	Theme            string
	FontSize         int
	IgnoreWhitespace bool
	IgnoreCase       bool
	WrapLines        bool
	ShowUnchanged    bool
	IsLiveEdit       bool
	SplitView        int
	Language         string
}

// DefaultSettings returns the settings a fresh session starts with.
func DefaultSettings() Settings {
	return Settings{
		Theme:         ThemeDark,
		FontSize:      14,
		ShowUnchanged: true,
		SplitView:     50,
	}
}

// ComparisonOptions projects the diff-relevant part of the settings.
func (s Settings) ComparisonOptions() ComparisonOptions {
	return ComparisonOptions{
		IgnoreWhitespace: s.IgnoreWhitespace,
		IgnoreCase:       s.IgnoreCase,
	}
}

// Sanitize clamps numeric settings into their ranges and replaces an unknown theme.
func (s Settings) Sanitize() Settings {
	if s.Theme != ThemeLight {
		s.Theme = ThemeDark
	}
	s.FontSize = clamp(s.FontSize, MinFontSize, MaxFontSize)
	s.SplitView = clamp(s.SplitView, MinSplitView, MaxSplitView)
	return s
}

// Toggle flips the boolean setting with the given form name.
func (s Settings) Toggle(name string) (Settings, error) {
	switch name {
	case "ignoreWhitespace":
		s.IgnoreWhitespace = !s.IgnoreWhitespace
	case "ignoreCase":
		s.IgnoreCase = !s.IgnoreCase
	case "wrapLines":
		s.WrapLines = !s.WrapLines
	case "showUnchanged":
		s.ShowUnchanged = !s.ShowUnchanged
	case "liveEdit":
		s.IsLiveEdit = !s.IsLiveEdit
	case "theme":
		if s.Theme == ThemeLight {
			s.Theme = ThemeDark
		} else {
			s.Theme = ThemeLight
		}
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownSetting, name)
	}
	return s, nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
