package service

import (
	"log/slog"

	"github.com/omegaatt36/codecompare/internal/domain"
	"github.com/omegaatt36/codecompare/internal/port"
)

// Session holds the live comparison: both inputs, the settings and the
// DiffResult derived from them. The result is replaced wholesale whenever the
// input or a diff-relevant setting changes and is left alone otherwise.
//
// A Session is not safe for concurrent use.
type Session struct {
	comparer port.Comparer
	logger   *slog.Logger

	input    domain.ComparisonInput
	settings domain.Settings
	result   domain.DiffResult
	table    *domain.HighlightTable
	revision int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionLogger sets the logger for recompute events.
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

func NewSession(comparer port.Comparer, settings domain.Settings, opts ...SessionOption) *Session {
	s := &Session{
		comparer: comparer,
		logger:   slog.Default(),
		settings: settings.Sanitize(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Input() domain.ComparisonInput { return s.input }
func (s *Session) Settings() domain.Settings      { return s.settings }
func (s *Session) Result() domain.DiffResult      { return s.result }

// Revision counts how many times the diff has been computed.
func (s *Session) Revision() int { return s.revision }

// DiffCount is the number of changed lines in the current result.
func (s *Session) DiffCount() int {
	return domain.CountChangedLines(s.result)
}

// Highlight resolves the highlight of one rendered line.
func (s *Session) Highlight(side domain.Side, lineIndex int) domain.LineHighlight {
	return s.table.For(side, lineIndex)
}

// SetInput replaces both sides. It reports whether the diff was recomputed.
func (s *Session) SetInput(input domain.ComparisonInput) bool {
	if input == s.input {
		return false
	}
	s.input = input
	s.recompute()
	return true
}

// SetText replaces one side.
func (s *Session) SetText(side domain.Side, text string) bool {
	return s.SetInput(s.input.WithText(side, text))
}

// Clear empties both sides.
func (s *Session) Clear() bool {
	return s.SetInput(domain.ComparisonInput{})
}

// UpdateSettings applies new settings and recomputes only when the
// comparison options changed.
func (s *Session) UpdateSettings(next domain.Settings) bool {
	next = next.Sanitize()
	prev := s.settings
	s.settings = next
	if prev.ComparisonOptions() == next.ComparisonOptions() {
		return false
	}
	s.recompute()
	return true
}

// Toggle flips one boolean setting by name.
func (s *Session) Toggle(name string) (bool, error) {
	next, err := s.settings.Toggle(name)
	if err != nil {
		return false, err
	}
	return s.UpdateSettings(next), nil
}

func (s *Session) recompute() {
	s.result = s.comparer.Compare(s.input, s.settings.ComparisonOptions())
	s.table = domain.NewHighlightTable(s.result)
	s.revision++
	s.logger.Debug("diff recomputed",
		"revision", s.revision,
		"segments", len(s.result),
		"diff_count", domain.CountChangedLines(s.result),
	)
}
