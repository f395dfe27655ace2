package app

import (
	"path/filepath"

	"github.com/omegaatt36/codecompare/internal/domain"
	"github.com/omegaatt36/codecompare/internal/service"
)

// AppState holds the entire application state. All state is server-side.
type AppState struct {
	Session *service.Session
	// Paths of files loaded into each side, used as a language hint.
	LeftPath  string
	RightPath string
}

func NewAppState(session *service.Session) *AppState {
	return &AppState{Session: session}
}

// SetPath records the file a side was loaded from. An empty path clears it.
func (s *AppState) SetPath(side domain.Side, path string) {
	if side == domain.SideRight {
		s.RightPath = path
	} else {
		s.LeftPath = path
	}
}

// LanguageHint returns the configured language, or the base name of the file
// loaded into side so the highlighter can match it by extension.
func (s *AppState) LanguageHint(side domain.Side) string {
	if lang := s.Session.Settings().Language; lang != "" {
		return lang
	}
	path := s.LeftPath
	if side == domain.SideRight {
		path = s.RightPath
	}
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

// ResetInputs clears both sides and forgets loaded paths.
func (s *AppState) ResetInputs() {
	s.Session.Clear()
	s.LeftPath = ""
	s.RightPath = ""
}
