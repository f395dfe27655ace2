package port

import (
	"os"

	"github.com/omegaatt36/codecompare/internal/domain"
)

//go:generate mockgen -source=port.go -destination=../mock/mock_port.go -package=mock

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// DiffPrimitive is a line-oriented diff. The newline is a hard token
// boundary: chunks always hold whole lines.
type DiffPrimitive interface {
	DiffLines(left, right string) ([]domain.Chunk, error)
}

// Notifier receives user-facing notifications. Notify must not block.
type Notifier interface {
	Notify(n domain.Notification)
}

// Comparer turns raw input and options into a DiffResult.
type Comparer interface {
	Compare(input domain.ComparisonInput, opts domain.ComparisonOptions) domain.DiffResult
}

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// Highlighter renders source lines as syntax-highlighted HTML, one entry per line.
type Highlighter interface {
	HighlightLines(source, language string) []string
}
