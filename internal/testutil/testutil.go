package testutil

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"
)

// MockFileInfo implements os.FileInfo for testing.
type MockFileInfo struct {
	FileName string
	FileSize int64
	Dir      bool
}

func (m *MockFileInfo) Name() string       { return m.FileName }
func (m *MockFileInfo) Size() int64        { return m.FileSize }
func (m *MockFileInfo) Mode() fs.FileMode  { return 0o644 }
func (m *MockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *MockFileInfo) IsDir() bool        { return m.Dir }
func (m *MockFileInfo) Sys() any           { return nil }

// NewMockFile creates a MockFileInfo for a file with the given name and size.
func NewMockFile(name string, size int64) os.FileInfo {
	return &MockFileInfo{FileName: name, FileSize: size}
}

// NewMockDir creates a MockFileInfo for a directory.
func NewMockDir(name string) os.FileInfo {
	return &MockFileInfo{FileName: name, Dir: true}
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
