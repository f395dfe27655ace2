package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omegaatt36/codecompare/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, EngineMyers, cfg.Engine)
	assert.Equal(t, time.Second, cfg.DiffTimeout)
	assert.Equal(t, 2000, cfg.LCSMaxLines)
	assert.Equal(t, 2000, cfg.DifflibMaxLines)
	assert.Equal(t, "github-dark", cfg.SyntaxStyle)
	assert.Equal(t, domain.DefaultSettings(), cfg.Settings.Domain())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codecompare.yaml")
	content := `
engine: lcs
lcs_max_lines: 100
difflib_max_lines: 300
log_level: debug
settings:
  theme: light
  font_size: 40
  ignore_case: true
  split_view: 60
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, EngineLCS, cfg.Engine)
	assert.Equal(t, 100, cfg.LCSMaxLines)
	assert.Equal(t, 300, cfg.DifflibMaxLines)

	s := cfg.Settings.Domain()
	assert.Equal(t, domain.ThemeLight, s.Theme)
	assert.Equal(t, domain.MaxFontSize, s.FontSize, "font size clamped")
	assert.True(t, s.IgnoreCase)
	assert.True(t, s.ShowUnchanged, "default kept")
	assert.Equal(t, 60, s.SplitView)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CODECOMPARE_ENGINE", "difflib")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, EngineDifflib, cfg.Engine)
}

func TestLoad_UnknownEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codecompare.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: patience\n"), 0o644))

	_, err := Load(path)
	assert.True(t, errors.Is(err, domain.ErrUnknownEngine))
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_SlogLevel(t *testing.T) {
	for level, want := range map[string]string{"debug": "DEBUG", "WARN": "WARN", "error": "ERROR", "": "INFO"} {
		cfg := &Config{LogLevel: level}
		assert.Equal(t, want, cfg.SlogLevel().String())
	}
}
