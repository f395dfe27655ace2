package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/omegaatt36/codecompare/internal/domain"
)

// Diff engines. Only myers handles inputs of tens of thousands of lines;
// difflib and lcs are small-input engines and refuse anything longer than
// difflib_max_lines or lcs_max_lines per side.
const (
	EngineMyers   = "myers"
	EngineDifflib = "difflib"
	EngineLCS     = "lcs"
)

// Config is the startup configuration of the application.
type Config struct {
	Engine          string        `mapstructure:"engine"`
	DiffTimeout     time.Duration `mapstructure:"diff_timeout"`
	LCSMaxLines     int           `mapstructure:"lcs_max_lines"`
	DifflibMaxLines int           `mapstructure:"difflib_max_lines"`
	SyntaxStyle     string        `mapstructure:"syntax_style"`
	LogLevel        string        `mapstructure:"log_level"`
	Settings        Settings      `mapstructure:"settings"`
}

// Settings are the initial values of the user-adjustable settings.
type Settings struct {
	Theme            string `mapstructure:"theme"`
	FontSize         int    `mapstructure:"font_size"`
	IgnoreWhitespace bool   `mapstructure:"ignore_whitespace"`
	IgnoreCase       bool   `mapstructure:"ignore_case"`
	WrapLines        bool   `mapstructure:"wrap_lines"`
	ShowUnchanged    bool   `mapstructure:"show_unchanged"`
	LiveEdit         bool   `mapstructure:"live_edit"`
	SplitView        int    `mapstructure:"split_view"`
	Language         string `mapstructure:"language"`
}

// Domain converts the configured settings into domain settings.
func (s Settings) Domain() domain.Settings {
	return domain.Settings{
		Theme:            s.Theme,
		FontSize:         s.FontSize,
		IgnoreWhitespace: s.IgnoreWhitespace,
		IgnoreCase:       s.IgnoreCase,
		WrapLines:        s.WrapLines,
		ShowUnchanged:    s.ShowUnchanged,
		IsLiveEdit:       s.LiveEdit,
		SplitView:        s.SplitView,
		Language:         s.Language,
	}.Sanitize()
}

// Load reads configuration from cfgFile, or from codecompare.yaml in the
// working directory or the user config directory when cfgFile is empty.
// Environment variables prefixed with CODECOMPARE_ override both.
// A missing config file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "codecompare"))
		}
		v.SetConfigName("codecompare")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	v.SetEnvPrefix("CODECOMPARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be corrected silently.
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineMyers, EngineDifflib, EngineLCS:
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownEngine, c.Engine)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setDefaults(v *viper.Viper) {
	d := domain.DefaultSettings()

	v.SetDefault("engine", EngineMyers)
	v.SetDefault("diff_timeout", time.Second)
	v.SetDefault("lcs_max_lines", 2000)
	v.SetDefault("difflib_max_lines", 2000)
	v.SetDefault("syntax_style", "github-dark")
	v.SetDefault("log_level", "info")

	v.SetDefault("settings.theme", d.Theme)
	v.SetDefault("settings.font_size", d.FontSize)
	v.SetDefault("settings.ignore_whitespace", d.IgnoreWhitespace)
	v.SetDefault("settings.ignore_case", d.IgnoreCase)
	v.SetDefault("settings.wrap_lines", d.WrapLines)
	v.SetDefault("settings.show_unchanged", d.ShowUnchanged)
	v.SetDefault("settings.live_edit", d.IsLiveEdit)
	v.SetDefault("settings.split_view", d.SplitView)
	v.SetDefault("settings.language", d.Language)
}
