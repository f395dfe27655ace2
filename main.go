package main

import (
	"context"
	"embed"
	"flag"
	"log/slog"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/omegaatt36/codecompare/app"
	"github.com/omegaatt36/codecompare/internal/adapter/clipboard"
	"github.com/omegaatt36/codecompare/internal/adapter/difflib"
	"github.com/omegaatt36/codecompare/internal/adapter/dmp"
	"github.com/omegaatt36/codecompare/internal/adapter/fs"
	"github.com/omegaatt36/codecompare/internal/adapter/lcs"
	"github.com/omegaatt36/codecompare/internal/adapter/notify"
	"github.com/omegaatt36/codecompare/internal/adapter/syntax"
	"github.com/omegaatt36/codecompare/internal/config"
	"github.com/omegaatt36/codecompare/internal/port"
	"github.com/omegaatt36/codecompare/internal/service"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfgFile := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	notifications := notify.NewCenter(logger)
	comparer := service.NewComparisonService(newPrimitive(cfg), notifications, service.WithComparisonLogger(logger))

	runtimeClipboard := &clipboard.Runtime{}
	clip := service.NewClipboardService(logger, runtimeClipboard, &clipboard.System{})

	application := app.NewApp(
		comparer,
		syntax.NewHighlighter(cfg.SyntaxStyle),
		clip,
		&fs.OSFileSystem{},
		app.WithLogger(logger),
		app.WithSettings(cfg.Settings.Domain()),
		app.WithNotifications(notifications),
	)

	logger.Info("starting", "engine", cfg.Engine, "syntax_style", cfg.SyntaxStyle)

	err = wails.Run(&options.App{
		Title:  "Code Compare",
		Width:  1280,
		Height: 900,
		AssetServer: &assetserver.Options{
			Assets:  assets,
			Handler: application.GetHandler(),
		},
		OnStartup: func(ctx context.Context) {
			runtimeClipboard.Bind(ctx)
			application.Startup(ctx)
		},
		OnShutdown: application.Shutdown,
	})
	if err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func newPrimitive(cfg *config.Config) port.DiffPrimitive {
	switch cfg.Engine {
	case config.EngineDifflib:
		return difflib.NewEngine(cfg.DifflibMaxLines)
	case config.EngineLCS:
		return lcs.NewEngine(cfg.LCSMaxLines)
	default:
		return dmp.NewEngine(cfg.DiffTimeout)
	}
}
