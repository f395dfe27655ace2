package app

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/omegaatt36/codecompare/internal/adapter/notify"
	"github.com/omegaatt36/codecompare/internal/domain"
	"github.com/omegaatt36/codecompare/internal/port"
	"github.com/omegaatt36/codecompare/internal/service"
)

// Notifications is a notifier whose latest message can be taken for display.
type Notifications interface {
	port.Notifier
	Take() (domain.Notification, bool)
}

// Option configures the App.
type Option func(*App)

// WithLogger sets a custom logger for the App.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithSettings sets the settings the session starts with.
func WithSettings(settings domain.Settings) Option {
	return func(a *App) {
		a.settings = settings
	}
}

// WithNotifications sets the notification channel shared with the comparer.
func WithNotifications(n Notifications) Option {
	return func(a *App) {
		a.notifications = n
	}
}

// App is the main application struct that composes all services.
type App struct {
	mu            sync.Mutex
	fs            port.FileSystem
	highlighter   port.Highlighter
	clipboard     port.Clipboard
	notifications Notifications
	settings      domain.Settings
	state         *AppState
	ctx           context.Context
	logger        *slog.Logger
}

// NewApp creates a new App with injected service dependencies.
func NewApp(comparer port.Comparer, highlighter port.Highlighter, clipboard port.Clipboard, fs port.FileSystem, opts ...Option) *App {
	a := &App{
		fs:          fs,
		highlighter: highlighter,
		clipboard:   clipboard,
		settings:    domain.DefaultSettings(),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.notifications == nil {
		a.notifications = notify.NewCenter(a.logger)
	}
	a.state = NewAppState(service.NewSession(comparer, a.settings, service.WithSessionLogger(a.logger)))
	return a
}

// GetHandler returns the HTTP handler for the asset server.
func (a *App) GetHandler() http.Handler {
	return a.newRouter()
}

// Startup is called when the Wails app starts. It stores the runtime context.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
}

// Shutdown is called when the Wails app is closing.
func (a *App) Shutdown(_ context.Context) {
}

// OpenFileDialog opens a native OS file picker and returns the selected path.
func (a *App) OpenFileDialog() (string, error) {
	if a.ctx == nil {
		return "", domain.ErrInvalidPath
	}
	return wailsRuntime.OpenFileDialog(a.ctx, wailsRuntime.OpenDialogOptions{
		Title: "Select File",
	})
}
