package clipboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/omegaatt36/codecompare/internal/domain"
)

// System implements port.Clipboard with the operating system clipboard
// (pbcopy, xclip/xsel, wl-clipboard or the Windows API).
type System struct{}

func (s *System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", domain.ErrClipboardUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrClipboardUnavailable, err)
	}
	return text, nil
}

func (s *System) WriteText(text string) error {
	if clipboard.Unsupported {
		return domain.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrClipboardUnavailable, err)
	}
	return nil
}

// Runtime implements port.Clipboard through the Wails runtime. It is usable
// only after Bind has been called with the context passed to OnStartup.
type Runtime struct {
	mu  sync.RWMutex
	ctx context.Context
}

// Bind stores the Wails runtime context.
func (r *Runtime) Bind(ctx context.Context) {
	r.mu.Lock()
	r.ctx = ctx
	r.mu.Unlock()
}

func (r *Runtime) context() (context.Context, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.ctx == nil {
		return nil, fmt.Errorf("%w: runtime not started", domain.ErrClipboardUnavailable)
	}
	return r.ctx, nil
}

func (r *Runtime) ReadText() (string, error) {
	ctx, err := r.context()
	if err != nil {
		return "", err
	}
	text, err := wailsRuntime.ClipboardGetText(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrClipboardUnavailable, err)
	}
	return text, nil
}

func (r *Runtime) WriteText(text string) error {
	ctx, err := r.context()
	if err != nil {
		return err
	}
	if err := wailsRuntime.ClipboardSetText(ctx, text); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrClipboardUnavailable, err)
	}
	return nil
}
