package notify

import (
	"log/slog"
	"sync"

	"github.com/omegaatt36/codecompare/internal/domain"
)

// Center implements port.Notifier. Every notification is logged and the
// latest one is held until the UI takes it for display.
type Center struct {
	mu      sync.Mutex
	pending *domain.Notification
	logger  *slog.Logger
}

func NewCenter(logger *slog.Logger) *Center {
	if logger == nil {
		logger = slog.Default()
	}
	return &Center{logger: logger}
}

func (c *Center) Notify(n domain.Notification) {
	if n.Level == domain.NotifyError {
		c.logger.Warn("notification", "message", n.Message)
	} else {
		c.logger.Debug("notification", "message", n.Message)
	}

	c.mu.Lock()
	c.pending = &n
	c.mu.Unlock()
}

// Take returns the pending notification and clears it.
func (c *Center) Take() (domain.Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return domain.Notification{}, false
	}
	n := *c.pending
	c.pending = nil
	return n, true
}
