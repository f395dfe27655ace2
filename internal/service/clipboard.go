package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/omegaatt36/codecompare/internal/domain"
	"github.com/omegaatt36/codecompare/internal/port"
)

// ClipboardService tries each clipboard in order until one succeeds.
type ClipboardService struct {
	clipboards []port.Clipboard
	logger     *slog.Logger
}

func NewClipboardService(logger *slog.Logger, primary port.Clipboard, fallbacks ...port.Clipboard) *ClipboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClipboardService{
		clipboards: append([]port.Clipboard{primary}, fallbacks...),
		logger:     logger,
	}
}

func (s *ClipboardService) ReadText() (string, error) {
	var errs []error
	for i, c := range s.clipboards {
		text, err := c.ReadText()
		if err == nil {
			return text, nil
		}
		s.logger.Debug("clipboard read failed", "provider", i, "error", err)
		errs = append(errs, err)
	}
	return "", fmt.Errorf("%w: %w", domain.ErrClipboardUnavailable, errors.Join(errs...))
}

func (s *ClipboardService) WriteText(text string) error {
	var errs []error
	for i, c := range s.clipboards {
		err := c.WriteText(text)
		if err == nil {
			return nil
		}
		s.logger.Debug("clipboard write failed", "provider", i, "error", err)
		errs = append(errs, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrClipboardUnavailable, errors.Join(errs...))
}
