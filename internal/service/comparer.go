package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/omegaatt36/codecompare/internal/domain"
	"github.com/omegaatt36/codecompare/internal/port"
)

// ComparisonService normalizes both sides, runs the line-diff primitive and
// converts its output into segments. It holds no state between calls.
type ComparisonService struct {
	primitive port.DiffPrimitive
	notifier  port.Notifier
	logger    *slog.Logger
}

// ComparisonOption configures a ComparisonService.
type ComparisonOption func(*ComparisonService)

// WithComparisonLogger sets the logger used for diff failures.
func WithComparisonLogger(logger *slog.Logger) ComparisonOption {
	return func(s *ComparisonService) {
		s.logger = logger
	}
}

func NewComparisonService(primitive port.DiffPrimitive, notifier port.Notifier, opts ...ComparisonOption) *ComparisonService {
	s := &ComparisonService{
		primitive: primitive,
		notifier:  notifier,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compare diffs the raw input under opts. Either side being empty means no
// diff is computed and the result is empty.
func (s *ComparisonService) Compare(input domain.ComparisonInput, opts domain.ComparisonOptions) domain.DiffResult {
	if input.Left == "" || input.Right == "" {
		return nil
	}
	return s.ComputeDiff(domain.Normalize(input.Left, opts), domain.Normalize(input.Right, opts))
}

// ComputeDiff diffs two normalized texts. It returns an empty result when
// either text is empty or the primitive fails; failures are reported once
// on the notification channel.
func (s *ComparisonService) ComputeDiff(left, right string) domain.DiffResult {
	if left == "" || right == "" {
		return nil
	}

	// Terminating both texts makes the last line a token like every other.
	chunks, err := s.diffLines(left+"\n", right+"\n")
	if err != nil {
		s.logger.Error("diff calculation failed", "error", err)
		if s.notifier != nil {
			msg := "Diff calculation failed"
			if errors.Is(err, domain.ErrInputTooLarge) {
				msg = "Input too large for the selected diff engine"
			}
			s.notifier.Notify(domain.Notification{Level: domain.NotifyError, Message: msg})
		}
		return nil
	}
	return domain.SegmentsFromChunks(chunks)
}

func (s *ComparisonService) diffLines(left, right string) (chunks []domain.Chunk, err error) {
	defer func() {
		if r := recover(); r != nil {
			chunks, err = nil, fmt.Errorf("%w: %v", domain.ErrDiffFailed, r)
		}
	}()

	chunks, err = s.primitive.DiffLines(left, right)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDiffFailed, err)
	}
	return chunks, nil
}
