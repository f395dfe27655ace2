package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/omegaatt36/codecompare/internal/domain"
	"github.com/omegaatt36/codecompare/internal/mock"
	"github.com/omegaatt36/codecompare/internal/testutil"
)

func TestClipboardService_WriteText(t *testing.T) {
	t.Run("primary succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		primary := mock.NewMockClipboard(ctrl)
		fallback := mock.NewMockClipboard(ctrl)

		primary.EXPECT().WriteText("hello").Return(nil)
		fallback.EXPECT().WriteText(gomock.Any()).Times(0)

		svc := NewClipboardService(testutil.DiscardLogger(), primary, fallback)
		require.NoError(t, svc.WriteText("hello"))
	})

	t.Run("falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		primary := mock.NewMockClipboard(ctrl)
		fallback := mock.NewMockClipboard(ctrl)

		primary.EXPECT().WriteText("hello").Return(domain.ErrClipboardUnavailable)
		fallback.EXPECT().WriteText("hello").Return(nil)

		svc := NewClipboardService(testutil.DiscardLogger(), primary, fallback)
		require.NoError(t, svc.WriteText("hello"))
	})

	t.Run("all fail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		primary := mock.NewMockClipboard(ctrl)
		fallback := mock.NewMockClipboard(ctrl)

		primary.EXPECT().WriteText("hello").Return(errors.New("denied"))
		fallback.EXPECT().WriteText("hello").Return(errors.New("no xclip"))

		svc := NewClipboardService(testutil.DiscardLogger(), primary, fallback)
		err := svc.WriteText("hello")
		assert.True(t, errors.Is(err, domain.ErrClipboardUnavailable))
		assert.Contains(t, err.Error(), "no xclip")
	})
}

func TestClipboardService_ReadText(t *testing.T) {
	t.Run("falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		primary := mock.NewMockClipboard(ctrl)
		fallback := mock.NewMockClipboard(ctrl)

		primary.EXPECT().ReadText().Return("", domain.ErrClipboardUnavailable)
		fallback.EXPECT().ReadText().Return("pasted", nil)

		svc := NewClipboardService(testutil.DiscardLogger(), primary, fallback)
		text, err := svc.ReadText()
		require.NoError(t, err)
		assert.Equal(t, "pasted", text)
	})

	t.Run("all fail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		primary := mock.NewMockClipboard(ctrl)
		primary.EXPECT().ReadText().Return("", errors.New("denied"))

		svc := NewClipboardService(testutil.DiscardLogger(), primary)
		_, err := svc.ReadText()
		assert.True(t, errors.Is(err, domain.ErrClipboardUnavailable))
	})
}
