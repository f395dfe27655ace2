package app

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/omegaatt36/codecompare/internal/domain"
	"github.com/omegaatt36/codecompare/internal/mock"
	"github.com/omegaatt36/codecompare/internal/testutil"
)

type mocks struct {
	comparer    *mock.MockComparer
	highlighter *mock.MockHighlighter
	clipboard   *mock.MockClipboard
	fs          *mock.MockFileSystem
}

func newMockedApp(t *testing.T) (*App, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		comparer:    mock.NewMockComparer(ctrl),
		highlighter: mock.NewMockHighlighter(ctrl),
		clipboard:   mock.NewMockClipboard(ctrl),
		fs:          mock.NewMockFileSystem(ctrl),
	}
	// Rendering is not under test here.
	m.highlighter.EXPECT().HighlightLines(gomock.Any(), gomock.Any()).
		DoAndReturn(func(source, _ string) []string { return strings.Split(source, "\n") }).
		AnyTimes()
	app := NewApp(m.comparer, m.highlighter, m.clipboard, m.fs, WithLogger(testutil.DiscardLogger()))
	return app, m
}

func servePost(handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleCompare_WithComparerMock(t *testing.T) {
	app, m := newMockedApp(t)

	input := domain.ComparisonInput{Left: "a\nb", Right: "a\nc"}
	result := domain.DiffResult{
		{Type: domain.DiffUnchanged, Lines: []string{"a"}},
		{Type: domain.DiffRemoved, Lines: []string{"b"}},
		{Type: domain.DiffAdded, Lines: []string{"c"}},
	}
	m.comparer.EXPECT().Compare(input, domain.ComparisonOptions{}).Return(result)

	rec := servePost(app.GetHandler(), "/api/compare", url.Values{"left": {input.Left}, "right": {input.Right}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, app.state.Session.DiffCount())
	assert.Equal(t, domain.HighlightRemoved, app.state.Session.Highlight(domain.SideLeft, 1))
	assert.Contains(t, rec.Body.String(), "2 differences")
}

func TestHandleCompare_SameInputDoesNotRecompute(t *testing.T) {
	app, m := newMockedApp(t)

	m.comparer.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	form := url.Values{"left": {"x"}, "right": {"y"}}
	servePost(app.GetHandler(), "/api/compare", form)
	servePost(app.GetHandler(), "/api/compare", form)

	assert.Equal(t, 1, app.state.Session.Revision())
}

func TestHandleSettings_PresentationOnly(t *testing.T) {
	app, m := newMockedApp(t)
	handler := app.GetHandler()

	m.comparer.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	servePost(handler, "/api/compare", url.Values{"left": {"x"}, "right": {"y"}})

	rec := servePost(handler, "/api/settings", url.Values{"fontSize": {"40"}, "splitView": {"5"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	s := app.state.Session.Settings()
	assert.Equal(t, domain.MaxFontSize, s.FontSize)
	assert.Equal(t, domain.MinSplitView, s.SplitView)
}

func TestHandleToggle_ComparisonOptions(t *testing.T) {
	app, m := newMockedApp(t)
	handler := app.GetHandler()

	input := domain.ComparisonInput{Left: "a ", Right: "a"}
	gomock.InOrder(
		m.comparer.EXPECT().Compare(input, domain.ComparisonOptions{}).Return(nil),
		m.comparer.EXPECT().Compare(input, domain.ComparisonOptions{IgnoreWhitespace: true}).Return(nil),
	)

	servePost(handler, "/api/compare", url.Values{"left": {input.Left}, "right": {input.Right}})
	servePost(handler, "/api/settings/toggle", url.Values{"name": {"ignoreWhitespace"}})
	// Presentation toggles never reach the comparer.
	servePost(handler, "/api/settings/toggle", url.Values{"name": {"wrapLines"}})
	servePost(handler, "/api/settings/toggle", url.Values{"name": {"theme"}})

	s := app.state.Session.Settings()
	assert.True(t, s.IgnoreWhitespace)
	assert.True(t, s.WrapLines)
	assert.Equal(t, domain.ThemeLight, s.Theme)
}

func TestHandleCopy_WithClipboardMock(t *testing.T) {
	app, m := newMockedApp(t)
	handler := app.GetHandler()

	m.comparer.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(nil)
	m.clipboard.EXPECT().WriteText("left side").Return(nil)

	servePost(handler, "/api/compare", url.Values{"left": {"left side"}, "right": {"right side"}})
	rec := servePost(handler, "/api/copy", url.Values{"side": {"left"}})

	assert.Contains(t, rec.Body.String(), "Content copied to clipboard")
}

func TestHandleCopy_NothingToCopy(t *testing.T) {
	app, m := newMockedApp(t)

	m.clipboard.EXPECT().WriteText(gomock.Any()).Times(0)

	rec := servePost(app.GetHandler(), "/api/copy", url.Values{"side": {"right"}})

	assert.Contains(t, rec.Body.String(), "Nothing to copy")
}

func TestHandlePaste_WithClipboardMock(t *testing.T) {
	app, m := newMockedApp(t)

	m.clipboard.EXPECT().ReadText().Return("from clipboard", nil)
	m.comparer.EXPECT().Compare(domain.ComparisonInput{Left: "from clipboard"}, gomock.Any()).Return(nil)

	rec := servePost(app.GetHandler(), "/api/paste", url.Values{"side": {"left"}})

	assert.Equal(t, "from clipboard", app.state.Session.Input().Left)
	assert.Contains(t, rec.Body.String(), "Content pasted successfully")
}

func TestHandleLoad_WithFileSystemMock(t *testing.T) {
	app, m := newMockedApp(t)

	m.fs.EXPECT().Stat("/work/util.py").Return(testutil.NewMockFile("util.py", 12), nil)
	m.fs.EXPECT().ReadFile("/work/util.py").Return([]byte("print('hi')\n"), nil)
	m.comparer.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(nil)

	rec := servePost(app.GetHandler(), "/api/load", url.Values{"side": {"right"}, "path": {"/work/util.py"}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "print('hi')\n", app.state.Session.Input().Right)
	assert.Equal(t, "/work/util.py", app.state.RightPath)
	assert.Equal(t, "util.py", app.state.LanguageHint(domain.SideRight))
}

func TestHandleLoad_ReadError(t *testing.T) {
	app, m := newMockedApp(t)

	m.fs.EXPECT().Stat("/work/locked.txt").Return(testutil.NewMockFile("locked.txt", 1), nil)
	m.fs.EXPECT().ReadFile("/work/locked.txt").Return(nil, assert.AnError)

	rec := servePost(app.GetHandler(), "/api/load", url.Values{"side": {"left"}, "path": {"/work/locked.txt"}})

	assert.Empty(t, app.state.Session.Input().Left)
	assert.Empty(t, app.state.LeftPath)
	assert.Contains(t, rec.Body.String(), "Failed to read file")
}

func TestHandleLoad_InvalidPath(t *testing.T) {
	app, m := newMockedApp(t)

	m.fs.EXPECT().Stat("/missing").Return(nil, domain.ErrInvalidPath)
	m.fs.EXPECT().ReadFile(gomock.Any()).Times(0)

	rec := servePost(app.GetHandler(), "/api/load", url.Values{"side": {"left"}, "path": {"/missing"}})

	assert.Contains(t, rec.Body.String(), "Invalid file path")
}

func TestOpenFileDialog_BeforeStartup(t *testing.T) {
	app, _ := newMockedApp(t)

	_, err := app.OpenFileDialog()
	assert.ErrorIs(t, err, domain.ErrInvalidPath)
}

func TestNewApp_WithSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := domain.DefaultSettings()
	settings.FontSize = 99
	settings.Theme = domain.ThemeLight

	app := NewApp(mock.NewMockComparer(ctrl), mock.NewMockHighlighter(ctrl), mock.NewMockClipboard(ctrl), mock.NewMockFileSystem(ctrl),
		WithSettings(settings), WithLogger(testutil.DiscardLogger()))

	s := app.state.Session.Settings()
	assert.Equal(t, domain.MaxFontSize, s.FontSize)
	assert.Equal(t, domain.ThemeLight, s.Theme)
	assert.Equal(t, 0, app.state.Session.Revision())
}
