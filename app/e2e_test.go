package app

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/omegaatt36/codecompare/internal/adapter/difflib"
	"github.com/omegaatt36/codecompare/internal/adapter/dmp"
	adapterfs "github.com/omegaatt36/codecompare/internal/adapter/fs"
	"github.com/omegaatt36/codecompare/internal/adapter/lcs"
	"github.com/omegaatt36/codecompare/internal/adapter/notify"
	"github.com/omegaatt36/codecompare/internal/adapter/syntax"
	"github.com/omegaatt36/codecompare/internal/domain"
	"github.com/omegaatt36/codecompare/internal/port"
	"github.com/omegaatt36/codecompare/internal/service"
	"github.com/omegaatt36/codecompare/internal/testutil"
)

func newE2EApp(primitive port.DiffPrimitive) *App {
	logger := testutil.DiscardLogger()
	center := notify.NewCenter(logger)
	comparer := service.NewComparisonService(primitive, center, service.WithComparisonLogger(logger))
	return NewApp(
		comparer,
		syntax.NewHighlighter(syntax.DefaultStyle),
		&fakeClipboard{},
		&adapterfs.OSFileSystem{},
		WithLogger(logger),
		WithNotifications(center),
	)
}

func e2ePost(t *testing.T, handler http.Handler, path string, form url.Values) string {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("%s: got status %d", path, rec.Code)
	}
	return rec.Body.String()
}

// TestE2E_LoadAndCompareFiles loads two source files from disk, diffs them
// and checks the rendered, syntax highlighted output.
func TestE2E_LoadAndCompareFiles(t *testing.T) {
	dir := t.TempDir()
	left := filepath.Join(dir, "old.go")
	right := filepath.Join(dir, "new.go")
	if err := os.WriteFile(left, []byte("package main\n\nfunc a() {}\n"), 0o644); err != nil {
		t.Fatalf("failed to write left file: %v", err)
	}
	if err := os.WriteFile(right, []byte("package main\n\nfunc b() {}\n"), 0o644); err != nil {
		t.Fatalf("failed to write right file: %v", err)
	}

	app := newE2EApp(dmp.NewEngine(time.Second))
	handler := app.GetHandler()

	t.Log("Step 1: load left file")
	e2ePost(t, handler, "/api/load", url.Values{"side": {"left"}, "path": {left}})
	if app.state.Session.Revision() != 1 {
		t.Fatalf("got revision %d, want 1", app.state.Session.Revision())
	}
	if !app.state.Session.Result().Empty() {
		t.Error("no diff should exist while the right side is empty")
	}

	t.Log("Step 2: load right file")
	body := e2ePost(t, handler, "/api/load", url.Values{"side": {"right"}, "path": {right}})

	if got := app.state.Session.DiffCount(); got != 2 {
		t.Errorf("got diff count %d, want 2", got)
	}
	if !strings.Contains(body, "2 differences") {
		t.Error("response should contain the diff count")
	}
	if !strings.Contains(body, `<div class="line removed"><span class="ln">3</span>`) {
		t.Error("the changed function on the left should be marked removed")
	}
	if !strings.Contains(body, `class="line added"`) {
		t.Error("an added line should be marked on the right")
	}
	if !strings.Contains(body, `<span style="color:`) {
		t.Error("go source should be syntax highlighted")
	}
	if !strings.Contains(body, "4 lines") {
		t.Error("line count should include the trailing empty line")
	}

	t.Log("Step 3: load a directory")
	body = e2ePost(t, handler, "/api/load", url.Values{"side": {"right"}, "path": {dir}})
	if !strings.Contains(body, "Invalid file path") {
		t.Error("loading a directory should fail with a toast")
	}
	if app.state.RightPath != right {
		t.Errorf("right path changed to %q after a failed load", app.state.RightPath)
	}

	t.Log("Step 4: clear")
	e2ePost(t, handler, "/api/clear", nil)
	if !app.state.Session.Result().Empty() {
		t.Error("result should be empty after clear")
	}
}

// TestE2E_ComparisonOptions drives every engine through the option toggles.
func TestE2E_ComparisonOptions(t *testing.T) {
	engines := map[string]port.DiffPrimitive{
		"myers":   dmp.NewEngine(time.Second),
		"difflib": difflib.NewEngine(difflib.DefaultMaxLines),
		"lcs":     lcs.NewEngine(lcs.DefaultMaxLines),
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			app := newE2EApp(engine)
			handler := app.GetHandler()

			e2ePost(t, handler, "/api/compare", url.Values{
				"left":  {"Hello\n  World\r\nkeep"},
				"right": {"hello\nWorld\nkeep"},
			})
			if got := app.state.Session.DiffCount(); got != 4 {
				t.Errorf("got diff count %d, want 4", got)
			}

			e2ePost(t, handler, "/api/settings/toggle", url.Values{"name": {"ignoreWhitespace"}})
			if got := app.state.Session.DiffCount(); got != 2 {
				t.Errorf("ignoring whitespace: got diff count %d, want 2", got)
			}

			body := e2ePost(t, handler, "/api/settings/toggle", url.Values{"name": {"ignoreCase"}})
			if got := app.state.Session.DiffCount(); got != 0 {
				t.Errorf("ignoring case: got diff count %d, want 0", got)
			}
			if !strings.Contains(body, "0 differences") {
				t.Error("an identical comparison should still report its count")
			}
			if app.state.Session.Highlight(domain.SideLeft, 0) != domain.HighlightNone {
				t.Error("no line should be highlighted")
			}
		})
	}
}

// TestE2E_CollapseUnchanged hides unchanged runs once a diff exists.
func TestE2E_CollapseUnchanged(t *testing.T) {
	app := newE2EApp(dmp.NewEngine(time.Second))
	handler := app.GetHandler()

	e2ePost(t, handler, "/api/compare", url.Values{
		"left":  {"one\ntwo\nthree\nfour"},
		"right": {"one\ntwo\nthree\nFOUR"},
	})
	body := e2ePost(t, handler, "/api/settings/toggle", url.Values{"name": {"showUnchanged"}})

	if app.state.Session.Revision() != 1 {
		t.Error("showUnchanged must not recompute the diff")
	}
	if !strings.Contains(body, "3 unchanged lines") {
		t.Error("unchanged lines should be collapsed")
	}
}

// TestE2E_LiveEdit checks that typing only refreshes the out-of-band
// fragments and never replaces the textareas.
func TestE2E_LiveEdit(t *testing.T) {
	app := newE2EApp(dmp.NewEngine(time.Second))
	handler := app.GetHandler()

	body := e2ePost(t, handler, "/api/settings/toggle", url.Values{"name": {"liveEdit"}})
	if !strings.Contains(body, `hx-post="/api/compare/live"`) {
		t.Fatal("live edit form should post to the live endpoint")
	}

	body = e2ePost(t, handler, "/api/compare/live", url.Values{"left": {"\nx\ny"}, "right": {"\nx\nz"}})

	if strings.Contains(body, "<textarea") {
		t.Error("live response must not contain the textareas")
	}
	if !strings.Contains(body, `id="rows-left" class="rows-wrap" hx-swap-oob="true"`) {
		t.Error("left rows should be swapped out of band")
	}
	if !strings.Contains(body, `id="summary" class="summary" hx-swap-oob="true"`) {
		t.Error("summary should be swapped out of band")
	}
	if got := app.state.Session.Input().Left; got != "\nx\ny" {
		t.Errorf("got left %q, leading blank line must be kept", got)
	}
	if got := app.state.Session.DiffCount(); got != 2 {
		t.Errorf("got diff count %d, want 2", got)
	}
}
