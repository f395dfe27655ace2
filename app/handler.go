package app

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/omegaatt36/codecompare/internal/domain"
	"github.com/omegaatt36/codecompare/web/template"
)

func (a *App) newRouter() http.Handler {
	mux := http.NewServeMux()

	// HTMX routes; static files are served by the Wails AssetServer directly
	mux.HandleFunc("GET /api/page", a.locked(a.handlePage))
	mux.HandleFunc("POST /api/compare", a.locked(a.handleCompare))
	mux.HandleFunc("POST /api/compare/live", a.locked(a.handleCompareLive))
	mux.HandleFunc("POST /api/settings", a.locked(a.handleSettings))
	mux.HandleFunc("POST /api/settings/toggle", a.locked(a.handleToggle))
	mux.HandleFunc("POST /api/copy", a.locked(a.handleCopy))
	mux.HandleFunc("POST /api/paste", a.locked(a.handlePaste))
	mux.HandleFunc("POST /api/load", a.locked(a.handleLoad))
	mux.HandleFunc("POST /api/open", a.locked(a.handleOpen))
	mux.HandleFunc("POST /api/clear", a.locked(a.handleClear))

	return mux
}

// locked serializes handlers; the session is not safe for concurrent use.
func (a *App) locked(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		h(w, r)
	}
}

// handlePage returns the inner page content (no HTML shell).
// index.html is the shell; this endpoint provides the dynamic body.
func (a *App) handlePage(w http.ResponseWriter, r *http.Request) {
	renderTempl(w, r, template.AppContent(a.buildPageData()))
}

func (a *App) handleCompare(w http.ResponseWriter, r *http.Request) {
	a.compare(r)
	renderTempl(w, r, template.MainContent(a.buildPageData()))
}

// handleCompareLive serves keyup-triggered compares. Only out-of-band
// fragments are returned so the textareas stay in the DOM.
func (a *App) handleCompareLive(w http.ResponseWriter, r *http.Request) {
	a.compare(r)
	renderTempl(w, r, template.LiveUpdate(a.buildPageData()))
}

func (a *App) compare(r *http.Request) {
	input := domain.ComparisonInput{
		Left:  r.FormValue("left"),
		Right: r.FormValue("right"),
	}
	session := a.state.Session
	if session.SetInput(input) {
		a.logger.Info("comparison updated",
			"left_lines", domain.LineCount(input.Left),
			"right_lines", domain.LineCount(input.Right),
			"diff_count", session.DiffCount(),
		)
	}
}

func (a *App) handleSettings(w http.ResponseWriter, r *http.Request) {
	next := a.state.Session.Settings()
	if v, err := strconv.Atoi(r.FormValue("fontSize")); err == nil {
		next.FontSize = v
	}
	if v, err := strconv.Atoi(r.FormValue("splitView")); err == nil {
		next.SplitView = v
	}
	if _, ok := r.Form["language"]; ok {
		next.Language = strings.TrimSpace(r.FormValue("language"))
	}
	if v := r.FormValue("theme"); v != "" {
		next.Theme = v
	}
	a.state.Session.UpdateSettings(next)
	renderTempl(w, r, template.AppContent(a.buildPageData()))
}

func (a *App) handleToggle(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	if _, err := a.state.Session.Toggle(name); err != nil {
		a.logger.Warn("toggle failed", "name", name, "error", err)
		a.notify(domain.NotifyError, "Unknown setting")
	}
	renderTempl(w, r, template.AppContent(a.buildPageData()))
}

func (a *App) handleCopy(w http.ResponseWriter, r *http.Request) {
	side := domain.ParseSide(r.FormValue("side"))
	text := a.state.Session.Input().Text(side)

	switch {
	case text == "":
		a.notify(domain.NotifyError, "Nothing to copy")
	case a.clipboard.WriteText(text) != nil:
		a.notify(domain.NotifyError, "Failed to copy. Please try manually")
	default:
		a.notify(domain.NotifySuccess, "Content copied to clipboard")
	}
	renderTempl(w, r, template.MainContent(a.buildPageData()))
}

func (a *App) handlePaste(w http.ResponseWriter, r *http.Request) {
	side := domain.ParseSide(r.FormValue("side"))

	text, err := a.clipboard.ReadText()
	if err != nil {
		a.logger.Warn("paste failed", "side", side.String(), "error", err)
		a.notify(domain.NotifyError, "Failed to paste. Please try manually")
		renderTempl(w, r, template.MainContent(a.buildPageData()))
		return
	}

	a.state.SetPath(side, "")
	a.state.Session.SetText(side, text)
	a.notify(domain.NotifySuccess, "Content pasted successfully")
	renderTempl(w, r, template.MainContent(a.buildPageData()))
}

// handleLoad reads a file by path into one side (for drag & drop).
func (a *App) handleLoad(w http.ResponseWriter, r *http.Request) {
	side := domain.ParseSide(r.FormValue("side"))
	path := r.FormValue("path")
	if path == "" {
		a.notify(domain.NotifyError, "No file path provided")
		renderTempl(w, r, template.MainContent(a.buildPageData()))
		return
	}
	a.loadFile(side, path)
	renderTempl(w, r, template.MainContent(a.buildPageData()))
}

func (a *App) handleOpen(w http.ResponseWriter, r *http.Request) {
	side := domain.ParseSide(r.FormValue("side"))
	path, err := a.OpenFileDialog()
	if err != nil || path == "" {
		// Dialog cancelled or unavailable, state is unchanged
		renderTempl(w, r, template.MainContent(a.buildPageData()))
		return
	}
	a.loadFile(side, path)
	renderTempl(w, r, template.MainContent(a.buildPageData()))
}

func (a *App) handleClear(w http.ResponseWriter, r *http.Request) {
	a.state.ResetInputs()
	renderTempl(w, r, template.MainContent(a.buildPageData()))
}

func (a *App) loadFile(side domain.Side, path string) {
	info, err := a.fs.Stat(path)
	if err == nil && info.IsDir() {
		err = domain.ErrInvalidPath
	}
	var content []byte
	if err == nil {
		content, err = a.fs.ReadFile(path)
	}
	if err != nil {
		a.logger.Warn("load failed", "path", path, "error", err)
		msg := "Failed to read file"
		if errors.Is(err, domain.ErrInvalidPath) {
			msg = "Invalid file path"
		}
		a.notify(domain.NotifyError, msg)
		return
	}

	a.state.SetPath(side, path)
	a.state.Session.SetText(side, string(content))
	a.logger.Info("file loaded", "side", side.String(), "path", path, "bytes", len(content))
}

func (a *App) notify(level domain.NotificationLevel, msg string) {
	a.notifications.Notify(domain.Notification{Level: level, Message: msg})
}

func (a *App) buildPageData() template.PageData {
	session := a.state.Session
	input := session.Input()

	data := template.PageData{
		Left:           input.Left,
		Right:          input.Right,
		Settings:       session.Settings(),
		LeftLineCount:  domain.LineCount(input.Left),
		RightLineCount: domain.LineCount(input.Right),
		DiffCount:      session.DiffCount(),
		Computed:       !session.Result().Empty(),
	}
	data.LeftRows = a.rows(domain.SideLeft, input.Left)
	data.RightRows = a.rows(domain.SideRight, input.Right)

	if n, ok := a.notifications.Take(); ok {
		data.Toast = &n
	}
	return data
}

func (a *App) rows(side domain.Side, text string) []template.LineRow {
	lines := domain.SplitLines(text)
	if len(lines) == 0 {
		return nil
	}

	html := a.highlighter.HighlightLines(strings.Join(lines, "\n"), a.state.LanguageHint(side))
	rows := make([]template.LineRow, len(lines))
	for i, line := range lines {
		row := template.LineRow{
			Number:    i + 1,
			Highlight: a.state.Session.Highlight(side, i),
		}
		if i < len(html) {
			row.HTML = html[i]
		} else {
			row.HTML = templ.EscapeString(line)
		}
		rows[i] = row
	}
	return rows
}

func renderTempl(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = component.Render(r.Context(), w)
}
