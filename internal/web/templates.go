package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/WaffleCollege/yukki143/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pageNames are the content templates, each rendered inside layout.html.
var pageNames = []string{"index.html", "new.html", "detail.html", "edit.html"}

var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006/01/02 15:04")
	},
}

// blogEntry is a list-page row: a blog plus its comment count.
type blogEntry struct {
	models.Blog
	CommentCount int
}

// pageData carries everything the layout and content templates can use.
// Handlers fill in only the fields their page needs.
type pageData struct {
	Title    string
	Flashes  []Flash
	Blog     *models.Blog
	Blogs    []blogEntry
	Comments []models.Comment
}

// renderer holds the parsed page templates, each pre-combined with the
// shared layout.
type renderer struct {
	pages map[string]*template.Template
}

// newRenderer parses all embedded page templates against the layout.
func newRenderer() (*renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(
			templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing template %q: %w", name, err)
		}
		pages[name] = t
	}
	return &renderer{pages: pages}, nil
}

// render executes the named page into a buffer first, so template errors can
// still produce a clean 500 instead of a half-written response.
func (rd *renderer) render(w http.ResponseWriter, status int, name string, data *pageData) {
	t, ok := rd.pages[name]
	if !ok {
		slog.Error("unknown template", "name", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = &pageData{}
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("failed to render template", "name", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w) //nolint:errcheck // client disconnects are not actionable
}
