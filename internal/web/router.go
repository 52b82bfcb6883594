// Package web serves the blog's HTML pages and its JSON endpoints.
package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/WaffleCollege/yukki143/internal/ai"
	"github.com/WaffleCollege/yukki143/internal/config"
	"github.com/WaffleCollege/yukki143/internal/storage"
)

// NewRouter creates and configures the HTTP router with all blog routes.
// The AI provider may be nil, in which case the ai-comment endpoint reports
// that the feature is unavailable.
func NewRouter(store *storage.Store, provider ai.Provider, cfg *config.Config) (http.Handler, error) {
	view, err := newRenderer()
	if err != nil {
		return nil, err
	}
	flashes := newFlashStore(cfg.Server.SessionSecret)

	r := chi.NewRouter()

	// Global middleware.
	r.Use(RequestLogger)
	r.Use(Recovery)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/blogs/", http.StatusFound)
	})
	r.Get("/healthz", health())

	r.Route("/blogs", func(r chi.Router) {
		r.Get("/", listBlogs(store, view, flashes))
		r.Get("/new", newBlogForm(view, flashes))
		r.Post("/new", createBlog(store, view, flashes))
		r.Get("/{id}", showBlog(store, view, flashes))
		r.Get("/{id}/edit", editBlogForm(store, view, flashes))
		r.Post("/{id}/edit", updateBlog(store, view, flashes))
		r.Post("/{id}/delete", deleteBlog(store, flashes))
		r.Post("/{id}/comments", addComment(store, flashes))
		r.Post("/{id}/ai-comment", aiComment(store, provider))
	})

	return r, nil
}
