package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/WaffleCollege/yukki143/internal/models"
	"github.com/WaffleCollege/yukki143/internal/storage"
)

// listBlogs handles GET /blogs/. It shows all blogs, newest first, with
// their comment counts.
func listBlogs(store *storage.Store, view *renderer, flashes *flashStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		blogs, err := store.ListBlogs(ctx)
		if err != nil {
			slog.Error("failed to list blogs", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		entries := make([]blogEntry, 0, len(blogs))
		for _, b := range blogs {
			n, err := store.CountComments(ctx, b.ID)
			if err != nil {
				slog.Error("failed to count comments", "blog_id", b.ID, "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			entries = append(entries, blogEntry{Blog: b, CommentCount: n})
		}

		view.render(w, http.StatusOK, "index.html", &pageData{
			Title:   "ブログ一覧",
			Flashes: flashes.drain(w, r),
			Blogs:   entries,
		})
	}
}

// newBlogForm handles GET /blogs/new with an empty submission form.
func newBlogForm(view *renderer, flashes *flashStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view.render(w, http.StatusOK, "new.html", &pageData{
			Title:   "新規投稿",
			Flashes: flashes.drain(w, r),
			Blog:    &models.Blog{},
		})
	}
}

// createBlog handles POST /blogs/new. A form submitted without one of the
// required keys is a hard 400; the edit handler, by contrast, tolerates
// missing keys. Validation failures re-render the form with the submitted
// values and persist nothing.
func createBlog(store *storage.Store, view *renderer, flashes *flashStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		for _, key := range []string{"title", "body", "user_name"} {
			if !r.PostForm.Has(key) {
				http.Error(w, fmt.Sprintf("missing form field %q", key), http.StatusBadRequest)
				return
			}
		}

		blog := &models.Blog{
			Title:    r.PostFormValue("title"),
			Body:     r.PostFormValue("body"),
			UserName: r.PostFormValue("user_name"),
		}

		if msgs := blog.Validate(); len(msgs) > 0 {
			view.render(w, http.StatusOK, "new.html", &pageData{
				Title:   "新規投稿",
				Flashes: errorFlashes(msgs),
				Blog:    blog,
			})
			return
		}

		id, err := store.CreateBlog(ctx, blog)
		if err != nil {
			slog.Error("failed to create blog", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/blogs/%d", id), http.StatusFound)
	}
}

// showBlog handles GET /blogs/{id} with the blog and its ordered comments.
func showBlog(store *storage.Store, view *renderer, flashes *flashStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		blog, ok := fetchBlog(w, r, store)
		if !ok {
			return
		}

		comments, err := store.ListComments(ctx, blog.ID)
		if err != nil {
			slog.Error("failed to list comments", "blog_id", blog.ID, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		view.render(w, http.StatusOK, "detail.html", &pageData{
			Title:    blog.Title,
			Flashes:  flashes.drain(w, r),
			Blog:     blog,
			Comments: comments,
		})
	}
}

// editBlogForm handles GET /blogs/{id}/edit with a pre-filled form.
func editBlogForm(store *storage.Store, view *renderer, flashes *flashStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blog, ok := fetchBlog(w, r, store)
		if !ok {
			return
		}

		view.render(w, http.StatusOK, "edit.html", &pageData{
			Title:   "投稿を編集",
			Flashes: flashes.drain(w, r),
			Blog:    blog,
		})
	}
}

// updateBlog handles POST /blogs/{id}/edit. Fields are overwritten from the
// form before validation, so a rejected edit re-renders the mutated values
// while the stored row stays unchanged. Missing form keys become empty
// strings rather than a hard error.
func updateBlog(store *storage.Store, view *renderer, flashes *flashStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		blog, ok := fetchBlog(w, r, store)
		if !ok {
			return
		}

		blog.Title = r.PostFormValue("title")
		blog.Body = r.PostFormValue("body")
		blog.UserName = r.PostFormValue("user_name")

		if msgs := blog.Validate(); len(msgs) > 0 {
			view.render(w, http.StatusOK, "edit.html", &pageData{
				Title:   "投稿を編集",
				Flashes: errorFlashes(msgs),
				Blog:    blog,
			})
			return
		}

		if err := store.UpdateBlog(ctx, blog); err != nil {
			slog.Error("failed to update blog", "blog_id", blog.ID, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		flashes.add(w, r, "success", "投稿を更新しました！")
		http.Redirect(w, r, fmt.Sprintf("/blogs/%d", blog.ID), http.StatusFound)
	}
}

// deleteBlog handles POST /blogs/{id}/delete. The blog's comments go with it
// in the same transaction.
func deleteBlog(store *storage.Store, flashes *flashStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := parseID(r, "id")
		if err != nil {
			http.NotFound(w, r)
			return
		}

		if err := store.DeleteBlog(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			slog.Error("failed to delete blog", "blog_id", id, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		flashes.add(w, r, "success", "投稿を削除しました。")
		http.Redirect(w, r, "/blogs/", http.StatusFound)
	}
}

// fetchBlog loads the blog named by the {id} URL parameter. On a bad or
// unknown id it writes a 404 and returns ok=false; on a storage failure it
// writes a 500.
func fetchBlog(w http.ResponseWriter, r *http.Request, store *storage.Store) (*models.Blog, bool) {
	id, err := parseID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}

	blog, err := store.GetBlog(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.NotFound(w, r)
			return nil, false
		}
		slog.Error("failed to get blog", "blog_id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	return blog, true
}

// errorFlashes wraps validation messages as error notices for an immediate
// re-render, skipping the cookie round-trip a redirect would need.
func errorFlashes(msgs []string) []Flash {
	flashes := make([]Flash, 0, len(msgs))
	for _, m := range msgs {
		flashes = append(flashes, Flash{Category: "error", Message: m})
	}
	return flashes
}
