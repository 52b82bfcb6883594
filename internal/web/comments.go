package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/WaffleCollege/yukki143/internal/ai"
	"github.com/WaffleCollege/yukki143/internal/models"
	"github.com/WaffleCollege/yukki143/internal/storage"
)

// aiCommentAuthor is the synthetic user name attached to generated comments.
const aiCommentAuthor = "AI Bot"

// addComment handles POST /blogs/{id}/comments. Only presence of body and
// user_name is checked here; the declared length constraints are not
// enforced on this path.
func addComment(store *storage.Store, flashes *flashStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		blog, ok := fetchBlog(w, r, store)
		if !ok {
			return
		}
		detailURL := fmt.Sprintf("/blogs/%d", blog.ID)

		body := r.PostFormValue("body")
		userName := r.PostFormValue("user_name")

		if body == "" || userName == "" {
			flashes.add(w, r, "error", "コメント本文と名前は必須です。")
			http.Redirect(w, r, detailURL, http.StatusFound)
			return
		}

		comment := &models.Comment{
			Body:     body,
			UserName: userName,
			BlogID:   blog.ID,
		}
		if _, err := store.CreateComment(ctx, comment); err != nil {
			slog.Error("failed to create comment", "blog_id", blog.ID, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		flashes.add(w, r, "success", "コメントを追加しました！")
		http.Redirect(w, r, detailURL, http.StatusFound)
	}
}

// aiComment handles POST /blogs/{id}/ai-comment. It calls the LLM provider
// synchronously with the blog's title and body, persists the generated text
// as a comment by the synthetic "AI Bot" user, and returns it as JSON. The
// comment is only written after the provider call succeeds; a provider
// failure fails the whole request with no retry and no fallback comment.
func aiComment(store *storage.Store, provider ai.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		blog, ok := fetchBlog(w, r, store)
		if !ok {
			return
		}

		if provider == nil {
			writeError(w, http.StatusServiceUnavailable, "AI provider is not configured")
			return
		}

		text, err := provider.GenerateComment(ctx, blog.Title, blog.Body)
		if err != nil {
			slog.Error("failed to generate ai comment", "blog_id", blog.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to generate comment")
			return
		}

		slog.Debug("generated ai comment", "blog_id", blog.ID, "body", text)

		comment := &models.Comment{
			Body:     text,
			UserName: aiCommentAuthor,
			BlogID:   blog.ID,
		}
		if _, err := store.CreateComment(ctx, comment); err != nil {
			slog.Error("failed to save ai comment", "blog_id", blog.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to save comment")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"body":      text,
			"user_name": aiCommentAuthor,
		})
	}
}
