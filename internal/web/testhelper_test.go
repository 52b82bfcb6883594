package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/WaffleCollege/yukki143/internal/ai"
	"github.com/WaffleCollege/yukki143/internal/config"
	"github.com/WaffleCollege/yukki143/internal/models"
	"github.com/WaffleCollege/yukki143/internal/storage"
)

// newTestStore creates an in-memory SQLite store with migrations applied.
func newTestStore(t *testing.T) *storage.Store {
	t.Helper()

	db, err := storage.OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := storage.RunMigrations(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	return storage.NewStore(db)
}

// newTestRouter builds the full router around the given store and provider.
func newTestRouter(t *testing.T, store *storage.Store, provider ai.Provider) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:          8080,
			SessionSecret: "test-secret",
		},
	}
	router, err := NewRouter(store, provider, cfg)
	if err != nil {
		t.Fatalf("building router: %v", err)
	}
	return router
}

// seedBlog inserts a test blog and returns its ID.
func seedBlog(t *testing.T, store *storage.Store, title string) int64 {
	t.Helper()

	blog := &models.Blog{Title: title, Body: "テスト本文", UserName: "ゆき"}
	id, err := store.CreateBlog(context.Background(), blog)
	if err != nil {
		t.Fatalf("seeding blog: %v", err)
	}
	return id
}

// postForm sends an application/x-www-form-urlencoded POST through the router.
func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// get sends a GET request through the router.
func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// mockProvider is an ai.Provider returning a fixed text or error.
type mockProvider struct {
	text string
	err  error
}

func (m *mockProvider) GenerateComment(ctx context.Context, title, body string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}
