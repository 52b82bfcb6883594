package web

import (
	"crypto/rand"
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
)

const flashSessionName = "yukki_flash"

// Flash is a transient, severity-tagged notice shown once to the user after
// a redirect. Category is "error" or "success".
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

// flashStore queues flash notices in a signed session cookie so they survive
// exactly one redirect.
type flashStore struct {
	store *sessions.CookieStore
}

// newFlashStore creates a cookie-backed flash store signed with the given
// secret. An empty secret gets a random per-process key; flashes are
// transient, so losing them across restarts only drops pending notices.
func newFlashStore(secret string) *flashStore {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(err)
		}
		slog.Warn("server.session_secret is empty, using a random per-process key")
	}

	cs := sessions.NewCookieStore(key)
	cs.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
	}
	return &flashStore{store: cs}
}

// add queues a flash notice for the next rendered page.
func (f *flashStore) add(w http.ResponseWriter, r *http.Request, category, message string) {
	sess, _ := f.store.Get(r, flashSessionName)
	sess.AddFlash(Flash{Category: category, Message: message})
	if err := sess.Save(r, w); err != nil {
		slog.Error("failed to save flash session", "error", err)
	}
}

// drain returns all queued flash notices and clears them from the cookie.
func (f *flashStore) drain(w http.ResponseWriter, r *http.Request) []Flash {
	sess, _ := f.store.Get(r, flashSessionName)

	raw := sess.Flashes()
	if len(raw) > 0 {
		if err := sess.Save(r, w); err != nil {
			slog.Error("failed to save flash session", "error", err)
		}
	}

	var flashes []Flash
	for _, v := range raw {
		if fl, ok := v.(Flash); ok {
			flashes = append(flashes, fl)
		}
	}
	return flashes
}
