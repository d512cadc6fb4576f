// Package api exposes the HTTP surface: session auth endpoints and the
// owner-scoped note CRUD, all JSON over chi.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/othala/internal/session"
)

// NewRouter wires the auth and note handlers onto a chi router. Signup,
// login and check_session are open; everything else sits behind
// RequireSession.
func NewRouter(auth *AuthHandler, notes *NoteHandler, sessions *session.Manager, cookieName string) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message":     "Othala notes API",
			"status":      "running",
			"auth_method": "sessions",
		})
	})

	r.Post("/signup", auth.Signup)
	r.Post("/login", auth.Login)
	r.Get("/check_session", auth.CheckSession)

	r.Group(func(r chi.Router) {
		r.Use(RequireSession(sessions, cookieName))

		r.Delete("/logout", auth.Logout)

		r.Get("/notes", notes.List)
		r.Post("/notes", notes.Create)
		r.Get("/notes/{id}", notes.Get)
		r.Patch("/notes/{id}", notes.Update)
		r.Delete("/notes/{id}", notes.Delete)
	})

	return r
}
