package api

import (
	"context"
	"net/http"

	"github.com/go-chi/cors"

	"github.com/starford/othala/internal/session"
)

type contextKey string

const callerKey contextKey = "othala.caller"

// RequireSession resolves the session cookie and stores the authenticated
// user's id in the request context. Requests without a valid session get a
// 401 and never reach the wrapped handler.
func RequireSession(sessions *session.Manager, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if c, err := r.Cookie(cookieName); err == nil {
				token = c.Value
			}
			userID, err := sessions.Resolve(r.Context(), token)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorBody("Authentication required"))
				return
			}
			ctx := context.WithValue(r.Context(), callerKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func callerID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(callerKey).(int64)
	return id, ok
}

// CORS allows cross-origin calls from the configured frontend origin.
// Credentials are allowed so the session cookie travels with fetch calls.
func CORS(origin string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
