package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/starford/othala/internal/apperr"
	"github.com/starford/othala/internal/models"
	"github.com/starford/othala/internal/session"
	"github.com/starford/othala/internal/userservice"
)

// AuthHandler serves signup, login, logout and session introspection.
type AuthHandler struct {
	users        *userservice.Service
	sessions     *session.Manager
	cookieName   string
	cookieSecure bool
}

// NewAuthHandler builds an AuthHandler.
func NewAuthHandler(users *userservice.Service, sessions *session.Manager, cookieName string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, cookieName: cookieName, cookieSecure: cookieSecure}
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, sess *models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Signup registers a new account and logs it in immediately.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorsBody("No data provided"))
		return
	}

	var missing []string
	if req.Username == "" {
		missing = append(missing, "username")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, errorsBody("Missing required fields: "+strings.Join(missing, ", ")))
		return
	}

	user, err := h.users.Register(r.Context(), userservice.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var verr *apperr.ValidationError
		var cerr *apperr.ConflictError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusUnprocessableEntity, errorsBody(verr.Messages...))
		case errors.As(err, &cerr):
			writeJSON(w, http.StatusUnprocessableEntity, errorsBody(cerr.Error()))
		default:
			slog.Error("signup failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorsBody("Registration failed"))
		}
		return
	}

	sess, err := h.sessions.Establish(r.Context(), user.ID)
	if err != nil {
		slog.Error("session create failed after signup", "error", err, "user_id", user.ID)
		writeJSON(w, http.StatusInternalServerError, errorsBody("Registration failed"))
		return
	}
	h.setSessionCookie(w, sess)
	writeJSON(w, http.StatusCreated, newUserResponse(user))
}

// Login authenticates by username and password and establishes a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("No data provided"))
		return
	}
	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("Username and password required"))
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrUnauthenticated) {
			writeJSON(w, http.StatusUnauthorized, errorBody("Invalid credentials"))
			return
		}
		slog.Error("login failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("Login failed"))
		return
	}

	sess, err := h.sessions.Establish(r.Context(), user.ID)
	if err != nil {
		slog.Error("session create failed after login", "error", err, "user_id", user.ID)
		writeJSON(w, http.StatusInternalServerError, errorBody("Login failed"))
		return
	}
	h.setSessionCookie(w, sess)
	writeJSON(w, http.StatusOK, newUserResponse(user))
}

// Logout terminates the current session and clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(h.cookieName); err == nil {
		if err := h.sessions.Terminate(r.Context(), c.Value); err != nil {
			slog.Error("session delete failed", "error", err)
		}
	}
	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// CheckSession reports the user behind the current session cookie, if any.
func (h *AuthHandler) CheckSession(w http.ResponseWriter, r *http.Request) {
	var token string
	if c, err := r.Cookie(h.cookieName); err == nil {
		token = c.Value
	}
	userID, err := h.sessions.Resolve(r.Context(), token)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody("No active session"))
		return
	}
	user, err := h.users.UserByID(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody("No active session"))
		return
	}
	writeJSON(w, http.StatusOK, newUserResponse(user))
}
