package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/othala/internal/apperr"
	"github.com/starford/othala/internal/noteservice"
	"github.com/starford/othala/internal/userservice"
)

// NoteHandler serves the owner-scoped note CRUD endpoints. Every handler
// reads the caller id placed in the context by RequireSession, so a note
// belonging to another user is indistinguishable from one that does not
// exist.
type NoteHandler struct {
	notes *noteservice.Service
	users *userservice.Service
}

// NewNoteHandler builds a NoteHandler.
func NewNoteHandler(notes *noteservice.Service, users *userservice.Service) *NoteHandler {
	return &NoteHandler{notes: notes, users: users}
}

func noteID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// List returns the caller's notes, newest first, paginated.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody("Authentication required"))
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	result, err := h.notes.List(r.Context(), userID, page, perPage)
	if err != nil {
		slog.Error("note list failed", "error", err, "user_id", userID)
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to fetch notes"))
		return
	}
	owner, err := h.users.UserByID(r.Context(), userID)
	if err != nil {
		slog.Error("owner lookup failed", "error", err, "user_id", userID)
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to fetch notes"))
		return
	}
	writeJSON(w, http.StatusOK, newNoteListResponse(result, owner))
}

// Create adds a note owned by the caller.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody("Authentication required"))
		return
	}

	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorsBody("No data provided"))
		return
	}
	if req.Title == nil && req.Content == nil {
		writeJSON(w, http.StatusBadRequest, errorsBody("No data provided"))
		return
	}
	if req.Title == nil || *req.Title == "" {
		writeJSON(w, http.StatusBadRequest, errorsBody("Title is required"))
		return
	}
	var content string
	if req.Content != nil {
		content = *req.Content
	}

	note, err := h.notes.Create(r.Context(), userID, *req.Title, content)
	if err != nil {
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, errorsBody(verr.Messages...))
			return
		}
		slog.Error("note create failed", "error", err, "user_id", userID)
		writeJSON(w, http.StatusInternalServerError, errorsBody("Failed to create note"))
		return
	}
	owner, err := h.users.UserByID(r.Context(), userID)
	if err != nil {
		slog.Error("owner lookup failed", "error", err, "user_id", userID)
		writeJSON(w, http.StatusInternalServerError, errorsBody("Failed to create note"))
		return
	}
	writeJSON(w, http.StatusCreated, newNoteResponse(note, owner))
}

// Get returns one of the caller's notes by id.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody("Authentication required"))
		return
	}
	id, err := noteID(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("Note not found"))
		return
	}

	note, err := h.notes.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("Note not found"))
			return
		}
		slog.Error("note fetch failed", "error", err, "note_id", id)
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to fetch note"))
		return
	}
	owner, err := h.users.UserByID(r.Context(), userID)
	if err != nil {
		slog.Error("owner lookup failed", "error", err, "user_id", userID)
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to fetch note"))
		return
	}
	writeJSON(w, http.StatusOK, newNoteResponse(note, owner))
}

// Update applies a partial update to one of the caller's notes.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody("Authentication required"))
		return
	}
	id, err := noteID(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("Note not found"))
		return
	}

	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorsBody("No data provided"))
		return
	}
	if req.Title == nil && req.Content == nil {
		writeJSON(w, http.StatusBadRequest, errorsBody("No data provided"))
		return
	}

	note, err := h.notes.Update(r.Context(), userID, id, noteservice.UpdateParams{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		var verr *apperr.ValidationError
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody("Note not found"))
		case errors.As(err, &verr):
			writeJSON(w, http.StatusUnprocessableEntity, errorsBody(verr.Messages...))
		default:
			slog.Error("note update failed", "error", err, "note_id", id)
			writeJSON(w, http.StatusInternalServerError, errorsBody("Failed to update note"))
		}
		return
	}
	owner, err := h.users.UserByID(r.Context(), userID)
	if err != nil {
		slog.Error("owner lookup failed", "error", err, "user_id", userID)
		writeJSON(w, http.StatusInternalServerError, errorsBody("Failed to update note"))
		return
	}
	writeJSON(w, http.StatusOK, newNoteResponse(note, owner))
}

// Delete removes one of the caller's notes.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody("Authentication required"))
		return
	}
	id, err := noteID(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("Note not found"))
		return
	}

	if err := h.notes.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("Note not found"))
			return
		}
		slog.Error("note delete failed", "error", err, "note_id", id)
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to delete note"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
