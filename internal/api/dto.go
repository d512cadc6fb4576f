package api

import (
	"time"

	"github.com/starford/othala/internal/models"
	"github.com/starford/othala/internal/noteservice"
)

// SignupRequest is the request body for POST /signup.
type SignupRequest struct {
	Username string `json:"username" example:"newuser"`
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"password123"`
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Username string `json:"username" example:"testuser"`
	Password string `json:"password" example:"password123"`
}

// CreateNoteRequest is the request body for POST /notes. Pointer fields let
// the handler tell an empty payload apart from one with blank values.
type CreateNoteRequest struct {
	Title   *string `json:"title" example:"Shopping List"`
	Content *string `json:"content" example:"milk, eggs"`
}

// UpdateNoteRequest is the request body for PATCH /notes/{id}. Absent fields
// keep their prior values.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// UserResponse is the external representation of a user. The password hash
// has no field here, so it cannot be serialized on any code path.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// NoteOwner is the minimal owner info nested inside a note.
type NoteOwner struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// NoteResponse is the external representation of a note.
type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    int64     `json:"user_id"`
	User      NoteOwner `json:"user"`
}

func newNoteResponse(n *models.Note, owner *models.User) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		UserID:    n.UserID,
		User:      NoteOwner{ID: owner.ID, Username: owner.Username},
	}
}

// PaginationMeta describes a page's position within the full collection.
type PaginationMeta struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NoteListResponse wraps a paginated note listing.
type NoteListResponse struct {
	Notes      []NoteResponse `json:"notes"`
	Pagination PaginationMeta `json:"pagination"`
}

func newNoteListResponse(p *noteservice.Page, owner *models.User) NoteListResponse {
	notes := make([]NoteResponse, len(p.Items))
	for i := range p.Items {
		notes[i] = newNoteResponse(&p.Items[i], owner)
	}
	return NoteListResponse{
		Notes: notes,
		Pagination: PaginationMeta{
			Page:       p.Page,
			PerPage:    p.PerPage,
			Total:      p.Total,
			TotalPages: p.TotalPages,
			HasNext:    p.HasNext,
			HasPrev:    p.HasPrev,
		},
	}
}
