// Package noteservice is the access-controlled CRUD layer over note storage.
// Every operation takes the authenticated caller's user id explicitly; the
// transport layer resolves it once per request and nothing here ever reads
// ambient session state. Ownership is enforced in the store's queries by
// filtering on (id, user_id) together, so a note owned by someone else is
// indistinguishable from a missing one.
package noteservice

import (
	"context"

	"github.com/starford/othala/internal/models"
	"github.com/starford/othala/internal/store"
)

// Service coordinates note storage operations for an authenticated caller.
type Service struct {
	store store.Repository
}

// NewService creates a new note service.
func NewService(st store.Repository) *Service {
	return &Service{store: st}
}

// List returns one page of the caller's notes, most recently touched first.
func (s *Service) List(ctx context.Context, userID int64, page, perPage int) (*Page, error) {
	page, perPage = clampPaging(page, perPage)
	items, total, err := s.store.ListNotes(ctx, userID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	return newPage(items, page, perPage, total), nil
}

// Create stores a new note owned by the caller. Title rules are enforced at
// the store layer.
func (s *Service) Create(ctx context.Context, userID int64, title, content string) (*models.Note, error) {
	return s.store.CreateNote(ctx, userID, title, content)
}

// Get fetches one of the caller's notes by id.
func (s *Service) Get(ctx context.Context, userID, id int64) (*models.Note, error) {
	return s.store.NoteByID(ctx, id, userID)
}

// UpdateParams carries a partial update; nil fields are left untouched.
type UpdateParams struct {
	Title   *string
	Content *string
}

// Update applies a partial update to one of the caller's notes and refreshes
// updated_at when any field changed.
func (s *Service) Update(ctx context.Context, userID, id int64, p UpdateParams) (*models.Note, error) {
	return s.store.UpdateNote(ctx, id, userID, p.Title, p.Content)
}

// Delete removes one of the caller's notes. Deletion is immediate and
// irreversible.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	return s.store.DeleteNote(ctx, id, userID)
}
