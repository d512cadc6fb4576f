package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/starford/othala/internal/apperr"
	"github.com/starford/othala/internal/models"
)

func testOwner(t *testing.T, st *Store, username string) *models.User {
	t.Helper()
	user, err := st.CreateUser(context.Background(), username, username+"@example.com", "h")
	if err != nil {
		t.Fatal(err)
	}
	return user
}

func TestCreateNoteTrimsAndValidates(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	owner := testOwner(t, st, "writer")

	note, err := st.CreateNote(ctx, owner.ID, "  Meeting Notes  ", "agenda")
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if note.Title != "Meeting Notes" {
		t.Errorf("title = %q, want trimmed", note.Title)
	}
	if note.UserID != owner.ID {
		t.Errorf("user_id = %d, want %d", note.UserID, owner.ID)
	}
	if note.UpdatedAt.Before(note.CreatedAt) {
		t.Error("updated_at before created_at")
	}
}

func TestCreateNoteBlankTitle(t *testing.T) {
	st := openTestStore(t)
	owner := testOwner(t, st, "blank")

	_, err := st.CreateNote(context.Background(), owner.ID, "   ", "body")
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("blank title error = %v, want ValidationError", err)
	}
	if verr.Messages[0] != "Note title is required" {
		t.Errorf("message = %q", verr.Messages[0])
	}
}

func TestCreateNoteTitleTooLong(t *testing.T) {
	st := openTestStore(t)
	owner := testOwner(t, st, "long")

	_, err := st.CreateNote(context.Background(), owner.ID, strings.Repeat("x", 201), "body")
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("long title error = %v, want ValidationError", err)
	}
	if verr.Messages[0] != "Note title must be less than 200 characters" {
		t.Errorf("message = %q", verr.Messages[0])
	}

	// Exactly 200 runes is allowed.
	if _, err := st.CreateNote(context.Background(), owner.ID, strings.Repeat("x", 200), "body"); err != nil {
		t.Errorf("200-char title rejected: %v", err)
	}
}

func TestNoteByIDScopedToOwner(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	alice := testOwner(t, st, "alice")
	mallory := testOwner(t, st, "mallory")

	note, err := st.CreateNote(ctx, alice.ID, "secret", "hidden")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := st.NoteByID(ctx, note.ID, alice.ID); err != nil {
		t.Errorf("owner fetch: %v", err)
	}
	if _, err := st.NoteByID(ctx, note.ID, mallory.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("cross-user fetch = %v, want ErrNotFound", err)
	}
}

func TestListNotesOrderAndTotal(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	owner := testOwner(t, st, "lister")
	other := testOwner(t, st, "other")

	var last *models.Note
	for _, title := range []string{"first", "second", "third"} {
		n, err := st.CreateNote(ctx, owner.ID, title, "")
		if err != nil {
			t.Fatal(err)
		}
		last = n
	}
	if _, err := st.CreateNote(ctx, other.ID, "not mine", ""); err != nil {
		t.Fatal(err)
	}

	notes, total, err := st.ListNotes(ctx, owner.ID, 10, 0)
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(notes) != 3 {
		t.Fatalf("len(notes) = %d, want 3", len(notes))
	}
	// Newest first. The last created note sorts highest.
	if notes[0].ID != last.ID {
		t.Errorf("notes[0].ID = %d, want %d", notes[0].ID, last.ID)
	}
	for i := 1; i < len(notes); i++ {
		prev, cur := notes[i-1], notes[i]
		if cur.UpdatedAt.After(prev.UpdatedAt) {
			t.Errorf("notes out of order at %d", i)
		}
		if cur.UpdatedAt.Equal(prev.UpdatedAt) && cur.ID > prev.ID {
			t.Errorf("id tiebreak violated at %d", i)
		}
	}
}

func TestListNotesOffsetBeyondEnd(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	owner := testOwner(t, st, "sparse")

	if _, err := st.CreateNote(ctx, owner.ID, "only one", ""); err != nil {
		t.Fatal(err)
	}

	notes, total, err := st.ListNotes(ctx, owner.ID, 10, 100)
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if notes == nil {
		t.Error("notes = nil, want empty slice")
	}
	if len(notes) != 0 {
		t.Errorf("len(notes) = %d, want 0", len(notes))
	}
	if total != 1 {
		t.Errorf("total = %d, want 1", total)
	}
}

func TestUpdateNoteBumpsUpdatedAt(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	owner := testOwner(t, st, "editor")

	note, err := st.CreateNote(ctx, owner.ID, "draft", "v1")
	if err != nil {
		t.Fatal(err)
	}

	title := "final"
	updated, err := st.UpdateNote(ctx, note.ID, owner.ID, &title, nil)
	if err != nil {
		t.Fatalf("UpdateNote: %v", err)
	}
	if updated.Title != "final" {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.Content != "v1" {
		t.Errorf("content = %q, want unchanged", updated.Content)
	}
	if !updated.UpdatedAt.After(note.UpdatedAt) {
		t.Errorf("updated_at not bumped: %v <= %v", updated.UpdatedAt, note.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(note.CreatedAt) {
		t.Error("created_at changed on update")
	}
}

func TestUpdateNoteNoFields(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	owner := testOwner(t, st, "idle")

	note, err := st.CreateNote(ctx, owner.ID, "static", "same")
	if err != nil {
		t.Fatal(err)
	}

	updated, err := st.UpdateNote(ctx, note.ID, owner.ID, nil, nil)
	if err != nil {
		t.Fatalf("UpdateNote: %v", err)
	}
	if !updated.UpdatedAt.Equal(note.UpdatedAt) {
		t.Error("updated_at changed without any field update")
	}
}

func TestUpdateNoteScopedToOwner(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	alice := testOwner(t, st, "alice")
	mallory := testOwner(t, st, "mallory")

	note, err := st.CreateNote(ctx, alice.ID, "mine", "")
	if err != nil {
		t.Fatal(err)
	}

	title := "stolen"
	if _, err := st.UpdateNote(ctx, note.ID, mallory.ID, &title, nil); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("cross-user update = %v, want ErrNotFound", err)
	}
}

func TestDeleteNoteScopedToOwner(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	alice := testOwner(t, st, "alice")
	mallory := testOwner(t, st, "mallory")

	note, err := st.CreateNote(ctx, alice.ID, "gone soon", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := st.DeleteNote(ctx, note.ID, mallory.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("cross-user delete = %v, want ErrNotFound", err)
	}
	if err := st.DeleteNote(ctx, note.ID, alice.ID); err != nil {
		t.Errorf("owner delete: %v", err)
	}
	if err := st.DeleteNote(ctx, note.ID, alice.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("double delete = %v, want ErrNotFound", err)
	}
}
