package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/othala/internal/apperr"
	"github.com/starford/othala/internal/models"
)

const maxTitleLen = 200

// validTitle trims and validates a note title. Violations surface as
// apperr.ValidationError, which the API layer maps to 422.
func validTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	err := validation.Validate(t,
		validation.Required.Error("Note title is required"),
		validation.RuneLength(0, maxTitleLen).Error("Note title must be less than 200 characters"),
	)
	if err != nil {
		return "", apperr.NewValidation(err.Error())
	}
	return t, nil
}

// CreateNote inserts a note owned by userID.
func (s *Store) CreateNote(ctx context.Context, userID int64, title, content string) (*models.Note, error) {
	t, err := validTitle(title)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	res, err := s.conn.ExecContext(ctx, `
		INSERT INTO notes (user_id, title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, userID, t, content, now, now)
	if err != nil {
		return nil, fmt.Errorf("store: create note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("store: create note id: %w", err)
	}
	return &models.Note{
		ID:        id,
		UserID:    userID,
		Title:     t,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NoteByID fetches a note by (id, owner) in a single filtered query. A note
// owned by someone else is indistinguishable from a missing one.
func (s *Store) NoteByID(ctx context.Context, id, userID int64) (*models.Note, error) {
	return scanNote(s.conn.QueryRowContext(ctx, `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes WHERE id = ? AND user_id = ?
	`, id, userID))
}

// ListNotes returns one page of the owner's notes ordered by updated_at
// descending (ties broken by id descending) plus the total count.
func (s *Store) ListNotes(ctx context.Context, userID int64, limit, offset int) ([]models.Note, int, error) {
	var total int
	err := s.conn.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM notes WHERE user_id = ?
	`, userID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("store: count notes: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes
		WHERE user_id = ?
		ORDER BY updated_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("store: list notes: %w", err)
	}
	defer rows.Close()

	out := []models.Note{}
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("store: scan note: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("store: iterate notes: %w", err)
	}
	return out, total, nil
}

// UpdateNote applies a partial update inside one transaction: only non-nil
// fields change, unspecified fields keep their prior values, and updated_at
// moves strictly forward on every applied write. A validation failure rolls
// the whole write back.
func (s *Store) UpdateNote(ctx context.Context, id, userID int64, title, content *string) (*models.Note, error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	n, err := scanNote(tx.QueryRowContext(ctx, `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes WHERE id = ? AND user_id = ?
	`, id, userID))
	if err != nil {
		return nil, err
	}

	if title == nil && content == nil {
		return n, tx.Commit()
	}

	if title != nil {
		t, err := validTitle(*title)
		if err != nil {
			return nil, err
		}
		n.Title = t
	}
	if content != nil {
		n.Content = *content
	}

	now := time.Now().UTC()
	// updated_at must strictly increase even on sub-resolution clocks.
	if !now.After(n.UpdatedAt) {
		now = n.UpdatedAt.Add(time.Nanosecond)
	}
	n.UpdatedAt = now

	_, err = tx.ExecContext(ctx, `
		UPDATE notes SET title = ?, content = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`, n.Title, n.Content, n.UpdatedAt, id, userID)
	if err != nil {
		return nil, fmt.Errorf("store: update note: %w", err)
	}
	return n, tx.Commit()
}

// DeleteNote removes a note by (id, owner). Missing and not-owned both
// report apperr.ErrNotFound.
func (s *Store) DeleteNote(ctx context.Context, id, userID int64) error {
	res, err := s.conn.ExecContext(ctx, `
		DELETE FROM notes WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return fmt.Errorf("store: delete note: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete note: %w", err)
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*models.Note, error) {
	var n models.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("store: scan note: %w", err)
	}
	return &n, nil
}
