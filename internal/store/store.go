// Package store provides SQLite-backed persistence for users, notes, and
// sessions. Uniqueness and referential integrity live in the schema: deleting
// a user cascades to their notes and sessions, so no orphan rows can exist.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/starford/othala/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_notes_owner_updated ON notes(user_id, updated_at DESC, id DESC);

CREATE TABLE IF NOT EXISTS sessions (
	token      TEXT PRIMARY KEY,
	user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at DATETIME NOT NULL,
	expires_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at);
`

// Store wraps a sql.DB with repository operations.
type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
// foreign_keys=on is required for the cascade deletes to fire.
func Open(dsn string) (*Store, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// uniqueField maps a SQLite unique-constraint violation to the offending
// users column ("username" or "email"). ok is false for any other error.
func uniqueField(err error) (field string, ok bool) {
	var serr sqlite3.Error
	if !errors.As(err, &serr) || serr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return "", false
	}
	msg := serr.Error()
	switch {
	case strings.Contains(msg, "users.username"):
		return "username", true
	case strings.Contains(msg, "users.email"):
		return "email", true
	}
	return "", true
}

// Repository is the persistence interface consumed by the service layers.
// Consumers should depend on this rather than the concrete *Store to
// facilitate testing with mocks.
type Repository interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	UserByID(ctx context.Context, id int64) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateNote(ctx context.Context, userID int64, title, content string) (*models.Note, error)
	NoteByID(ctx context.Context, id, userID int64) (*models.Note, error)
	ListNotes(ctx context.Context, userID int64, limit, offset int) ([]models.Note, int, error)
	UpdateNote(ctx context.Context, id, userID int64, title, content *string) (*models.Note, error)
	DeleteNote(ctx context.Context, id, userID int64) error

	CreateSession(ctx context.Context, sess *models.Session) error
	SessionUserID(ctx context.Context, token string) (int64, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	Close() error
}

// Verify *Store satisfies Repository at compile time.
var _ Repository = (*Store)(nil)
