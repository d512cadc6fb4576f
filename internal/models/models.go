// Package models defines the domain types for Othala.
package models

import "time"

// User represents a registered account. PasswordHash is an opaque bcrypt
// digest produced by the credential package; it never appears in API
// responses (the api package owns the wire shape and has no field for it).
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Note is a user-owned note. UserID is immutable after creation; notes
// cannot change owner.
type Note struct {
	ID        int64
	UserID    int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Session maps an opaque token carried by the client to a user id. Rows
// past ExpiresAt are treated as absent and swept periodically.
type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}
