// Package session maps opaque client-held tokens to authenticated user ids.
// The mapping lives in the database; the token is the only state a client
// carries.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/starford/othala/internal/apperr"
	"github.com/starford/othala/internal/models"
	"github.com/starford/othala/internal/store"
)

// Manager creates, resolves, and terminates sessions with a fixed TTL.
type Manager struct {
	store store.Repository
	ttl   time.Duration
}

// NewManager creates a session manager. ttl is the absolute lifetime of a
// session from the moment it is established; there is no rotation.
func NewManager(st store.Repository, ttl time.Duration) *Manager {
	return &Manager{store: st, ttl: ttl}
}

// Establish creates a new session for userID and returns it. The token is a
// fresh random UUID; guessing one is infeasible.
func (m *Manager) Establish(ctx context.Context, userID int64) (*models.Session, error) {
	now := time.Now().UTC()
	sess := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.CreateSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Resolve returns the user id behind token. Empty, unknown, and expired
// tokens all report apperr.ErrUnauthenticated.
func (m *Manager) Resolve(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, apperr.ErrUnauthenticated
	}
	userID, err := m.store.SessionUserID(ctx, token)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return 0, apperr.ErrUnauthenticated
		}
		return 0, err
	}
	return userID, nil
}

// Terminate clears the session behind token. Unknown tokens are a no-op.
func (m *Manager) Terminate(ctx context.Context, token string) error {
	return m.store.DeleteSession(ctx, token)
}

// SweepExpired deletes expired sessions and returns the number removed.
func (m *Manager) SweepExpired(ctx context.Context) (int64, error) {
	return m.store.DeleteExpiredSessions(ctx)
}
