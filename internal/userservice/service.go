// Package userservice owns user identity: registration, credential checks,
// and lookups. It is the only caller of the credential package.
package userservice

import (
	"context"
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/othala/internal/apperr"
	"github.com/starford/othala/internal/credential"
	"github.com/starford/othala/internal/models"
	"github.com/starford/othala/internal/store"
)

const minUsernameLen = 3

var emailShape = regexp.MustCompile(`@`)

// Service provides user directory operations backed by a store.
type Service struct {
	store store.Repository
}

// NewService creates a new user service.
func NewService(st store.Repository) *Service {
	return &Service{store: st}
}

// RegisterParams carries the raw signup input.
type RegisterParams struct {
	Username string
	Email    string
	Password string
}

// Register validates the input, hashes the password, and persists the user.
// Field rules: username trimmed and at least 3 characters, email trimmed,
// lowercased, and containing '@'. A uniqueness violation surfaces as
// apperr.ConflictError naming the conflicting field.
func (s *Service) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	username := strings.TrimSpace(p.Username)
	email := strings.ToLower(strings.TrimSpace(p.Email))

	if err := validation.Validate(username,
		validation.Required.Error("Username must be at least 3 characters long"),
		validation.RuneLength(minUsernameLen, 0).Error("Username must be at least 3 characters long"),
	); err != nil {
		return nil, apperr.NewValidation(err.Error())
	}
	if err := validation.Validate(email,
		validation.Required.Error("Please provide a valid email address"),
		validation.Match(emailShape).Error("Please provide a valid email address"),
	); err != nil {
		return nil, apperr.NewValidation(err.Error())
	}

	hash, err := credential.Hash(p.Password)
	if err != nil {
		if errors.Is(err, credential.ErrEmptyPassword) {
			return nil, apperr.NewValidation("Password is required")
		}
		return nil, err
	}

	return s.store.CreateUser(ctx, username, email, hash)
}

// Authenticate resolves a username/password pair to a user. Unknown
// usernames and wrong passwords are indistinguishable: both return
// apperr.ErrUnauthenticated.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrUnauthenticated
		}
		return nil, err
	}
	if !credential.Verify(password, user.PasswordHash) {
		return nil, apperr.ErrUnauthenticated
	}
	return user, nil
}

// UserByID looks up a user by id.
func (s *Service) UserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.store.UserByID(ctx, id)
}
