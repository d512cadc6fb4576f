// Package credential owns password hashing and verification. Digests are
// bcrypt and are never reversible; no other package touches plaintext
// passwords or inspects digests.
package credential

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by Hash when no plaintext was supplied.
var ErrEmptyPassword = errors.New("credential: password must not be empty")

// Hash derives a salted bcrypt digest from plaintext.
func Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("credential: hash: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. It never returns an
// error: any mismatch, including an absent digest, is simply false.
func Verify(plaintext, digest string) bool {
	if plaintext == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
