// Package testutil provides shared test helpers for setting up databases and accounts.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/starford/othala/internal/credential"
	"github.com/starford/othala/internal/models"
	"github.com/starford/othala/internal/store"
)

// TestStore creates a temporary SQLite database that is automatically cleaned up.
func TestStore(t *testing.T) *store.Store {
	t.Helper()
	dbFile, err := os.CreateTemp("", "othala-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	st, err := store.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// TestUser inserts a user with the given username and the password "secret99".
func TestUser(t *testing.T, st *store.Store, username string) *models.User {
	t.Helper()
	hash, err := credential.Hash("secret99")
	if err != nil {
		t.Fatal(err)
	}
	user, err := st.CreateUser(context.Background(), username, username+"@example.com", hash)
	if err != nil {
		t.Fatal(err)
	}
	return user
}
