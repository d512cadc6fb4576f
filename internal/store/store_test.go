package store

import (
	"context"
	"os"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbFile, err := os.CreateTemp("", "othala-store-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	st, err := Open(dbFile.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpenCreatesSchema(t *testing.T) {
	st := openTestStore(t)

	// All three tables should exist and be empty.
	for _, table := range []string{"users", "notes", "sessions"} {
		var count int
		err := st.conn.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count)
		if err != nil {
			t.Errorf("query %s: %v", table, err)
		}
		if count != 0 {
			t.Errorf("%s count = %d, want 0", table, count)
		}
	}
}
