// Package seed populates the database with demo users and notes for local
// development.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/starford/othala/internal/apperr"
	"github.com/starford/othala/internal/credential"
	"github.com/starford/othala/internal/models"
	"github.com/starford/othala/internal/store"
)

const demoPassword = "password123"

var demoUsers = []struct {
	username string
	email    string
}{
	{"testuser", "test@example.com"},
	{"ada", "ada@example.com"},
	{"grace", "grace@example.com"},
	{"linus", "linus@example.com"},
	{"margaret", "margaret@example.com"},
}

var noteTitles = []string{
	"Project Meeting Notes",
	"Daily Reflection",
	"Book Summary",
	"Ideas and Inspiration",
	"Travel Plans",
	"Recipe Collection",
	"Workout Log",
	"Learning Notes",
	"Personal Goals",
	"Shopping List",
}

var noteContents = []string{
	"This is a detailed note about my thoughts and observations.",
	"Today I learned something new and wanted to document it here.",
	"Important points to remember for future reference.",
	"A collection of ideas that came to mind during my walk.",
	"Meeting notes from today's discussion with the team.",
	"Personal reflections on recent experiences and growth.",
	"Research findings and key insights from my reading.",
	"Creative thoughts and potential project ideas.",
	"Daily planning and priority setting for productivity.",
	"Observations and lessons learned from recent events.",
}

// Run inserts the demo users and a handful of notes for each. Users that
// already exist are skipped, so running it twice is harmless.
func Run(ctx context.Context, st *store.Store) error {
	hash, err := credential.Hash(demoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	var created int
	for _, du := range demoUsers {
		user, err := st.CreateUser(ctx, du.username, du.email, hash)
		if err != nil {
			if apperr.IsConflict(err) {
				slog.Info("user already exists, skipping", slog.String("username", du.username))
				continue
			}
			return fmt.Errorf("create user %s: %w", du.username, err)
		}

		n, err := seedNotes(ctx, st, user)
		if err != nil {
			return err
		}
		created += n
		slog.Info("seeded user", slog.String("username", user.Username), slog.Int("notes", n))
	}

	slog.Info("seeding complete",
		slog.Int("notes_created", created),
		slog.String("test_username", "testuser"),
		slog.String("test_password", demoPassword))
	return nil
}

func seedNotes(ctx context.Context, st *store.Store, user *models.User) (int, error) {
	count := 5 + rand.Intn(6)
	for i := 0; i < count; i++ {
		title := fmt.Sprintf("%s #%d", noteTitles[rand.Intn(len(noteTitles))], rand.Intn(100)+1)
		content := noteContents[rand.Intn(len(noteContents))]
		if _, err := st.CreateNote(ctx, user.ID, title, content); err != nil {
			return i, fmt.Errorf("create note for %s: %w", user.Username, err)
		}
	}
	return count, nil
}
