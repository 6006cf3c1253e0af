package testutil

import (
	"path/filepath"
	"testing"

	"github.com/nhle/todo-tracker/internal/store"
)

// NewTestStore creates a SQLiteStore on a file in a per-test temp directory,
// with the schema applied. It automatically closes the store when the test
// completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "todo.db"))
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}
