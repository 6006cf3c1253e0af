package store

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using a local SQLite database.
type SQLiteStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// New opens (or creates) a SQLite database at dbPath, enables WAL mode and
// foreign-key enforcement, and brings the schema up to date. The returned
// store owns the handle for the life of the process; callers release it with
// Close.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Enable foreign keys so user deletion cascades to tasks.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{
		db:     db,
		logger: slog.Default().With("component", "store"),
	}

	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	if err := s.ensureOwnerColumn(); err != nil {
		db.Close()
		return nil, err
	}

	s.logger.Info("store initialized", "path", dbPath)
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	// Check if schema_version table exists.
	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
		s.logger.Info("applied migration", "version", m.version)
	}

	return nil
}

// ensureOwnerColumn adds the user_id column to a tasks table created under a
// schema that predates ownership. It runs on every open; once the column is
// present the "duplicate column name" failure is the expected steady state
// and is ignored. Any other failure aborts initialization.
func (s *SQLiteStore) ensureOwnerColumn() error {
	_, err := s.db.Exec("ALTER TABLE tasks ADD COLUMN user_id INTEGER")
	switch {
	case err == nil:
		s.logger.Info("added owner column to tasks")
	case strings.Contains(err.Error(), "duplicate column name"):
		s.logger.Debug("owner column already present")
	default:
		return fmt.Errorf("adding owner column to tasks: %w", err)
	}

	// The index can only exist once the column does.
	if _, err := s.db.Exec(
		"CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks(user_id)"); err != nil {
		return fmt.Errorf("indexing owner column: %w", err)
	}

	return nil
}
