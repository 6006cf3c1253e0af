package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nhle/todo-tracker/internal/credential"
	"github.com/nhle/todo-tracker/internal/model"
)

// Register creates a new account, storing a salted hash of password.
//
// Any insert failure reports false: a duplicate username is the expected
// cause, and the contract does not distinguish it from other insert failures.
// The store does not validate that username or password are non-empty; that
// is the caller's responsibility.
func (s *SQLiteStore) Register(ctx context.Context, username, password string) (bool, error) {
	hash, err := credential.Hash(password)
	if err != nil {
		return false, err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users (username, password) VALUES (?, ?)",
		username, hash,
	)
	if err != nil {
		s.logger.Debug("register insert failed", "username", username, "error", err)
		return false, nil
	}

	return true, nil
}

// Login verifies password against the credential hash stored for username.
// Unknown usernames and wrong passwords both report false; the unknown case
// still pays for one hash comparison so its timing matches the known case.
func (s *SQLiteStore) Login(ctx context.Context, username, password string) (bool, error) {
	var stored string
	err := s.db.GetContext(ctx, &stored,
		"SELECT password FROM users WHERE username = ?", username)
	if errors.Is(err, sql.ErrNoRows) {
		credential.VerifyDummy(password)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("looking up user %q: %w", username, err)
	}

	return credential.Verify(stored, password), nil
}

// Authenticate matches username and password by exact equality against the
// stored columns, without hashing. It only finds accounts whose password was
// stored as supplied, i.e. those created through CreateUserUnsafe. Returns
// nil when no row matches.
func (s *SQLiteStore) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	var u model.User
	err := s.db.GetContext(ctx, &u,
		"SELECT id, username, password FROM users WHERE username = ? AND password = ?",
		username, password,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("authenticating user %q: %w", username, err)
	}

	return &u, nil
}

// CreateUserUnsafe inserts an account with the password stored exactly as
// supplied. A duplicate username propagates as an error, unlike Register.
func (s *SQLiteStore) CreateUserUnsafe(ctx context.Context, username, password string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, password) VALUES (?, ?)",
		username, password,
	)
	if err != nil {
		return fmt.Errorf("creating user %q: %w", username, err)
	}
	return nil
}
