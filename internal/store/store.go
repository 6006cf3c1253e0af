package store

import (
	"context"

	"github.com/nhle/todo-tracker/internal/model"
)

// Store defines the persistence interface for user accounts and their tasks.
//
// Every task operation is owner-scoped: a row that belongs to another user,
// or to no user at all, is treated exactly like a row that does not exist.
type Store interface {
	// === Accounts ===

	// Register creates an account storing a salted hash of password. It
	// reports false when the row cannot be inserted (a duplicate username
	// being the expected cause) and never surfaces insert failures as
	// errors.
	Register(ctx context.Context, username, password string) (bool, error)

	// Login verifies password against the credential hash stored for
	// username.
	Login(ctx context.Context, username, password string) (bool, error)

	// Authenticate is the legacy cleartext path: it matches username and
	// password by exact equality against the stored columns, so it only
	// finds accounts created through CreateUserUnsafe. Returns nil when no
	// row matches. Kept separate from Login on purpose.
	Authenticate(ctx context.Context, username, password string) (*model.User, error)

	// CreateUserUnsafe inserts an account with the password stored as
	// supplied, without hashing or duplicate handling. Maintenance use only.
	CreateUserUnsafe(ctx context.Context, username, password string) error

	// === Tasks ===

	// CreateTask inserts a new incomplete task for ownerID and returns the
	// created row. Pass a nil dueDate for tasks with no due date.
	CreateTask(ctx context.Context, ownerID int64, description string, dueDate *string) (*model.Task, error)

	// ListTasks returns ownerID's incomplete tasks and complete tasks as two
	// separate lists. Order within each list is not a contract.
	ListTasks(ctx context.Context, ownerID int64) (incomplete, complete []model.Task, err error)

	// MarkComplete sets the completed flag on ownerID's task. A task that
	// does not exist for that owner is silently left alone.
	MarkComplete(ctx context.Context, ownerID, taskID int64) error

	// MarkIncomplete clears the completed flag and returns the task's
	// description, or nil when ownerID has no such task.
	MarkIncomplete(ctx context.Context, ownerID, taskID int64) (*string, error)

	// DeleteTask removes ownerID's task. A task that does not exist for that
	// owner is silently left alone.
	DeleteTask(ctx context.Context, ownerID, taskID int64) error

	// Close releases the database handle. No operation may be called after.
	Close() error
}
