package model

// Task is a dated to-do item belonging to one user.
type Task struct {
	ID int64 `json:"id" db:"id"`

	// OwnerID is nil for rows created before ownership was introduced.
	// Such rows are invisible to every owner-scoped query.
	OwnerID *int64 `json:"user_id,omitempty" db:"user_id"`

	Description string `json:"task" db:"task"`

	// DueDate is formatted text with no timezone semantics, or nil when the
	// task has no due date.
	DueDate *string `json:"due_date,omitempty" db:"due_date"`

	Completed bool `json:"completed" db:"completed"`
}
