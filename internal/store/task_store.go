package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nhle/todo-tracker/internal/model"
)

// CreateTask inserts a new incomplete task for ownerID and returns the
// created row, identified by the engine-assigned id.
func (s *SQLiteStore) CreateTask(ctx context.Context, ownerID int64, description string, dueDate *string) (*model.Task, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO tasks (user_id, task, due_date, completed) VALUES (?, ?, ?, 0)",
		ownerID, description, dueDate,
	)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new task id: %w", err)
	}

	return &model.Task{
		ID:          id,
		OwnerID:     &ownerID,
		Description: description,
		DueDate:     dueDate,
	}, nil
}

// ListTasks returns ownerID's incomplete tasks followed by the complete
// ones. Rows with no owner never match. Order within each list is whatever
// the engine returns; callers must not rely on it.
func (s *SQLiteStore) ListTasks(ctx context.Context, ownerID int64) (incomplete, complete []model.Task, err error) {
	incomplete, err = s.tasksByState(ctx, ownerID, 0)
	if err != nil {
		return nil, nil, err
	}
	complete, err = s.tasksByState(ctx, ownerID, 1)
	if err != nil {
		return nil, nil, err
	}
	return incomplete, complete, nil
}

// tasksByState retrieves ownerID's tasks with the given completed value.
func (s *SQLiteStore) tasksByState(ctx context.Context, ownerID int64, completed int) ([]model.Task, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, user_id, task, due_date, completed FROM tasks WHERE completed = ? AND user_id = ?",
		completed, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// MarkComplete sets the completed flag on ownerID's task. A task that does
// not exist for that owner, including one owned by somebody else, is
// silently left alone.
func (s *SQLiteStore) MarkComplete(ctx context.Context, ownerID, taskID int64) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET completed = 1 WHERE id = ? AND user_id = ?",
		taskID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("marking task %d complete: %w", taskID, err)
	}
	return nil
}

// MarkIncomplete clears the completed flag on ownerID's task and returns the
// task's description, or nil when no such task exists for that owner.
func (s *SQLiteStore) MarkIncomplete(ctx context.Context, ownerID, taskID int64) (*string, error) {
	_, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET completed = 0 WHERE id = ? AND user_id = ?",
		taskID, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("marking task %d incomplete: %w", taskID, err)
	}

	var description string
	err = s.db.GetContext(ctx, &description,
		"SELECT task FROM tasks WHERE id = ? AND user_id = ?",
		taskID, ownerID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading task %d: %w", taskID, err)
	}

	return &description, nil
}

// DeleteTask removes ownerID's task. A task that does not exist for that
// owner is silently left alone, and deleting it twice is a no-op.
func (s *SQLiteStore) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = ? AND user_id = ?",
		taskID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("deleting task %d: %w", taskID, err)
	}
	return nil
}

// scanTask scans a task row from a sqlx.Rows result set.
func scanTask(rows *sqlx.Rows) (model.Task, error) {
	var (
		task      model.Task
		completed int
	)

	err := rows.Scan(
		&task.ID, &task.OwnerID, &task.Description, &task.DueDate, &completed,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("scanning task row: %w", err)
	}

	task.Completed = completed != 0
	return task, nil
}
