// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All REST API calls go through this interface; commands never build HTTP
// requests directly.
type Service interface {
	// ListTasks returns all tasks in backend order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task and returns the backend's copy with its
	// assigned id.
	CreateTask(ctx context.Context, draft Draft) (Task, error)

	// UpdateTask replaces a task's title, description, completed flag and
	// due date, and returns the updated task.
	UpdateTask(ctx context.Context, id int64, update Update) (Task, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id int64) error
}
