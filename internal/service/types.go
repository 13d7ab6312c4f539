// Package service defines the backend-agnostic interface for task operations.
package service

// Task represents a single task item.
type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	DueDate     string // "YYYY-MM-DD", or "" when unscheduled
	CreatedAt   string // backend timestamp, RFC 3339
	UpdatedAt   string
}

// Draft is the payload for creating a task.
type Draft struct {
	Title       string
	Description string
	DueDate     string
}

// Update is the payload for a full task update.
type Update struct {
	Title       string
	Description string
	Completed   bool
	DueDate     string
}
