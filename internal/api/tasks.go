package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListTasks returns all tasks for the authenticated user.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/tasks/", nil, &tasks, false); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task and returns the backend's copy, including the
// assigned id.
func (c *Client) CreateTask(ctx context.Context, params CreateTaskParams) (Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPost, "/tasks/", params, &task, false); err != nil {
		return Task{}, err
	}
	return task, nil
}

// UpdateTask replaces a task's mutable fields and returns the updated copy.
func (c *Client) UpdateTask(ctx context.Context, id int64, params UpdateTaskParams) (Task, error) {
	var task Task
	path := fmt.Sprintf("/tasks/%d/", id)
	if err := c.do(ctx, http.MethodPut, path, params, &task, false); err != nil {
		return Task{}, err
	}
	return task, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d/", id), nil, nil, false)
}
