// Package restapi implements the service.Service interface over the task
// backend's REST API, using the session's authenticated client.
package restapi

import (
	"context"

	"taskboard/internal/api"
	"taskboard/internal/service"
)

// Client implements service.Service using the authenticated API client.
type Client struct {
	api *api.Client
}

// New creates a backend bound to an API client.
func New(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

// ListTasks returns all tasks in backend order.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	tasks, err := c.api.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, fromWire(t))
	}
	return result, nil
}

// CreateTask creates a task.
func (c *Client) CreateTask(ctx context.Context, draft service.Draft) (service.Task, error) {
	task, err := c.api.CreateTask(ctx, api.CreateTaskParams{
		Title:       draft.Title,
		Description: draft.Description,
		DueDate:     toWireDate(draft.DueDate),
	})
	if err != nil {
		return service.Task{}, err
	}
	return fromWire(task), nil
}

// UpdateTask replaces a task's mutable fields.
func (c *Client) UpdateTask(ctx context.Context, id int64, update service.Update) (service.Task, error) {
	task, err := c.api.UpdateTask(ctx, id, api.UpdateTaskParams{
		Title:       update.Title,
		Description: update.Description,
		Completed:   update.Completed,
		DueDate:     toWireDate(update.DueDate),
	})
	if err != nil {
		return service.Task{}, err
	}
	return fromWire(task), nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.api.DeleteTask(ctx, id)
}

func fromWire(t api.Task) service.Task {
	due := ""
	if t.DueDate != nil {
		due = *t.DueDate
	}
	return service.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		DueDate:     due,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// toWireDate maps "" to an explicit null; the backend treats null as
// "no due date".
func toWireDate(due string) *string {
	if due == "" {
		return nil
	}
	return &due
}
