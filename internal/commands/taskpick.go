package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"taskboard/internal/config"
	"taskboard/internal/service"
	"taskboard/internal/taskorder"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// parseTaskRef parses a 1-based task number from args.
func parseTaskRef(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}
	num, err := strconv.Atoi(args[0])
	if err != nil || num < 1 {
		return 0, fmt.Errorf("invalid task reference: %s", args[0])
	}
	return num, nil
}

// loadOrdered fetches all tasks, reconciles the persisted order against them
// and returns the tasks in presentation order. The reconciled order is
// written back so later invocations agree with what was shown.
func loadOrdered(ctx context.Context, cfg *config.Config, svc service.Service) ([]service.Task, []int64, error) {
	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return nil, nil, err
	}

	store := taskorder.NewStore(cfg.OrderPath())
	order := taskorder.Reconcile(store.Load(), tasks)
	if err := cfg.EnsureDir(); err == nil {
		// Persist best effort; a read-only config dir only loses ordering.
		store.Save(order)
	}
	return taskorder.Apply(order, tasks), order, nil
}

// openTasks filters tasks to the open ones, preserving order.
func openTasks(tasks []service.Task) []service.Task {
	var open []service.Task
	for _, t := range tasks {
		if !t.Completed {
			open = append(open, t)
		}
	}
	return open
}

// doneTasks filters tasks to the completed ones, preserving order.
func doneTasks(tasks []service.Task) []service.Task {
	var done []service.Task
	for _, t := range tasks {
		if t.Completed {
			done = append(done, t)
		}
	}
	return done
}

// pickTask resolves a 1-based reference against a listing.
func pickTask(tasks []service.Task, num int) (service.Task, error) {
	if num < 1 || num > len(tasks) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return tasks[num-1], nil
}
