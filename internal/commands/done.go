package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/service"
)

func init() {
	Register(&DoneCmd{})
	Register(&UndoneCmd{})
}

// DoneCmd marks an open task completed. References index the open-task
// listing (`taskboard list`).
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "taskboard done <n>" }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return setCompleted(ctx, cfg, svc, args, true, out, errOut)
}

// UndoneCmd reopens a completed task. References index the completed-task
// listing (`taskboard list --done`).
type UndoneCmd struct{}

func (c *UndoneCmd) Name() string      { return "undone" }
func (c *UndoneCmd) Aliases() []string { return []string{"reopen"} }
func (c *UndoneCmd) Synopsis() string  { return "Reopen a completed task" }
func (c *UndoneCmd) Usage() string     { return "taskboard undone <n>" }
func (c *UndoneCmd) NeedsAuth() bool   { return true }

func (c *UndoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UndoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return setCompleted(ctx, cfg, svc, args, false, out, errOut)
}

// setCompleted is the shared implementation for done and undone. The update
// is a full replace: the backend contract has no partial patch.
func setCompleted(ctx context.Context, cfg *config.Config, svc service.Service, args []string, completed bool, out, errOut io.Writer) int {
	num, err := parseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	ordered, _, err := loadOrdered(ctx, cfg, svc)
	if err != nil {
		return backendExit(errOut, err)
	}

	listing := openTasks(ordered)
	if !completed {
		listing = doneTasks(ordered)
	}

	task, err := pickTask(listing, num)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	_, err = svc.UpdateTask(ctx, task.ID, service.Update{
		Title:       task.Title,
		Description: task.Description,
		Completed:   completed,
		DueDate:     task.DueDate,
	})
	if err != nil {
		return backendExit(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
