package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/service"
	"taskboard/internal/week"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd edits a task's title, description or due date. Unset flags leave
// fields untouched; the change is still sent as a full replace because the
// backend contract has no partial update.
type EditCmd struct {
	title string
	desc  string
	due   string

	titleSet bool
	descSet  bool
	dueSet   bool
}

// SetTitle sets the new title (for testing).
func (c *EditCmd) SetTitle(title string) { c.title, c.titleSet = title, true }

// SetDesc sets the new description (for testing).
func (c *EditCmd) SetDesc(desc string) { c.desc, c.descSet = desc, true }

// SetDueDate sets the new due date (for testing).
func (c *EditCmd) SetDueDate(due string) { c.due, c.dueSet = due, true }

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task" }
func (c *EditCmd) Usage() string {
	return "taskboard edit [--title <text>] [--desc <text>] [--due <yyyy-mm-dd>|none] <n>"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.Func("title", "", func(v string) error { c.SetTitle(v); return nil })
	fs.Func("desc", "", func(v string) error { c.SetDesc(v); return nil })
	fs.Func("due", "", func(v string) error { c.SetDueDate(v); return nil })
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	num, err := parseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !c.titleSet && !c.descSet && !c.dueSet {
		fmt.Fprintln(errOut, "error: nothing to change")
		return exitcode.UserError
	}

	ordered, _, err := loadOrdered(ctx, cfg, svc)
	if err != nil {
		return backendExit(errOut, err)
	}

	task, err := pickTask(openTasks(ordered), num)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	update := service.Update{
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		DueDate:     task.DueDate,
	}
	if c.titleSet {
		update.Title = c.title
	}
	if c.descSet {
		update.Description = c.desc
	}
	if c.dueSet {
		due, err := parseDueArg(c.due)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		update.DueDate = due
	}

	if update.Title == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	if _, err := svc.UpdateTask(ctx, task.ID, update); err != nil {
		return backendExit(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// parseDueArg validates a due-date argument: a calendar date or "none".
func parseDueArg(arg string) (string, error) {
	if arg == "none" {
		return "", nil
	}
	if _, err := time.Parse(week.DateLayout, arg); err != nil {
		return "", fmt.Errorf("invalid due date: %s", arg)
	}
	return arg, nil
}
