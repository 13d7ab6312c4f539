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
	Register(&DueCmd{})
}

// DueCmd reschedules a task: a calendar date, a weekday in the current week
// (the week board's drag-to-day gesture), or "none" to unschedule.
type DueCmd struct {
	// now is the reference time for weekday resolution; overridable in tests.
	now func() time.Time
}

// SetNow overrides the reference time (for testing).
func (c *DueCmd) SetNow(now func() time.Time) { c.now = now }

func (c *DueCmd) Name() string      { return "due" }
func (c *DueCmd) Aliases() []string { return []string{"schedule"} }
func (c *DueCmd) Synopsis() string  { return "Set a task's due date" }
func (c *DueCmd) Usage() string     { return "taskboard due <n> <yyyy-mm-dd|mon..sun|none>" }
func (c *DueCmd) NeedsAuth() bool   { return true }

func (c *DueCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DueCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	num, err := parseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: due date required")
		return exitcode.UserError
	}

	now := time.Now
	if c.now != nil {
		now = c.now
	}
	due, err := resolveDue(args[1], now())
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
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

	_, err = svc.UpdateTask(ctx, task.ID, service.Update{
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		DueDate:     due,
	})
	if err != nil {
		return backendExit(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// resolveDue turns a due argument into a wire date: "none", a weekday name
// within the current week, or a literal date.
func resolveDue(arg string, now time.Time) (string, error) {
	if arg == "none" {
		return "", nil
	}
	if day := week.DayByName(arg, now); !day.IsZero() {
		return day.Format(week.DateLayout), nil
	}
	if _, err := time.Parse(week.DateLayout, arg); err != nil {
		return "", fmt.Errorf("invalid due date: %s", arg)
	}
	return arg, nil
}
