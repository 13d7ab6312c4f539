package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/service"
	"taskboard/internal/taskorder"
	"taskboard/internal/week"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	due  string
	desc string
}

// SetDue sets the due date (for testing).
func (c *AddCmd) SetDue(due string) { c.due = due }

// SetDesc sets the description (for testing).
func (c *AddCmd) SetDesc(desc string) { c.desc = desc }

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "taskboard add [--due <yyyy-mm-dd>] [--desc <text>] <title...>"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.desc, "desc", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	if c.due != "" {
		if _, err := time.Parse(week.DateLayout, c.due); err != nil {
			fmt.Fprintf(errOut, "error: invalid due date: %s\n", c.due)
			return exitcode.UserError
		}
	}

	// Reserve a placeholder position at the end of the ordering, then swap
	// in the backend-assigned id once the create settles.
	store := taskorder.NewStore(cfg.OrderPath())
	order := store.Load()
	tmpID := taskorder.TempID(order)
	order = append(order, tmpID)

	task, err := svc.CreateTask(ctx, service.Draft{
		Title:       title,
		Description: c.desc,
		DueDate:     c.due,
	})
	if err != nil {
		return backendExit(errOut, err)
	}

	if err := cfg.EnsureDir(); err == nil {
		store.Save(taskorder.ReplaceTempID(order, tmpID, task.ID))
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
