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
)

func init() {
	Register(&RmCmd{})
}

// RmCmd deletes a task. With --undo the delete is finalized against the
// backend only after the grace window elapses; interrupting the command
// within the window keeps the task.
type RmCmd struct {
	undo time.Duration
}

// SetUndo sets the undo grace window (for testing).
func (c *RmCmd) SetUndo(d time.Duration) { c.undo = d }

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "taskboard rm [--undo <duration>] <n>" }
func (c *RmCmd) NeedsAuth() bool   { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.DurationVar(&c.undo, "undo", 0, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	num, err := parseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if c.undo < 0 {
		fmt.Fprintf(errOut, "error: invalid undo duration: %s\n", c.undo)
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

	if c.undo > 0 {
		if !cfg.Quiet {
			fmt.Fprintf(out, "deleting %q in %s (interrupt to undo)\n", task.Title, c.undo)
		}
		select {
		case <-time.After(c.undo):
		case <-ctx.Done():
			if !cfg.Quiet {
				fmt.Fprintln(out, "kept")
			}
			return exitcode.Success
		}
	}

	if err := svc.DeleteTask(ctx, task.ID); err != nil {
		return backendExit(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
