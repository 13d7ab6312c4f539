package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/output"
	"taskboard/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `taskboard` (no args) and `taskboard list`.
type ListCmd struct {
	all  bool
	done bool
}

// SetAll includes completed tasks (for testing).
func (c *ListCmd) SetAll(all bool) { c.all = all }

// SetDone lists only completed tasks (for testing).
func (c *ListCmd) SetDone(done bool) { c.done = done }

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "taskboard list [--all | --done]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.all, "all", false, "")
	fs.BoolVar(&c.all, "a", false, "")
	fs.BoolVar(&c.done, "done", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if c.all && c.done {
		fmt.Fprintln(errOut, "error: cannot use both --all and --done")
		return exitcode.UserError
	}

	ordered, _, err := loadOrdered(ctx, cfg, svc)
	if err != nil {
		return backendExit(errOut, err)
	}

	var shown []service.Task
	switch {
	case c.all:
		shown = ordered
	case c.done:
		shown = doneTasks(ordered)
	default:
		shown = openTasks(ordered)
	}

	if len(shown) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	for i, task := range shown {
		output.FormatTask(out, i+1, task)
	}
	return exitcode.Success
}
