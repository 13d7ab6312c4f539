package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/service"
	"taskboard/internal/taskorder"
)

func init() {
	Register(&MoveCmd{})
}

// MoveCmd reorders a task within the local presentation order. This is the
// list view's drag-and-drop, without the dragging: the backend is never
// contacted for the reorder itself.
type MoveCmd struct{}

func (c *MoveCmd) Name() string      { return "move" }
func (c *MoveCmd) Aliases() []string { return nil }
func (c *MoveCmd) Synopsis() string  { return "Reorder a task" }
func (c *MoveCmd) Usage() string     { return "taskboard move <n> <position>" }
func (c *MoveCmd) NeedsAuth() bool   { return true }

func (c *MoveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MoveCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: task reference and position required")
		return exitcode.UserError
	}

	num, err := parseTaskRef(args[:1])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	pos, err := strconv.Atoi(args[1])
	if err != nil || pos < 1 {
		fmt.Fprintf(errOut, "error: invalid position: %s\n", args[1])
		return exitcode.UserError
	}

	ordered, order, err := loadOrdered(ctx, cfg, svc)
	if err != nil {
		return backendExit(errOut, err)
	}

	open := openTasks(ordered)
	task, err := pickTask(open, num)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	target, err := pickTask(open, min(pos, len(open)))
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// Positions are given against the open-task listing, but the persisted
	// order covers every task, so translate both into order indexes.
	from := slices.Index(order, task.ID)
	to := slices.Index(order, target.ID)
	if from == -1 || to == -1 {
		fmt.Fprintln(errOut, "error: task order out of sync, run: taskboard list")
		return exitcode.UserError
	}

	store := taskorder.NewStore(cfg.OrderPath())
	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if err := store.Save(taskorder.Move(order, from, to)); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
