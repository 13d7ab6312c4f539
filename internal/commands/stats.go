package commands

import (
	"context"
	"flag"
	"io"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/output"
	"taskboard/internal/service"
	"taskboard/internal/stats"
)

func init() {
	Register(&StatsCmd{})
}

// StatsCmd prints the dashboard numbers.
type StatsCmd struct {
	// now is the reference time; overridable in tests.
	now func() time.Time
}

// SetNow overrides the reference time (for testing).
func (c *StatsCmd) SetNow(now func() time.Time) { c.now = now }

func (c *StatsCmd) Name() string      { return "stats" }
func (c *StatsCmd) Aliases() []string { return nil }
func (c *StatsCmd) Synopsis() string  { return "Show task statistics" }
func (c *StatsCmd) Usage() string     { return "taskboard stats" }
func (c *StatsCmd) NeedsAuth() bool   { return true }

func (c *StatsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatsCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	now := time.Now
	if c.now != nil {
		now = c.now
	}

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return backendExit(errOut, err)
	}

	output.FormatStats(out, stats.Compute(tasks, now()))
	return exitcode.Success
}
