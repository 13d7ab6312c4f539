package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/output"
	"taskboard/internal/service"
	"taskboard/internal/week"
)

func init() {
	Register(&WeekCmd{})
}

// WeekCmd renders the weekly board: tasks bucketed by due date over a
// Monday-anchored week, plus unscheduled tasks.
type WeekCmd struct {
	date string

	// now is the reference time; overridable in tests.
	now func() time.Time
}

// SetDate sets the anchor date (for testing).
func (c *WeekCmd) SetDate(date string) { c.date = date }

// SetNow overrides the reference time (for testing).
func (c *WeekCmd) SetNow(now func() time.Time) { c.now = now }

func (c *WeekCmd) Name() string      { return "week" }
func (c *WeekCmd) Aliases() []string { return []string{"board"} }
func (c *WeekCmd) Synopsis() string  { return "Show the weekly board" }
func (c *WeekCmd) Usage() string     { return "taskboard week [--date <yyyy-mm-dd>]" }
func (c *WeekCmd) NeedsAuth() bool   { return true }

func (c *WeekCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.date, "date", "", "")
}

func (c *WeekCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	now := time.Now
	if c.now != nil {
		now = c.now
	}

	anchor := now()
	if c.date != "" {
		parsed, err := time.ParseInLocation(week.DateLayout, c.date, anchor.Location())
		if err != nil {
			fmt.Fprintf(errOut, "error: invalid date: %s\n", c.date)
			return exitcode.UserError
		}
		anchor = parsed
	}

	ordered, _, err := loadOrdered(ctx, cfg, svc)
	if err != nil {
		return backendExit(errOut, err)
	}

	board := week.Build(ordered, anchor)
	output.FormatBoard(out, board, now().Format(week.DateLayout))
	return exitcode.Success
}
