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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskboard help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskboard                                        List open tasks
  taskboard list [common flags] [--all | --done]
  taskboard add [common flags] [--due <yyyy-mm-dd>] [--desc <text>] <title...>
  taskboard edit [common flags] [--title <text>] [--desc <text>] [--due <yyyy-mm-dd>|none] <n>
  taskboard done [common flags] <n>
  taskboard undone [common flags] <n>
  taskboard rm [common flags] [--undo <duration>] <n>
  taskboard move [common flags] <n> <position>
  taskboard due [common flags] <n> <yyyy-mm-dd|mon..sun|none>
  taskboard week [common flags] [--date <yyyy-mm-dd>]
  taskboard stats [common flags]
  taskboard login [common flags] [--password <password>] <email-or-username>
  taskboard register [common flags] [--password <password>] <email> <username>
  taskboard logout [common flags]
  taskboard whoami [common flags]
  taskboard help
  taskboard version

Task references (<n>) are 1-based positions in the open-task listing;
for undone they refer to the completed-task listing (list --done).

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Environment:
  TASKBOARD_API_URL   Backend base URL (default http://127.0.0.1:8000)
  TASKBOARD_TIMEOUT   Per-request timeout (default 10s)
`
