package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"taskboard/internal/authstore"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/service"
	"taskboard/internal/session"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	password string

	// stdin is the password fallback source; overridable in tests.
	stdin io.Reader
}

// SetPassword sets the password (for testing).
func (c *LoginCmd) SetPassword(password string) { c.password = password }

// SetStdin overrides the password input source (for testing).
func (c *LoginCmd) SetStdin(r io.Reader) { c.stdin = r }

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Authenticate with the backend" }
func (c *LoginCmd) Usage() string {
	return "taskboard login [--password <password>] <email-or-username>"
}
func (c *LoginCmd) NeedsAuth() bool { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: email or username required")
		return exitcode.UserError
	}
	identifier := strings.TrimSpace(args[0])
	if identifier == "" {
		fmt.Fprintln(errOut, "error: email or username required")
		return exitcode.UserError
	}

	password, ok := c.readPassword(errOut)
	if !ok {
		fmt.Fprintln(errOut, "error: password required")
		return exitcode.UserError
	}

	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}

	sess := newSession(cfg, errOut)
	if !sess.Login(ctx, identifier, password) {
		// Wrong credentials and transport failures collapse to one message.
		fmt.Fprintln(errOut, "error: login failed")
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// readPassword returns the password from the flag or, interactively, from
// the input source.
func (c *LoginCmd) readPassword(errOut io.Writer) (string, bool) {
	if c.password != "" {
		return c.password, true
	}

	in := c.stdin
	if in == nil {
		in = os.Stdin
	}
	fmt.Fprint(errOut, "password: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	password := strings.TrimRight(line, "\r\n")
	if err != nil && password == "" {
		return "", false
	}
	return password, password != ""
}

// newSession builds a session owner from config, wiring the token store and
// debug logger.
func newSession(cfg *config.Config, errOut io.Writer) *session.Session {
	store := authstore.New(cfg.TokenPath(), cfg.ProfilePath())
	return session.New(cfg, store, cfg.Logger(errOut))
}
