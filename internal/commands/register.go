package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/service"
)

func init() {
	Register(&RegisterCmd{})
}

// RegisterCmd creates an account and logs in with it. Registration alone
// does not authenticate; the follow-up login is automatic.
type RegisterCmd struct {
	password  string
	password2 string

	// stdin is the password fallback source; overridable in tests.
	stdin io.Reader
}

// SetPasswords sets both password fields (for testing).
func (c *RegisterCmd) SetPasswords(password, password2 string) {
	c.password = password
	c.password2 = password2
}

// SetStdin overrides the password input source (for testing).
func (c *RegisterCmd) SetStdin(r io.Reader) { c.stdin = r }

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return []string{"signup"} }
func (c *RegisterCmd) Synopsis() string  { return "Create an account" }
func (c *RegisterCmd) Usage() string {
	return "taskboard register [--password <password>] <email> <username>"
}
func (c *RegisterCmd) NeedsAuth() bool { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

func (c *RegisterCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: email and username required")
		return exitcode.UserError
	}
	email := strings.TrimSpace(args[0])
	username := strings.TrimSpace(args[1])
	if email == "" || username == "" {
		fmt.Fprintln(errOut, "error: email and username required")
		return exitcode.UserError
	}

	password, password2, ok := c.readPasswords(errOut)
	if !ok {
		fmt.Fprintln(errOut, "error: password required")
		return exitcode.UserError
	}
	if password != password2 {
		fmt.Fprintln(errOut, "error: passwords do not match")
		return exitcode.UserError
	}

	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}

	sess := newSession(cfg, errOut)
	if !sess.Register(ctx, email, username, password, password2) {
		fmt.Fprintln(errOut, "error: registration failed")
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// readPasswords returns the password pair from flags or, interactively, by
// prompting twice.
func (c *RegisterCmd) readPasswords(errOut io.Writer) (string, string, bool) {
	if c.password != "" {
		p2 := c.password2
		if p2 == "" {
			p2 = c.password
		}
		return c.password, p2, true
	}

	in := c.stdin
	if in == nil {
		in = os.Stdin
	}
	reader := bufio.NewReader(in)

	fmt.Fprint(errOut, "password: ")
	first, _ := reader.ReadString('\n')
	fmt.Fprint(errOut, "repeat password: ")
	second, _ := reader.ReadString('\n')

	password := strings.TrimRight(first, "\r\n")
	password2 := strings.TrimRight(second, "\r\n")
	if password == "" {
		return "", "", false
	}
	return password, password2, true
}
