package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskboard/internal/authstore"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/service"
)

func init() {
	Register(&WhoamiCmd{})
}

// WhoamiCmd prints the stored identity and, when the access token is a JWT,
// its subject and expiry. Claims are decoded without verification; the
// client never holds the signing key and only uses them for display.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string      { return "whoami" }
func (c *WhoamiCmd) Aliases() []string { return nil }
func (c *WhoamiCmd) Synopsis() string  { return "Show the current session" }
func (c *WhoamiCmd) Usage() string     { return "taskboard whoami" }
func (c *WhoamiCmd) NeedsAuth() bool   { return false }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	store := authstore.New(cfg.TokenPath(), cfg.ProfilePath())

	if store.Refresh() == "" {
		fmt.Fprintln(out, "not logged in")
		return exitcode.Success
	}

	if email := store.Email(); email != "" {
		fmt.Fprintf(out, "logged in as %s\n", email)
	} else {
		fmt.Fprintln(out, "logged in")
	}

	access := store.Access()
	if access == "" {
		return exitcode.Success
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return exitcode.Success
	}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		fmt.Fprintf(out, "subject: %s\n", sub)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		fmt.Fprintf(out, "access token expires: %s\n", exp.Time.UTC().Format(time.RFC3339))
	}
	return exitcode.Success
}
