// Package main is the entry point for the taskboard CLI.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"taskboard/internal/authstore"
	"taskboard/internal/backend/restapi"
	"taskboard/internal/cli"
	"taskboard/internal/commands"
	"taskboard/internal/config"
	"taskboard/internal/service"
	"taskboard/internal/session"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// The factory bootstraps a session from the persisted refresh token and
	// hands out a service backed by its authenticated client.
	factory := func(ctx context.Context, cfg *config.Config, errOut io.Writer) (service.Service, error) {
		store := authstore.New(cfg.TokenPath(), cfg.ProfilePath())
		sess := session.New(cfg, store, cfg.Logger(errOut))
		sess.Bootstrap(ctx)
		if !sess.IsAuthenticated() {
			return nil, cli.ErrNotAuthenticated
		}
		return restapi.New(sess.Client()), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
