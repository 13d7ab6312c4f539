// Package api implements the authenticated HTTP client for the task backend.
//
// Every request is decorated with the stored bearer access token. A 401 on a
// non-auth path triggers a coordinated token refresh and a single retry of
// the original request; concurrent 401s converge on one refresh call. When
// the refresh itself fails the stored tokens are cleared and the session
// event sink is told to log out.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"taskboard/internal/authstore"
	"taskboard/internal/config"
)

// authFreePaths never trigger the refresh-and-retry flow, even on 401.
// This keeps a rejecting refresh endpoint from looping.
var authFreePaths = []string{
	"/auth/login/",
	"/auth/register/",
	"/auth/token/refresh/",
}

// SessionEvents receives session state changes originating inside the client.
// A nil sink is valid; both callbacks are then no-ops. Callbacks are invoked
// synchronously from the refresh path.
type SessionEvents interface {
	// LoggedOut is called when the session cannot be recovered: the refresh
	// token is absent or the refresh call failed.
	LoggedOut()

	// AccessTokenUpdated is called when a refresh produced a new access token,
	// so the session owner can mirror storage in memory.
	AccessTokenUpdated(access string)
}

// Client performs authenticated requests against the task backend.
type Client struct {
	base    string
	timeout time.Duration
	http    *http.Client
	store   *authstore.Store
	events  SessionEvents
	log     *slog.Logger

	refresh singleflight.Group
}

// New creates a Client for the configured backend.
func New(cfg *config.Config, store *authstore.Store, events SessionEvents, log *slog.Logger) *Client {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Client{
		base:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		http:    &http.Client{},
		store:   store,
		events:  events,
		log:     log,
	}
}

// do performs one request/response cycle. retried marks a request that has
// already been re-issued after a refresh; such a request is never retried
// again.
func (c *Client) do(ctx context.Context, method, path string, body, out any, retried bool) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access := c.store.Access(); access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	reqID := uuid.NewString()
	c.log.Debug("request",
		slog.String("id", reqID),
		slog.String("method", method),
		slog.String("path", path),
		slog.Bool("retried", retried),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("response",
		slog.String("id", reqID),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode == http.StatusUnauthorized && !retried && !isAuthFree(path) {
		if _, ok := c.refreshAccess(ctx); ok {
			return c.do(ctx, method, path, body, out, true)
		}
		// Refresh failed; logout has already been signalled.
		return newError(resp)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// refreshAccess runs the coordinated refresh. At most one refresh call is in
// flight at any time; concurrent callers share its outcome. On success the
// new access token is persisted and broadcast. On any failure tokens are
// cleared and LoggedOut fires, once per flight.
func (c *Client) refreshAccess(ctx context.Context) (string, bool) {
	v, err, _ := c.refresh.Do("refresh", func() (any, error) {
		refresh := c.store.Refresh()
		if refresh == "" {
			c.forceLogout()
			return nil, fmt.Errorf("no refresh token")
		}

		access, err := c.Refresh(ctx, refresh)
		if err != nil {
			c.forceLogout()
			return nil, err
		}

		c.store.SetAccess(access)
		if c.events != nil {
			c.events.AccessTokenUpdated(access)
		}
		return access, nil
	})
	if err != nil {
		c.log.Debug("refresh failed", slog.String("err", err.Error()))
		return "", false
	}
	return v.(string), true
}

func (c *Client) forceLogout() {
	c.store.Clear()
	if c.events != nil {
		c.events.LoggedOut()
	}
}

// Refresh performs a bare refresh call: no bearer decoration, no retry, no
// storage side effects. The session owner uses it directly during bootstrap.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	data, err := json.Marshal(refreshRequest{Refresh: refreshToken})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/auth/token/refresh/", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("refresh: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newError(resp)
	}

	var body refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("refresh: decode response: %w", err)
	}
	if body.Access == "" {
		return "", fmt.Errorf("refresh: no access token in response")
	}
	return body.Access, nil
}

func isAuthFree(path string) bool {
	for _, p := range authFreePaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}
