package api

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a token pair. The identifier may be an
// email or a username; it is sent in both fields.
func (c *Client) Login(ctx context.Context, identifier, password string) (Tokens, error) {
	var tokens Tokens
	err := c.do(ctx, http.MethodPost, "/auth/login/", loginRequest{
		Username: identifier,
		Email:    identifier,
		Password: password,
	}, &tokens, false)
	if err != nil {
		return Tokens{}, err
	}
	return tokens, nil
}

// Register creates an account. Registration does not authenticate; callers
// follow up with Login.
func (c *Client) Register(ctx context.Context, email, username, password, password2 string) error {
	return c.do(ctx, http.MethodPost, "/auth/register/", registerRequest{
		Email:     email,
		Username:  username,
		Password:  password,
		Password2: password2,
	}, nil, false)
}
