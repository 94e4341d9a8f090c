package apiclient

import (
	"context"
	"net/http"

	"github.com/creditdost/portal/core/session"
)

// The auth endpoints implement session.API, so the session manager can
// take this client by interface.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileResponse struct {
	User session.User `json:"user"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (session.Auth, error) {
	var out session.Auth
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password}, &out); err != nil {
		return session.Auth{}, err
	}
	return out, nil
}

// Register creates an account; the backend signs the new user in and
// returns the same payload shape as Login.
func (c *Client) Register(ctx context.Context, params session.RegisterParams) (session.Auth, error) {
	var out session.Auth
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", params, &out); err != nil {
		return session.Auth{}, err
	}
	return out, nil
}

// Profile resolves the user behind the current bearer token.
func (c *Client) Profile(ctx context.Context) (session.User, error) {
	var out profileResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return session.User{}, err
	}
	return out.User, nil
}

// Logout invalidates the server-side session. Any 2xx counts as
// success; the caller treats failures as best-effort anyway.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}
