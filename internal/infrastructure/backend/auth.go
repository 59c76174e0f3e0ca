package backend

import (
	"context"
	"net/http"

	"github.com/jobhive/portal-client/internal/core/domain"
	"github.com/jobhive/portal-client/internal/core/ports"
)

var _ ports.IdentityAPI = (*Client)(nil)

// Register creates a new account and returns the issued credential.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error) {
	var res domain.AuthResult
	if err := c.call(ctx, http.MethodPost, "/api/auth/register", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Login exchanges credentials for a bearer token and the identity record.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var res domain.AuthResult
	if err := c.call(ctx, http.MethodPost, "/api/auth/login", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Me fetches the identity behind the stored token.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.call(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
