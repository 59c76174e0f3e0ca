package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jobhive/portal-client/internal/core/domain"
)

// Profile fetches a user's public profile.
func (c *Client) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	var user domain.User
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/api/profile/user/%d", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile sends a partial update; fields is serialized as the request
// body and the backend decides what is writable.
func (c *Client) UpdateProfile(ctx context.Context, userID int64, fields map[string]any) (*domain.User, error) {
	var user domain.User
	if err := c.call(ctx, http.MethodPut, fmt.Sprintf("/api/profile/user/%d", userID), fields, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
