package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jobhive/portal-client/internal/core/domain"
)

// AdminUsers lists every account (admin only).
func (c *Client) AdminUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.call(ctx, http.MethodGet, "/api/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminJobs lists every posting regardless of owner (admin only).
func (c *Client) AdminJobs(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.call(ctx, http.MethodGet, "/api/admin/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// AdminStats returns the platform-wide aggregates, raw.
func (c *Client) AdminStats(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/admin/stats", nil, nil)
}

// AdminDeleteUser removes an account.
func (c *Client) AdminDeleteUser(ctx context.Context, userID int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", userID), nil, nil)
}
