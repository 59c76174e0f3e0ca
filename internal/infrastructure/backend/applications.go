package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jobhive/portal-client/internal/core/domain"
)

// Applications lists the caller's applications.
func (c *Client) Applications(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	if err := c.call(ctx, http.MethodGet, "/api/applications/", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// Apply submits an application against a posting.
func (c *Client) Apply(ctx context.Context, app domain.Application) (*domain.Application, error) {
	var created domain.Application
	if err := c.call(ctx, http.MethodPost, "/api/applications/", app, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Application fetches one application by id.
func (c *Client) Application(ctx context.Context, id int64) (*domain.Application, error) {
	var app domain.Application
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/api/applications/%d", id), nil, &app); err != nil {
		return nil, err
	}
	return &app, nil
}
