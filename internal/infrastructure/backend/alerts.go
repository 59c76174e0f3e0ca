package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jobhive/portal-client/internal/core/domain"
)

// JobAlerts lists the caller's saved searches.
func (c *Client) JobAlerts(ctx context.Context) ([]domain.JobAlert, error) {
	var alerts []domain.JobAlert
	if err := c.call(ctx, http.MethodGet, "/api/job-alerts/", nil, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// CreateJobAlert saves a new alert.
func (c *Client) CreateJobAlert(ctx context.Context, alert domain.JobAlert) (*domain.JobAlert, error) {
	var created domain.JobAlert
	if err := c.call(ctx, http.MethodPost, "/api/job-alerts/", alert, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateJobAlert replaces an alert.
func (c *Client) UpdateJobAlert(ctx context.Context, id int64, alert domain.JobAlert) (*domain.JobAlert, error) {
	var updated domain.JobAlert
	if err := c.call(ctx, http.MethodPut, fmt.Sprintf("/api/job-alerts/%d", id), alert, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteJobAlert removes an alert.
func (c *Client) DeleteJobAlert(ctx context.Context, id int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/job-alerts/%d", id), nil, nil)
}
