package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jobhive/portal-client/internal/core/domain"
)

// EmployerJobs lists the postings owned by the calling employer.
func (c *Client) EmployerJobs(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.call(ctx, http.MethodGet, "/api/employer/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// EmployerApplications lists applications received against the caller's
// postings.
func (c *Client) EmployerApplications(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	if err := c.call(ctx, http.MethodGet, "/api/employer/applications", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// EmployerStats returns the employer dashboard aggregates, raw.
func (c *Client) EmployerStats(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/employer/stats", nil, nil)
}

// ResolveEmployerJobs fetches the caller's postings with an explicit
// priority order: the employer endpoint first, then the admin listing
// filtered client-side by employer id. The degraded path exists for
// deployments where the employer aggregate is unavailable; it is logged so
// the fallback never happens silently. Auth rejections are not retried
// against the fallback — the credential is already torn down.
func (c *Client) ResolveEmployerJobs(ctx context.Context, employerID int64) ([]domain.Job, error) {
	jobs, err := c.EmployerJobs(ctx)
	if err == nil {
		return jobs, nil
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden) {
		return nil, err
	}

	c.log.Warn().Err(err).Msg("employer jobs endpoint failed, degrading to admin listing")

	all, adminErr := c.AdminJobs(ctx)
	if adminErr != nil {
		// Surface the original failure; the fallback failing too is detail.
		c.log.Warn().Err(adminErr).Msg("admin jobs fallback also failed")
		return nil, err
	}

	owned := make([]domain.Job, 0, len(all))
	for _, job := range all {
		if job.EmployerID == employerID {
			owned = append(owned, job)
		}
	}
	return owned, nil
}
