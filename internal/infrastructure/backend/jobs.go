package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jobhive/portal-client/internal/core/domain"
)

// Jobs lists all active postings.
func (c *Client) Jobs(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.call(ctx, http.MethodGet, "/api/jobs/", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// CreateJob posts a new listing (employer only).
func (c *Client) CreateJob(ctx context.Context, job domain.Job) (*domain.Job, error) {
	var created domain.Job
	if err := c.call(ctx, http.MethodPost, "/api/jobs/", job, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Job fetches one posting by id.
func (c *Client) Job(ctx context.Context, id int64) (*domain.Job, error) {
	var job domain.Job
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/api/jobs/%d", id), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob replaces a posting.
func (c *Client) UpdateJob(ctx context.Context, id int64, job domain.Job) (*domain.Job, error) {
	var updated domain.Job
	if err := c.call(ctx, http.MethodPut, fmt.Sprintf("/api/jobs/%d", id), job, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteJob removes a posting.
func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/jobs/%d", id), nil, nil)
}

// SearchJobs queries postings by keyword and filters. Zero-valued fields
// are left out of the query string.
func (c *Client) SearchJobs(ctx context.Context, search domain.JobSearch) ([]domain.Job, error) {
	q := url.Values{}
	if search.Query != "" {
		q.Set("q", search.Query)
	}
	if search.Location != "" {
		q.Set("location", search.Location)
	}
	if search.JobType != "" {
		q.Set("job_type", search.JobType)
	}
	if search.MinSalary > 0 {
		q.Set("min_salary", strconv.FormatFloat(search.MinSalary, 'f', -1, 64))
	}
	if search.Page > 0 {
		q.Set("page", strconv.Itoa(search.Page))
	}
	if search.Limit > 0 {
		q.Set("limit", strconv.Itoa(search.Limit))
	}

	path := "/api/jobs/search"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var jobs []domain.Job
	if err := c.call(ctx, http.MethodGet, path, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
