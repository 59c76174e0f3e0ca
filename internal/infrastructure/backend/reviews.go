package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jobhive/portal-client/internal/core/domain"
)

// Reviews lists all company reviews.
func (c *Client) Reviews(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.call(ctx, http.MethodGet, "/api/reviews/", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview posts a review for a company.
func (c *Client) CreateReview(ctx context.Context, review domain.Review) (*domain.Review, error) {
	var created domain.Review
	if err := c.call(ctx, http.MethodPost, "/api/reviews/", review, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CompanyReviews lists the reviews left for one company.
func (c *Client) CompanyReviews(ctx context.Context, companyID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/api/reviews/company/%d", companyID), nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CompanyAverageRating returns the aggregate rating for one company.
func (c *Client) CompanyAverageRating(ctx context.Context, companyID int64) (*domain.RatingSummary, error) {
	var summary domain.RatingSummary
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/api/reviews/company/%d/average", companyID), nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
