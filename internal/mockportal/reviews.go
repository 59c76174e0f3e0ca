package mockportal

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/portal-client/internal/core/domain"
)

type reviewRequest struct {
	CompanyID int64  `json:"company_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title     string `json:"title"`
	Comment   string `json:"comment"`
}

func (s *Server) handleListReviews(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	reviews := make([]domain.Review, 0, len(s.state.reviews))
	for _, r := range s.state.reviews {
		reviews = append(reviews, r)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (s *Server) handleCreateReview(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := s.validate.Struct(&req); err != nil {
		return validationDetail(c, err)
	}

	user := currentUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	review := domain.Review{
		ID:        s.state.id(),
		CompanyID: req.CompanyID,
		UserID:    user.ID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	s.state.reviews[review.ID] = review

	return c.JSON(http.StatusCreated, review)
}

func (s *Server) handleCompanyReviews(c echo.Context) error {
	companyID, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	reviews := make([]domain.Review, 0)
	for _, r := range s.state.reviews {
		if r.CompanyID == companyID {
			reviews = append(reviews, r)
		}
	}
	return c.JSON(http.StatusOK, reviews)
}

func (s *Server) handleCompanyAverage(c echo.Context) error {
	companyID, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	var sum, count int
	for _, r := range s.state.reviews {
		if r.CompanyID == companyID {
			sum += r.Rating
			count++
		}
	}

	summary := domain.RatingSummary{CompanyID: companyID, ReviewCount: count}
	if count > 0 {
		summary.AverageRating = float64(sum) / float64(count)
	}
	return c.JSON(http.StatusOK, summary)
}
