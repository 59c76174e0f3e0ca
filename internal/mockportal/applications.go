package mockportal

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/portal-client/internal/core/domain"
)

type applicationRequest struct {
	JobID       int64  `json:"job_id" validate:"required"`
	ResumeID    int64  `json:"resume_id"`
	CoverLetter string `json:"cover_letter"`
}

func (s *Server) handleListApplications(c echo.Context) error {
	user := currentUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	apps := make([]domain.Application, 0)
	for _, app := range s.state.applications {
		if app.ApplicantID == user.ID || user.Role == domain.RoleAdmin {
			apps = append(apps, app)
		}
	}
	return c.JSON(http.StatusOK, apps)
}

func (s *Server) handleCreateApplication(c echo.Context) error {
	var req applicationRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := s.validate.Struct(&req); err != nil {
		return validationDetail(c, err)
	}

	user := currentUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	if _, ok := s.state.jobs[req.JobID]; !ok {
		return detail(c, http.StatusNotFound, "Job not found")
	}

	app := domain.Application{
		ID:          s.state.id(),
		JobID:       req.JobID,
		ApplicantID: user.ID,
		ResumeID:    req.ResumeID,
		CoverLetter: req.CoverLetter,
		Status:      "submitted",
		AppliedAt:   time.Now().UTC(),
	}
	s.state.applications[app.ID] = app

	return c.JSON(http.StatusCreated, app)
}

func (s *Server) handleGetApplication(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	user := currentUser(c)

	s.state.mu.Lock()
	app, ok := s.state.applications[id]
	s.state.mu.Unlock()
	if !ok {
		return detail(c, http.StatusNotFound, "Application not found")
	}
	if app.ApplicantID != user.ID && user.Role != domain.RoleAdmin {
		return detail(c, http.StatusForbidden, "Not your application")
	}
	return c.JSON(http.StatusOK, app)
}
