package mockportal

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/portal-client/internal/core/domain"
)

func (s *Server) handleUploadResume(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return detail(c, http.StatusBadRequest, "file is required")
	}
	userID, err := strconv.ParseInt(c.FormValue("user_id"), 10, 64)
	if err != nil {
		return detail(c, http.StatusBadRequest, "user_id is required")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	resume := domain.Resume{
		ID:         s.state.id(),
		UserID:     userID,
		FileName:   file.Filename,
		UploadedAt: time.Now().UTC(),
	}
	s.state.resumes[resume.ID] = resume

	return c.JSON(http.StatusCreated, resume)
}

func (s *Server) handleAnalyzeResume(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	s.state.mu.Lock()
	resume, ok := s.state.resumes[id]
	s.state.mu.Unlock()
	if !ok {
		return detail(c, http.StatusNotFound, "Resume not found")
	}

	// Canned analysis; the production backend runs a model here.
	return c.JSON(http.StatusOK, map[string]any{
		"resume_id": resume.ID,
		"score":     72,
		"strengths": []string{"clear work history", "relevant keywords"},
		"gaps":      []string{"no measurable impact statements"},
	})
}

func (s *Server) handleGetProfile(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	s.state.mu.Lock()
	acc := s.state.accounts[id]
	s.state.mu.Unlock()
	if acc == nil {
		return detail(c, http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, acc.User)
}

type profileRequest struct {
	FullName       string `json:"full_name"`
	Location       string `json:"location"`
	CompanyName    string `json:"company_name"`
	ProfilePicture string `json:"profile_picture"`
}

func (s *Server) handleUpdateProfile(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	user := currentUser(c)
	if user.ID != id && user.Role != domain.RoleAdmin {
		return detail(c, http.StatusForbidden, "Not your profile")
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	acc := s.state.accounts[id]
	if acc == nil {
		return detail(c, http.StatusNotFound, "User not found")
	}
	if req.FullName != "" {
		acc.User.FullName = req.FullName
	}
	if req.Location != "" {
		acc.User.Location = req.Location
	}
	if req.CompanyName != "" {
		acc.User.CompanyName = req.CompanyName
	}
	if req.ProfilePicture != "" {
		acc.User.ProfilePicture = req.ProfilePicture
	}
	return c.JSON(http.StatusOK, acc.User)
}
