package mockportal

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/portal-client/internal/core/domain"
)

type alertRequest struct {
	Keywords  string `json:"keywords" validate:"required"`
	Location  string `json:"location"`
	JobType   string `json:"job_type"`
	Frequency string `json:"frequency"`
	IsActive  bool   `json:"is_active"`
}

func (s *Server) handleListAlerts(c echo.Context) error {
	user := currentUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	alerts := make([]domain.JobAlert, 0)
	for _, a := range s.state.alerts {
		if a.UserID == user.ID {
			alerts = append(alerts, a)
		}
	}
	return c.JSON(http.StatusOK, alerts)
}

func (s *Server) handleCreateAlert(c echo.Context) error {
	var req alertRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := s.validate.Struct(&req); err != nil {
		return validationDetail(c, err)
	}

	user := currentUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	alert := domain.JobAlert{
		ID:        s.state.id(),
		UserID:    user.ID,
		Keywords:  req.Keywords,
		Location:  req.Location,
		JobType:   req.JobType,
		Frequency: req.Frequency,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	s.state.alerts[alert.ID] = alert

	return c.JSON(http.StatusCreated, alert)
}

func (s *Server) handleUpdateAlert(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	user := currentUser(c)

	var req alertRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := s.validate.Struct(&req); err != nil {
		return validationDetail(c, err)
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	alert, ok := s.state.alerts[id]
	if !ok || alert.UserID != user.ID {
		return detail(c, http.StatusNotFound, "Alert not found")
	}

	alert.Keywords = req.Keywords
	alert.Location = req.Location
	alert.JobType = req.JobType
	alert.Frequency = req.Frequency
	alert.IsActive = req.IsActive
	s.state.alerts[id] = alert

	return c.JSON(http.StatusOK, alert)
}

func (s *Server) handleDeleteAlert(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	user := currentUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	alert, ok := s.state.alerts[id]
	if !ok || alert.UserID != user.ID {
		return detail(c, http.StatusNotFound, "Alert not found")
	}
	delete(s.state.alerts, alert.ID)

	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
