package mockportal

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/portal-client/internal/core/domain"
)

func (s *Server) handleEmployerJobs(c echo.Context) error {
	user := currentUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return c.JSON(http.StatusOK, s.state.jobList(func(j domain.Job) bool {
		return j.EmployerID == user.ID
	}))
}

func (s *Server) handleEmployerApplications(c echo.Context) error {
	user := currentUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	apps := make([]domain.Application, 0)
	for _, app := range s.state.applications {
		if job, ok := s.state.jobs[app.JobID]; ok && job.EmployerID == user.ID {
			apps = append(apps, app)
		}
	}
	return c.JSON(http.StatusOK, apps)
}

func (s *Server) handleEmployerStats(c echo.Context) error {
	user := currentUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	var jobs, apps int
	for _, job := range s.state.jobs {
		if job.EmployerID != user.ID {
			continue
		}
		jobs++
		for _, app := range s.state.applications {
			if app.JobID == job.ID {
				apps++
			}
		}
	}
	return c.JSON(http.StatusOK, map[string]int{
		"total_jobs":         jobs,
		"total_applications": apps,
	})
}

func (s *Server) handleAdminUsers(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	users := make([]domain.User, 0, len(s.state.accounts))
	for _, acc := range s.state.accounts {
		users = append(users, acc.User)
	}
	return c.JSON(http.StatusOK, users)
}

func (s *Server) handleAdminJobs(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return c.JSON(http.StatusOK, s.state.jobList(nil))
}

func (s *Server) handleAdminStats(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return c.JSON(http.StatusOK, map[string]int{
		"total_users":        len(s.state.accounts),
		"total_jobs":         len(s.state.jobs),
		"total_applications": len(s.state.applications),
		"total_reviews":      len(s.state.reviews),
	})
}

func (s *Server) handleAdminDeleteUser(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	if _, ok := s.state.accounts[id]; !ok {
		return detail(c, http.StatusNotFound, "User not found")
	}
	delete(s.state.accounts, id)

	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
