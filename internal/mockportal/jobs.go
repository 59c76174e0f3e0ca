package mockportal

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/portal-client/internal/core/domain"
)

type jobRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	CompanyName  string  `json:"company_name"`
	Location     string  `json:"location"`
	SalaryMin    float64 `json:"salary_min" validate:"gte=0"`
	SalaryMax    float64 `json:"salary_max" validate:"gte=0"`
	JobType      string  `json:"job_type"`
	Requirements string  `json:"requirements"`
}

func (s *Server) handleListJobs(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return c.JSON(http.StatusOK, s.state.jobList(func(j domain.Job) bool { return j.IsActive }))
}

func (s *Server) handleSearchJobs(c echo.Context) error {
	q := strings.ToLower(c.QueryParam("q"))
	location := strings.ToLower(c.QueryParam("location"))
	jobType := c.QueryParam("job_type")
	minSalary, _ := strconv.ParseFloat(c.QueryParam("min_salary"), 64)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	matches := s.state.jobList(func(j domain.Job) bool {
		if !j.IsActive {
			return false
		}
		if q != "" && !strings.Contains(strings.ToLower(j.Title+" "+j.Description), q) {
			return false
		}
		if location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
			return false
		}
		if jobType != "" && j.JobType != jobType {
			return false
		}
		if minSalary > 0 && j.SalaryMax < minSalary {
			return false
		}
		return true
	})
	return c.JSON(http.StatusOK, matches)
}

func (s *Server) handleCreateJob(c echo.Context) error {
	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := s.validate.Struct(&req); err != nil {
		return validationDetail(c, err)
	}

	user := currentUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	job := s.state.createJob(domain.Job{
		Title:        req.Title,
		Description:  req.Description,
		CompanyName:  req.CompanyName,
		Location:     req.Location,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		JobType:      req.JobType,
		Requirements: req.Requirements,
		EmployerID:   user.ID,
	})
	return c.JSON(http.StatusCreated, job)
}

func (s *Server) handleGetJob(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	s.state.mu.Lock()
	job, ok := s.state.jobs[id]
	s.state.mu.Unlock()
	if !ok {
		return detail(c, http.StatusNotFound, "Job not found")
	}
	return c.JSON(http.StatusOK, job)
}

func (s *Server) handleUpdateJob(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	user := currentUser(c)

	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := s.validate.Struct(&req); err != nil {
		return validationDetail(c, err)
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	job, ok := s.state.jobs[id]
	if !ok {
		return detail(c, http.StatusNotFound, "Job not found")
	}
	if job.EmployerID != user.ID && user.Role != domain.RoleAdmin {
		return detail(c, http.StatusForbidden, "Not your posting")
	}

	job.Title = req.Title
	job.Description = req.Description
	job.CompanyName = req.CompanyName
	job.Location = req.Location
	job.SalaryMin = req.SalaryMin
	job.SalaryMax = req.SalaryMax
	job.JobType = req.JobType
	job.Requirements = req.Requirements
	s.state.jobs[id] = job

	return c.JSON(http.StatusOK, job)
}

func (s *Server) handleDeleteJob(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	user := currentUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	job, ok := s.state.jobs[id]
	if !ok {
		return detail(c, http.StatusNotFound, "Job not found")
	}
	if job.EmployerID != user.ID && user.Role != domain.RoleAdmin {
		return detail(c, http.StatusForbidden, "Not your posting")
	}
	delete(s.state.jobs, id)

	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
