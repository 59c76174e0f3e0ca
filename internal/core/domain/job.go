package domain

import "time"

// Job is a posting as returned by the jobs endpoints.
type Job struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	CompanyName  string    `json:"company_name,omitempty"`
	Location     string    `json:"location,omitempty"`
	SalaryMin    float64   `json:"salary_min,omitempty"`
	SalaryMax    float64   `json:"salary_max,omitempty"`
	JobType      string    `json:"job_type,omitempty"`
	Requirements string    `json:"requirements,omitempty"`
	EmployerID   int64     `json:"employer_id,omitempty"`
	IsActive     bool      `json:"is_active,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
}

// JobSearch carries the query parameters accepted by GET /api/jobs/search.
// Zero values are omitted from the query string.
type JobSearch struct {
	Query     string
	Location  string
	JobType   string
	MinSalary float64
	Page      int
	Limit     int
}

// JobAlert is a saved search the backend matches new postings against.
type JobAlert struct {
	ID        int64     `json:"id,omitempty"`
	UserID    int64     `json:"user_id,omitempty"`
	Keywords  string    `json:"keywords"`
	Location  string    `json:"location,omitempty"`
	JobType   string    `json:"job_type,omitempty"`
	Frequency string    `json:"frequency,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}
