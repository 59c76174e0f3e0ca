package mockportal

import (
	"strings"
	"sync"
	"time"

	"github.com/jobhive/portal-client/internal/core/domain"
)

// account pairs the public identity with the credential hash the mock
// verifies against.
type account struct {
	User         domain.User
	PasswordHash []byte
}

// state is the mock's in-memory system of record. Everything resets when
// the process exits; that is the point.
type state struct {
	mu sync.Mutex

	accounts     map[int64]*account
	jobs         map[int64]domain.Job
	applications map[int64]domain.Application
	reviews      map[int64]domain.Review
	alerts       map[int64]domain.JobAlert
	resumes      map[int64]domain.Resume

	nextID int64
}

func newState() *state {
	return &state{
		accounts:     make(map[int64]*account),
		jobs:         make(map[int64]domain.Job),
		applications: make(map[int64]domain.Application),
		reviews:      make(map[int64]domain.Review),
		alerts:       make(map[int64]domain.JobAlert),
		resumes:      make(map[int64]domain.Resume),
	}
}

// id hands out process-unique identifiers across all record kinds. Callers
// must hold s.mu.
func (s *state) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *state) accountByEmail(email string) *account {
	for _, acc := range s.accounts {
		if strings.EqualFold(acc.User.Email, email) {
			return acc
		}
	}
	return nil
}

func (s *state) jobList(filter func(domain.Job) bool) []domain.Job {
	jobs := make([]domain.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		if filter == nil || filter(job) {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

func (s *state) createJob(job domain.Job) domain.Job {
	job.ID = s.id()
	job.IsActive = true
	job.CreatedAt = time.Now().UTC()
	s.jobs[job.ID] = job
	return job
}
