package store

import (
	"sync"

	"github.com/sushant-97/ats-system/internal/models"
)

// JobStore holds the job postings.
type JobStore struct {
	mu   sync.RWMutex
	jobs []models.Job
}

func NewJobStore() *JobStore {
	return &JobStore{jobs: seedJobs()}
}

func NewJobStoreWith(jobs []models.Job) *JobStore {
	return &JobStore{jobs: jobs}
}

func (s *JobStore) List() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

func (s *JobStore) Get(id string) (models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, j := range s.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return models.Job{}, ErrJobNotFound
}
