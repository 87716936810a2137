package store

import (
	"sync"

	"github.com/sushant-97/ats-system/internal/models"
)

// InterviewStore holds scheduled interviews.
type InterviewStore struct {
	mu         sync.RWMutex
	interviews []models.Interview
}

func NewInterviewStore() *InterviewStore {
	return &InterviewStore{interviews: seedInterviews()}
}

func NewInterviewStoreWith(interviews []models.Interview) *InterviewStore {
	return &InterviewStore{interviews: interviews}
}

func (s *InterviewStore) List() []models.Interview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Interview, len(s.interviews))
	copy(out, s.interviews)
	return out
}

func (s *InterviewStore) Get(id string) (models.Interview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, iv := range s.interviews {
		if iv.ID == id {
			return iv, nil
		}
	}
	return models.Interview{}, ErrInterviewNotFound
}

func (s *InterviewStore) Add(iv models.Interview) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interviews = append(s.interviews, iv)
}

// SetStatus marks an interview cancelled or completed.
func (s *InterviewStore) SetStatus(id string, status models.InterviewStatus) (models.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.interviews {
		if s.interviews[i].ID == id {
			s.interviews[i].Status = status
			return s.interviews[i], nil
		}
	}
	return models.Interview{}, ErrInterviewNotFound
}
