// Package store holds the in-memory repositories backing the dashboard.
// Every store is seeded with sample data at construction and mutated only
// in memory; state is lost on restart. Repositories are guarded by an
// RWMutex because the HTTP server handles requests concurrently, keeping
// each slice of state with a single owner.
package store

import (
	"sync"

	"github.com/sushant-97/ats-system/internal/models"
	"github.com/sushant-97/ats-system/internal/pipeline"
)

// CandidateRepository is the storage contract consumed by the candidate
// service. The pure filter engine stays independent of any implementation,
// so a real database could back this later without touching callers.
type CandidateRepository interface {
	List() []models.Candidate
	Get(id string) (models.Candidate, error)
	Add(c models.Candidate)
	MoveStage(id string, stage models.Stage) (models.Candidate, error)
	AddToLeads(id string) (models.Candidate, error)
}

// CandidateStore is the in-memory CandidateRepository.
type CandidateStore struct {
	mu   sync.RWMutex
	pool []models.Candidate
}

// NewCandidateStore seeds the store with the sample candidate pool.
func NewCandidateStore() *CandidateStore {
	return &CandidateStore{pool: seedCandidates()}
}

// NewCandidateStoreWith builds a store over the given pool, for tests.
func NewCandidateStoreWith(pool []models.Candidate) *CandidateStore {
	return &CandidateStore{pool: pool}
}

// List returns a copy of the full pool; callers can filter and sort it
// freely without affecting the store.
func (s *CandidateStore) List() []models.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Candidate, len(s.pool))
	copy(out, s.pool)
	return out
}

func (s *CandidateStore) Get(id string) (models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.pool {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Candidate{}, ErrCandidateNotFound
}

func (s *CandidateStore) Add(c models.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool = append(s.pool, c)
}

// MoveStage replaces the candidate's stage and updates its audit trail.
// Returns ErrCandidateNotFound when the id is absent; the pool is left
// untouched in that case.
func (s *CandidateStore) MoveStage(id string, stage models.Stage) (models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := pipeline.MoveToStage(s.pool, id, stage)
	if !ok {
		return models.Candidate{}, ErrCandidateNotFound
	}
	s.pool = next
	return s.find(id), nil
}

// AddToLeads moves the candidate into the leads pool at the new stage.
func (s *CandidateStore) AddToLeads(id string) (models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := pipeline.AddToLeads(s.pool, id)
	if !ok {
		return models.Candidate{}, ErrCandidateNotFound
	}
	s.pool = next
	return s.find(id), nil
}

// find assumes the caller holds the lock and the id exists.
func (s *CandidateStore) find(id string) models.Candidate {
	for _, c := range s.pool {
		if c.ID == id {
			return c
		}
	}
	return models.Candidate{}
}
