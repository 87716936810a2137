package store

import (
	"sync"

	"github.com/sushant-97/ats-system/internal/models"
)

// ApplicationStore holds the job-seeker's tracked applications.
type ApplicationStore struct {
	mu   sync.RWMutex
	apps []models.Application
}

func NewApplicationStore() *ApplicationStore {
	return &ApplicationStore{apps: seedApplications()}
}

func NewApplicationStoreWith(apps []models.Application) *ApplicationStore {
	return &ApplicationStore{apps: apps}
}

func (s *ApplicationStore) List() []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Application, len(s.apps))
	copy(out, s.apps)
	return out
}

func (s *ApplicationStore) Get(id string) (models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.apps {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Application{}, ErrApplicationNotFound
}

func (s *ApplicationStore) Add(app models.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps = append(s.apps, app)
}

func (s *ApplicationStore) Update(app models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.apps {
		if s.apps[i].ID == app.ID {
			s.apps[i] = app
			return nil
		}
	}
	return ErrApplicationNotFound
}

func (s *ApplicationStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.apps {
		if s.apps[i].ID == id {
			s.apps = append(s.apps[:i], s.apps[i+1:]...)
			return nil
		}
	}
	return ErrApplicationNotFound
}
