package store

import (
	"sync"

	"github.com/sushant-97/ats-system/internal/models"
)

// ListingStore holds the external job listings the job-seeker searches,
// plus the set of listings they have saved.
type ListingStore struct {
	mu       sync.RWMutex
	listings []models.JobListing
	saved    map[string]bool
}

func NewListingStore() *ListingStore {
	return &ListingStore{listings: seedJobListings(), saved: make(map[string]bool)}
}

func NewListingStoreWith(listings []models.JobListing) *ListingStore {
	return &ListingStore{listings: listings, saved: make(map[string]bool)}
}

func (s *ListingStore) List() []models.JobListing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.JobListing, len(s.listings))
	copy(out, s.listings)
	return out
}

func (s *ListingStore) Get(id string) (models.JobListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return models.JobListing{}, ErrListingNotFound
}

// Save bookmarks a listing. Saving one that is already saved is a no-op;
// an unknown id is an error so callers can tell the difference.
func (s *ListingStore) Save(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.exists(id) {
		return ErrListingNotFound
	}
	s.saved[id] = true
	return nil
}

// Unsave removes a bookmark, reporting whether there was one to remove.
func (s *ListingStore) Unsave(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.exists(id) {
		return ErrListingNotFound
	}
	if !s.saved[id] {
		return ErrListingNotSaved
	}
	delete(s.saved, id)
	return nil
}

// Saved returns the bookmarked listings in listing order.
func (s *ListingStore) Saved() []models.JobListing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.JobListing{}
	for _, l := range s.listings {
		if s.saved[l.ID] {
			out = append(out, l)
		}
	}
	return out
}

// exists assumes the caller holds the lock.
func (s *ListingStore) exists(id string) bool {
	for _, l := range s.listings {
		if l.ID == id {
			return true
		}
	}
	return false
}
