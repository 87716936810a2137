package store

import (
	"sync"

	"github.com/sushant-97/ats-system/internal/models"
)

// DocumentStore holds the uploaded documents. New uploads are prepended so
// the grid shows the most recent first, as the original dashboard did.
type DocumentStore struct {
	mu   sync.RWMutex
	docs []models.Document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: seedDocuments()}
}

func NewDocumentStoreWith(docs []models.Document) *DocumentStore {
	return &DocumentStore{docs: docs}
}

func (s *DocumentStore) List() []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Document, len(s.docs))
	copy(out, s.docs)
	return out
}

func (s *DocumentStore) Prepend(docs []models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(append([]models.Document{}, docs...), s.docs...)
}

func (s *DocumentStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return ErrDocumentNotFound
}
