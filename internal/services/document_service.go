package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sushant-97/ats-system/internal/models"
	"github.com/sushant-97/ats-system/internal/store"
)

// UploadStatus is the lifecycle of a simulated upload.
type UploadStatus string

const (
	UploadInProgress UploadStatus = "uploading"
	UploadComplete   UploadStatus = "complete"
	UploadCancelled  UploadStatus = "cancelled"
)

// UploadFile is one file handed to the uploader: the (name, size, mimeType)
// tuple the file picker yields.
type UploadFile struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
}

// Upload tracks one simulated upload batch.
type Upload struct {
	ID       string       `json:"id"`
	Files    []UploadFile `json:"files"`
	Progress int          `json:"progress"`
	Status   UploadStatus `json:"status"`

	cancel context.CancelFunc
}

// DocumentService owns the document grid and the upload simulator. No bytes
// are stored anywhere; an upload is a timer stepping progress from 0 to 100,
// after which the files appear in the grid.
type DocumentService struct {
	Store *store.DocumentStore

	// Step and interval of the simulated progress; shortened in tests.
	ProgressStep int
	TickEvery    time.Duration

	mu      sync.RWMutex
	uploads map[string]*Upload
}

func NewDocumentService(st *store.DocumentStore) *DocumentService {
	return &DocumentService{
		Store:        st,
		ProgressStep: 5,
		TickEvery:    150 * time.Millisecond,
		uploads:      make(map[string]*Upload),
	}
}

func (s *DocumentService) List() []models.Document {
	return s.Store.List()
}

func (s *DocumentService) Delete(id string) error {
	return s.Store.Delete(id)
}

// StartUpload begins a simulated upload and returns a snapshot of its
// initial state. Progress advances on a background ticker; when it reaches
// 100 the files are added to the grid. The returned value shares no memory
// with the running upload, so callers read it without synchronizing against
// the ticker goroutine; poll UploadProgress for the current state.
func (s *DocumentService) StartUpload(files []UploadFile) (Upload, error) {
	if len(files) == 0 {
		return Upload{}, fmt.Errorf("no files selected")
	}

	ctx, cancel := context.WithCancel(context.Background())
	up := &Upload{
		ID:     uuid.NewString(),
		Files:  files,
		Status: UploadInProgress,
		cancel: cancel,
	}
	snapshot := Upload{ID: up.ID, Files: files, Status: UploadInProgress}

	s.mu.Lock()
	s.uploads[up.ID] = up
	s.mu.Unlock()

	go s.run(ctx, up.ID)
	return snapshot, nil
}

// run steps the upload until done or cancelled.
func (s *DocumentService) run(ctx context.Context, id string) {
	ticker := time.NewTicker(s.TickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			if up, ok := s.uploads[id]; ok && up.Status == UploadInProgress {
				up.Status = UploadCancelled
			}
			s.mu.Unlock()
			return
		case <-ticker.C:
			if s.step(id) {
				return
			}
		}
	}
}

// step advances progress once and reports whether the upload finished.
func (s *DocumentService) step(id string) bool {
	s.mu.Lock()
	up, ok := s.uploads[id]
	if !ok || up.Status != UploadInProgress {
		s.mu.Unlock()
		return true
	}
	up.Progress += s.ProgressStep
	if up.Progress < 100 {
		s.mu.Unlock()
		return false
	}
	up.Progress = 100
	up.Status = UploadComplete
	files := up.Files
	s.mu.Unlock()

	docs := make([]models.Document, len(files))
	for i, f := range files {
		ext := fileType(f.Name)
		docs[i] = models.Document{
			ID:       uuid.NewString(),
			Name:     f.Name,
			Type:     ext,
			Size:     f.Size,
			SizeText: FormatFileSize(f.Size),
			Category: categoryFor(f.Name, ext),
			Date:     time.Now(),
		}
	}
	s.Store.Prepend(docs)
	log.Printf("upload %s complete: %d document(s) added", id, len(docs))
	return true
}

// UploadProgress returns the current state of an upload.
func (s *DocumentService) UploadProgress(id string) (Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	up, ok := s.uploads[id]
	if !ok {
		return Upload{}, store.ErrUploadNotFound
	}
	return Upload{ID: up.ID, Files: up.Files, Progress: up.Progress, Status: up.Status}, nil
}

// CancelUpload aborts an in-progress upload.
func (s *DocumentService) CancelUpload(id string) error {
	s.mu.RLock()
	up, ok := s.uploads[id]
	s.mu.RUnlock()
	if !ok {
		return store.ErrUploadNotFound
	}
	up.cancel()
	return nil
}

// FormatFileSize renders a byte count the way the grid displays it,
// e.g. 1536 -> "1.5 KB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	sizes := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(i))
	if i == 0 {
		return fmt.Sprintf("%d Bytes", bytes)
	}
	return fmt.Sprintf("%.1f %s", value, sizes[i])
}

func fileType(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// categoryFor infers the grid category from the file name, the same
// heuristic the uploader applied.
func categoryFor(name, ext string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "resume") || strings.Contains(lower, "cv"):
		return "Resume"
	case strings.Contains(lower, "cover"):
		return "Cover Letter"
	case strings.Contains(lower, "portfolio"):
		return "Portfolio"
	case ext == "pdf" || ext == "doc" || ext == "docx":
		return "Document"
	default:
		return "Other"
	}
}
