package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/sushant-97/ats-system/internal/models"
	"github.com/sushant-97/ats-system/internal/store"
)

// DurationOptions are the schedulable interview lengths in minutes.
var DurationOptions = []int{15, 30, 45, 60, 90, 120}

// InterviewService manages the interview calendar.
type InterviewService struct {
	Store *store.InterviewStore
}

func NewInterviewService(st *store.InterviewStore) *InterviewService {
	return &InterviewService{Store: st}
}

// List returns interviews, optionally restricted to one status.
func (s *InterviewService) List(status models.InterviewStatus) []models.Interview {
	all := s.Store.List()
	if status == "" {
		return all
	}
	out := all[:0:0]
	for _, iv := range all {
		if iv.Status == status {
			out = append(out, iv)
		}
	}
	return out
}

// OnDate returns the interviews scheduled for the given calendar day,
// matched on exact year, month and day.
func (s *InterviewService) OnDate(year, month, day int) []models.Interview {
	out := []models.Interview{}
	for _, iv := range s.Store.List() {
		if iv.Date.Year() == year && int(iv.Date.Month()) == month && iv.Date.Day() == day {
			out = append(out, iv)
		}
	}
	return out
}

// Schedule validates and records a new interview.
func (s *InterviewService) Schedule(iv models.Interview) (models.Interview, error) {
	if !iv.Type.Valid() {
		return models.Interview{}, fmt.Errorf("unknown interview type %q", iv.Type)
	}
	if !validDuration(iv.Duration) {
		return models.Interview{}, fmt.Errorf("duration must be one of %v minutes", DurationOptions)
	}
	iv.ID = uuid.NewString()
	iv.Status = models.InterviewUpcoming
	s.Store.Add(iv)
	return iv, nil
}

func (s *InterviewService) Cancel(id string) (models.Interview, error) {
	return s.Store.SetStatus(id, models.InterviewCancelled)
}

func (s *InterviewService) Complete(id string) (models.Interview, error) {
	return s.Store.SetStatus(id, models.InterviewCompleted)
}

func validDuration(minutes int) bool {
	for _, d := range DurationOptions {
		if minutes == d {
			return true
		}
	}
	return false
}
