package services

import (
	"sort"

	"github.com/sushant-97/ats-system/internal/models"
	"github.com/sushant-97/ats-system/internal/store"
)

// JobFilter narrows and orders the job list.
type JobFilter struct {
	Status string // "all" or a JobStatus value
	SortBy string // "daysActive", "title", "priority" or "candidates"
	Order  string // "asc" or "desc"
}

// JobService serves the job postings list and detail views.
type JobService struct {
	Store *store.JobStore
}

func NewJobService(st *store.JobStore) *JobService {
	return &JobService{Store: st}
}

// List returns jobs matching the status filter, stably sorted by the
// requested key.
func (s *JobService) List(f JobFilter) []models.Job {
	jobs := s.Store.List()
	if f.Status != "" && f.Status != "all" {
		filtered := jobs[:0:0]
		for _, j := range jobs {
			if string(j.Status) == f.Status {
				filtered = append(filtered, j)
			}
		}
		jobs = filtered
	}
	sortJobs(jobs, f.SortBy, f.Order)
	return jobs
}

func (s *JobService) Get(id string) (models.Job, error) {
	return s.Store.Get(id)
}

func sortJobs(jobs []models.Job, sortBy, order string) {
	var less func(a, b models.Job) bool
	switch sortBy {
	case "daysActive":
		less = func(a, b models.Job) bool { return a.DaysActive < b.DaysActive }
	case "title":
		less = func(a, b models.Job) bool { return a.Title < b.Title }
	case "priority":
		less = func(a, b models.Job) bool { return a.Priority.Rank() < b.Priority.Rank() }
	case "candidates":
		less = func(a, b models.Job) bool { return a.Candidates.Total < b.Candidates.Total }
	default:
		return
	}
	desc := order == "desc"
	sort.SliceStable(jobs, func(i, j int) bool {
		if desc {
			return less(jobs[j], jobs[i])
		}
		return less(jobs[i], jobs[j])
	})
}
