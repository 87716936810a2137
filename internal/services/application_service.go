package services

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sushant-97/ats-system/internal/models"
	"github.com/sushant-97/ats-system/internal/store"
)

// PageSize is the fixed number of rows per applications-table page.
const PageSize = 5

// ApplicationFilter narrows the job-seeker's application list.
type ApplicationFilter struct {
	Search   string
	Status   string // "all" or an ApplicationStatus value
	Type     string // "all" or a job type
	Location string // "all" or "Remote"

	SortField string // "date", "company" or "position"
	SortDir   string // "asc" or "desc"
	Page      int
}

// ApplicationPage is one page of filtered results plus pagination math so
// the table can render its footer without recomputing.
type ApplicationPage struct {
	Applications []models.Application `json:"applications"`
	Total        int                  `json:"total"`
	Page         int                  `json:"page"`
	TotalPages   int                  `json:"totalPages"`
	PageSize     int                  `json:"pageSize"`
}

// ApplicationService manages the job-seeker's tracked applications.
type ApplicationService struct {
	Store *store.ApplicationStore
}

func NewApplicationService(st *store.ApplicationStore) *ApplicationService {
	return &ApplicationService{Store: st}
}

// List filters, sorts and paginates. The requested page is clamped to
// [1, totalPages]; an empty result set still reports page 1 of 1.
func (s *ApplicationService) List(f ApplicationFilter) ApplicationPage {
	apps := s.filter(s.Store.List(), f)
	sortApplications(apps, f.SortField, f.SortDir)

	totalPages := (len(apps) + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(apps) {
		end = len(apps)
	}

	return ApplicationPage{
		Applications: apps[start:end],
		Total:        len(apps),
		Page:         page,
		TotalPages:   totalPages,
		PageSize:     PageSize,
	}
}

func (s *ApplicationService) filter(apps []models.Application, f ApplicationFilter) []models.Application {
	out := apps[:0:0]
	search := strings.ToLower(f.Search)
	for _, app := range apps {
		if search != "" &&
			!strings.Contains(strings.ToLower(app.Company), search) &&
			!strings.Contains(strings.ToLower(app.Position), search) &&
			!strings.Contains(strings.ToLower(app.Location), search) {
			continue
		}
		if f.Status != "" && f.Status != "all" && string(app.Status) != f.Status {
			continue
		}
		if f.Type != "" && f.Type != "all" && app.Type != f.Type {
			continue
		}
		// The only location bucket the table offers is Remote.
		if f.Location == "Remote" && !strings.Contains(app.Location, "Remote") {
			continue
		}
		out = append(out, app)
	}
	return out
}

// sortApplications orders in place with a stable sort so rows with equal
// keys keep their insertion order.
func sortApplications(apps []models.Application, field, dir string) {
	var less func(a, b models.Application) bool
	switch field {
	case "date":
		less = func(a, b models.Application) bool { return a.Date.Before(b.Date) }
	case "company":
		less = func(a, b models.Application) bool { return a.Company < b.Company }
	case "position":
		less = func(a, b models.Application) bool { return a.Position < b.Position }
	default:
		return
	}
	desc := dir == "desc"
	sort.SliceStable(apps, func(i, j int) bool {
		if desc {
			return less(apps[j], apps[i])
		}
		return less(apps[i], apps[j])
	})
}

func (s *ApplicationService) Get(id string) (models.Application, error) {
	return s.Store.Get(id)
}

// Create records a new application with a generated id.
func (s *ApplicationService) Create(app models.Application) models.Application {
	app.ID = uuid.NewString()
	if app.Date.IsZero() {
		app.Date = time.Now()
	}
	s.Store.Add(app)
	return app
}

func (s *ApplicationService) Update(app models.Application) error {
	return s.Store.Update(app)
}

func (s *ApplicationService) Delete(id string) error {
	return s.Store.Delete(id)
}
