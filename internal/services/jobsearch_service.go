package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sushant-97/ats-system/internal/models"
	"github.com/sushant-97/ats-system/internal/store"
)

// Experience level buckets for job listings, inferred from the listing's
// requirements text the way the search form did.
const (
	ExperienceAll    = "all"
	ExperienceEntry  = "entry"
	ExperienceMid    = "mid"
	ExperienceSenior = "senior"
)

// JobSearchFilter narrows the listing search. The zero value matches every
// listing; SalaryMin/SalaryMax of 0 mean unbounded on that side.
type JobSearchFilter struct {
	// Keyword is matched case-insensitively against title, company and
	// description.
	Keyword string
	// Location is a case-insensitive substring of the listing location.
	Location string
	// Type is "all" or an exact job type.
	Type string
	// SalaryMin and SalaryMax bound the listing's lower salary figure, in
	// thousands ("$120,000 - ..." has a lower figure of 120).
	SalaryMin int
	SalaryMax int
	// Level is one of the Experience* constants.
	Level string
}

// JobSearchService is the job-seeker's listing search: canned listings
// filtered after a simulated remote-search delay, plus saved-listing
// bookmarks. The delay respects the request context.
type JobSearchService struct {
	Store *store.ListingStore

	// SearchDelay models the remote search latency; shortened in tests.
	SearchDelay time.Duration
}

func NewJobSearchService(st *store.ListingStore) *JobSearchService {
	return &JobSearchService{Store: st, SearchDelay: 500 * time.Millisecond}
}

// Search returns the listings matching every predicate in f, after the
// simulated delay. Unlike the candidate sourcing search, empty criteria
// match everything: the search page opens showing all listings.
func (s *JobSearchService) Search(ctx context.Context, f JobSearchFilter) ([]models.JobListing, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.SearchDelay):
	}

	out := []models.JobListing{}
	for _, listing := range s.Store.List() {
		if matchesListing(listing, f) {
			out = append(out, listing)
		}
	}
	return out, nil
}

func (s *JobSearchService) Save(id string) error {
	return s.Store.Save(id)
}

func (s *JobSearchService) Unsave(id string) error {
	return s.Store.Unsave(id)
}

func (s *JobSearchService) Saved() []models.JobListing {
	return s.Store.Saved()
}

func matchesListing(l models.JobListing, f JobSearchFilter) bool {
	if keyword := strings.ToLower(f.Keyword); keyword != "" &&
		!strings.Contains(strings.ToLower(l.Title), keyword) &&
		!strings.Contains(strings.ToLower(l.Company), keyword) &&
		!strings.Contains(strings.ToLower(l.Description), keyword) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(l.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Type != "" && f.Type != "all" && l.Type != f.Type {
		return false
	}
	lower := salaryLowerK(l.Salary)
	if f.SalaryMin > 0 && lower < f.SalaryMin {
		return false
	}
	if f.SalaryMax > 0 && lower > f.SalaryMax {
		return false
	}
	return matchesExperience(l.Requirements, f.Level)
}

// matchesExperience buckets a listing by phrases in its requirements:
// "5+"/"senior" read as senior, "2+"/"3+" as mid, and entry level is the
// absence of senior markers.
func matchesExperience(requirements []string, level string) bool {
	reqs := strings.ToLower(strings.Join(requirements, " "))
	switch level {
	case "", ExperienceAll:
		return true
	case ExperienceEntry:
		return !strings.Contains(reqs, "5+") && !strings.Contains(reqs, "senior")
	case ExperienceMid:
		return strings.Contains(reqs, "3+") || strings.Contains(reqs, "2+")
	case ExperienceSenior:
		return strings.Contains(reqs, "5+") || strings.Contains(reqs, "senior")
	default:
		return true
	}
}

// salaryLowerK parses the lower figure of an advertised salary range into
// thousands: "$120,000 - $150,000" -> 120. Listings with no parseable
// figure report 0 and only match unbounded ranges.
func salaryLowerK(salary string) int {
	start := strings.IndexAny(salary, "0123456789")
	if start < 0 {
		return 0
	}
	var digits strings.Builder
	for _, r := range salary[start:] {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			continue
		}
		if r == ',' {
			continue
		}
		break
	}
	n, _ := strconv.Atoi(digits.String())
	return n / 1000
}
