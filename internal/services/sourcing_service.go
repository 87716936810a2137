package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sushant-97/ats-system/internal/models"
	"github.com/sushant-97/ats-system/internal/store"
)

// Experience level buckets for sourcing results, parsed from the leading
// integer of the free-text experience field ("7 years" -> 7).
const (
	LevelAll    = "all"
	LevelJunior = "junior" // 0-3 years
	LevelMid    = "mid"    // 3-6 years
	LevelSenior = "senior" // 6+ years
)

// SearchExamples are the canned natural-language queries offered in the
// sourcing UI.
var SearchExamples = []string{
	"Sales Engineer with 5+ years of experience in technical sales and solution architecture",
	"Customer Success Manager with SaaS experience and fluent in Spanish",
	"Product manager with experience in B2B software and a background in UX design",
	"Full stack developer proficient in React and Node.js with 3+ years of experience",
	"Marketing professional with content creation experience and SEO knowledge",
}

// SourcingService simulates the natural-language candidate search. Results
// are hardcoded sample data returned after a fixed delay; real AI matching
// is out of scope. The delay respects the request context, so an abandoned
// search is cancelled instead of completing in the background.
type SourcingService struct {
	Repo store.CandidateRepository

	// SearchDelay models the remote search latency; shortened in tests.
	SearchDelay time.Duration
}

func NewSourcingService(repo store.CandidateRepository) *SourcingService {
	return &SourcingService{Repo: repo, SearchDelay: 1500 * time.Millisecond}
}

// Search returns the sourced-candidate fixtures matching the source and
// experience-level filters, after the simulated delay. An empty query
// matches nothing, mirroring the disabled search button in the UI.
func (s *SourcingService) Search(ctx context.Context, query, source, level string) ([]models.Candidate, error) {
	if strings.TrimSpace(query) == "" {
		return []models.Candidate{}, nil
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.SearchDelay):
	}

	results := []models.Candidate{}
	for _, cand := range store.SeedSourcedCandidates() {
		if source != "" && source != LevelAll && !strings.EqualFold(cand.Source, source) {
			continue
		}
		if !matchesLevel(cand.Experience, level) {
			continue
		}
		results = append(results, cand)
	}
	return results, nil
}

// SourceCandidates copies the selected search results into the candidate
// pool as sourced candidates, returning how many were added. Unknown ids
// are skipped, not errors: the selection may be stale against the fixture
// set.
func (s *SourcingService) SourceCandidates(ids []string) int {
	byID := make(map[string]models.Candidate)
	for _, cand := range store.SeedSourcedCandidates() {
		byID[cand.ID] = cand
	}

	added := 0
	for _, id := range ids {
		cand, ok := byID[id]
		if !ok {
			continue
		}
		cand.ID = uuid.NewString()
		cand.Status = models.StatusSourced
		cand.Stage = models.StageNew
		cand.Source = "Sourced (" + cand.Source + ")"
		cand.LastActivity = "Added from sourcing"
		cand.LastActivityDate = "just now"
		s.Repo.Add(cand)
		added++
	}
	return added
}

func matchesLevel(experience, level string) bool {
	years := leadingInt(experience)
	switch level {
	case "", LevelAll:
		return true
	case LevelJunior:
		return years <= 3
	case LevelMid:
		return years >= 3 && years <= 6
	case LevelSenior:
		return years >= 6
	default:
		return true
	}
}

// leadingInt parses the integer prefix of a free-text experience value.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}
