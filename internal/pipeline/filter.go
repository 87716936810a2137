// Package pipeline implements the candidate filter-and-stage engine: pure
// functions mapping a candidate pool plus filter criteria to the subset to
// display, the per-stage grouping, and stage-transition results. Nothing in
// this package touches a store or does I/O, so it can be tested in isolation.
package pipeline

import (
	"sort"
	"strings"

	"github.com/sushant-97/ats-system/internal/models"
)

// Source filter buckets with special-case semantics. Any other non-empty,
// non-"all" value is an exact case-insensitive match against the source.
const (
	SourceAll     = "all"
	SourceAI      = "ai"
	SourceSourced = "sourced"
)

// Match quality buckets over the AI match score.
const (
	MatchAll    = "all"
	MatchHigh   = "high"   // score >= 90
	MatchMedium = "medium" // 80 <= score < 90
	MatchLow    = "low"    // score < 80
)

// Sort keys accepted by Filter.
const (
	SortByName     = "name"
	SortByPosition = "position"
	SortByScore    = "score"
)

// Criteria describes one filtering/sorting request. The zero value matches
// every candidate and applies no sort.
type Criteria struct {
	// Status selects the base pool by the candidate's status field.
	// Empty means all pools.
	Status models.CandidateStatus

	// StageGroup selects by stage-group membership (models.StatusGroups),
	// e.g. "application_review" covers the new and screening stages.
	// Empty means no stage-group restriction.
	StageGroup models.CandidateStatus

	// SearchTerm is matched case-insensitively against name, position and
	// location. Empty matches all.
	SearchTerm string

	// Source is "all", "ai", "sourced", or an exact source value.
	Source string

	// Match is one of the Match* bucket constants.
	Match string

	// SortBy is one of the SortBy* constants; empty preserves pool order.
	SortBy     string
	Descending bool
}

// Filter returns the candidates matching every predicate in c, ordered
// stably. The input pool is never mutated; the result is a fresh slice.
func Filter(pool []models.Candidate, c Criteria) []models.Candidate {
	out := make([]models.Candidate, 0, len(pool))
	for _, cand := range pool {
		if matches(cand, c) {
			out = append(out, cand)
		}
	}
	sortCandidates(out, c.SortBy, c.Descending)
	return out
}

func matches(cand models.Candidate, c Criteria) bool {
	if c.Status != "" && cand.Status != c.Status {
		return false
	}
	if c.StageGroup != "" && !inStageGroup(cand.Stage, c.StageGroup) {
		return false
	}
	if !matchesSearch(cand, c.SearchTerm) {
		return false
	}
	if !matchesSource(cand, c.Source) {
		return false
	}
	return matchesQuality(cand, c.Match)
}

func inStageGroup(stage models.Stage, group models.CandidateStatus) bool {
	for _, s := range models.StatusGroups[group] {
		if s == stage {
			return true
		}
	}
	return false
}

func matchesSearch(cand models.Candidate, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(cand.Name), term) ||
		strings.Contains(strings.ToLower(cand.Position), term) ||
		strings.Contains(strings.ToLower(cand.Location), term)
}

func matchesSource(cand models.Candidate, source string) bool {
	switch source {
	case "", SourceAll:
		return true
	case SourceAI:
		return cand.AIMatch
	case SourceSourced:
		return strings.Contains(cand.Source, "Sourced")
	default:
		return strings.EqualFold(cand.Source, source)
	}
}

// matchesQuality applies the score bucket. Candidates without an AI match
// carry no meaningful score and are excluded from every score-based bucket.
func matchesQuality(cand models.Candidate, match string) bool {
	switch match {
	case "", MatchAll:
		return true
	case MatchHigh:
		return cand.AIMatch && cand.MatchScore >= 90
	case MatchMedium:
		return cand.AIMatch && cand.MatchScore >= 80 && cand.MatchScore < 90
	case MatchLow:
		return cand.AIMatch && cand.MatchScore < 80
	default:
		return false
	}
}

// sortCandidates orders in place. SliceStable keeps the relative order of
// equal keys so repeated filtering is deterministic.
func sortCandidates(pool []models.Candidate, sortBy string, descending bool) {
	var less func(a, b models.Candidate) bool
	switch sortBy {
	case SortByName:
		less = func(a, b models.Candidate) bool { return a.Name < b.Name }
	case SortByPosition:
		less = func(a, b models.Candidate) bool { return a.Position < b.Position }
	case SortByScore:
		less = func(a, b models.Candidate) bool { return a.MatchScore < b.MatchScore }
	default:
		return
	}
	sort.SliceStable(pool, func(i, j int) bool {
		if descending {
			return less(pool[j], pool[i])
		}
		return less(pool[i], pool[j])
	})
}
