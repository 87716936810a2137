package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushant-97/ats-system/internal/models"
)

func samplePool() []models.Candidate {
	return []models.Candidate{
		{
			ID: "1", Name: "Mia Persona", Position: "Associate Customer Success Manager",
			Status: models.StatusLeads, Stage: models.StageNew,
			AIMatch: true, MatchScore: 92, Source: "AI Match", Location: "Barcelona, Spain",
		},
		{
			ID: "2", Name: "Lil's Thompson", Position: "Senior Outbound Sales Developer",
			Status: models.StatusLeads, Stage: models.StageNew,
			AIMatch: true, MatchScore: 87, Source: "AI Match", Location: "London, UK",
		},
		{
			ID: "9", Name: "Thomas Wright", Position: "Technical Sales Engineer",
			Status: models.StatusSourced, Stage: models.StageNew,
			AIMatch: false, MatchScore: 0, Source: "Sourced (LinkedIn)", Location: "Chicago, USA",
		},
		{
			ID: "103", Name: "Emily Foster", Position: "React Developer",
			Status: models.StatusInterview, Stage: models.StageTechnicalInterview,
			AIMatch: true, MatchScore: 95, Source: "Referral", Location: "Remote",
		},
		{
			ID: "404", Name: "Sarah Miller", Position: "Technical Account Manager",
			Status: models.StatusRejected, Stage: models.StageRejected,
			AIMatch: true, MatchScore: 75, Source: "Indeed", Location: "Remote",
		},
	}
}

func ids(pool []models.Candidate) []string {
	out := make([]string, len(pool))
	for i, c := range pool {
		out[i] = c.ID
	}
	return out
}

func TestFilterEmptyCriteriaMatchesAll(t *testing.T) {
	pool := samplePool()
	got := Filter(pool, Criteria{})
	assert.Equal(t, ids(pool), ids(got))
}

func TestFilterIdempotent(t *testing.T) {
	pool := samplePool()
	criteria := Criteria{Source: SourceAI, Match: MatchMedium}

	first := Filter(pool, criteria)
	second := Filter(pool, criteria)
	assert.Equal(t, first, second)

	// The input pool must not be mutated by filtering.
	assert.Equal(t, samplePool(), pool)
}

func TestFilterByStatus(t *testing.T) {
	got := Filter(samplePool(), Criteria{Status: models.StatusLeads})
	assert.Equal(t, []string{"1", "2"}, ids(got))
}

func TestFilterByStageGroup(t *testing.T) {
	got := Filter(samplePool(), Criteria{StageGroup: models.StatusInterview})
	assert.Equal(t, []string{"103"}, ids(got))

	got = Filter(samplePool(), Criteria{StageGroup: models.StatusApplicationReview})
	assert.Equal(t, []string{"1", "2", "9"}, ids(got))
}

func TestFilterBySearchTerm(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{"name match", "thompson", []string{"2"}},
		{"position match", "sales", []string{"2", "9"}},
		{"location match", "remote", []string{"103", "404"}},
		{"case insensitive", "MIA", []string{"1"}},
		{"empty matches all", "", []string{"1", "2", "9", "103", "404"}},
		{"no match", "zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(samplePool(), Criteria{SearchTerm: tt.term})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

// The scenario from the leads/sourced split: "ai" selects AI matches,
// "sourced" selects candidates whose source contains "Sourced".
func TestFilterBySourceBuckets(t *testing.T) {
	pool := []models.Candidate{
		{ID: "1", MatchScore: 92, AIMatch: true, Source: "AI Match"},
		{ID: "9", MatchScore: 0, AIMatch: false, Source: "Sourced (LinkedIn)"},
	}

	got := Filter(pool, Criteria{Source: SourceAI})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = Filter(pool, Criteria{Source: SourceSourced})
	require.Len(t, got, 1)
	assert.Equal(t, "9", got[0].ID)
}

func TestFilterBySourceExact(t *testing.T) {
	got := Filter(samplePool(), Criteria{Source: "referral"})
	assert.Equal(t, []string{"103"}, ids(got))

	got = Filter(samplePool(), Criteria{Source: "Indeed"})
	assert.Equal(t, []string{"404"}, ids(got))
}

func TestMatchBucketsPartitionScores(t *testing.T) {
	// Every AI-matched candidate lands in exactly one bucket, and the
	// union of the three buckets is the "all" result.
	pool := samplePool()
	aiOnly := Filter(pool, Criteria{Source: SourceAI})

	high := Filter(pool, Criteria{Source: SourceAI, Match: MatchHigh})
	medium := Filter(pool, Criteria{Source: SourceAI, Match: MatchMedium})
	low := Filter(pool, Criteria{Source: SourceAI, Match: MatchLow})

	assert.Equal(t, len(aiOnly), len(high)+len(medium)+len(low))

	seen := map[string]int{}
	for _, c := range high {
		assert.GreaterOrEqual(t, c.MatchScore, 90)
		seen[c.ID]++
	}
	for _, c := range medium {
		assert.GreaterOrEqual(t, c.MatchScore, 80)
		assert.Less(t, c.MatchScore, 90)
		seen[c.ID]++
	}
	for _, c := range low {
		assert.Less(t, c.MatchScore, 80)
		seen[c.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "candidate %s in more than one bucket", id)
	}
}

func TestMatchBucketsExcludeNonAICandidates(t *testing.T) {
	// A candidate without an AI match reports score 0 but must not show
	// up in the "low" bucket; its score is meaningless.
	for _, bucket := range []string{MatchHigh, MatchMedium, MatchLow} {
		got := Filter(samplePool(), Criteria{Match: bucket})
		for _, c := range got {
			assert.True(t, c.AIMatch, "bucket %s leaked non-AI candidate %s", bucket, c.ID)
		}
	}
}

func TestMatchBucketBoundaries(t *testing.T) {
	pool := []models.Candidate{
		{ID: "a", AIMatch: true, MatchScore: 100},
		{ID: "b", AIMatch: true, MatchScore: 90},
		{ID: "c", AIMatch: true, MatchScore: 89},
		{ID: "d", AIMatch: true, MatchScore: 80},
		{ID: "e", AIMatch: true, MatchScore: 79},
		{ID: "f", AIMatch: true, MatchScore: 0},
	}
	assert.Equal(t, []string{"a", "b"}, ids(Filter(pool, Criteria{Match: MatchHigh})))
	assert.Equal(t, []string{"c", "d"}, ids(Filter(pool, Criteria{Match: MatchMedium})))
	assert.Equal(t, []string{"e", "f"}, ids(Filter(pool, Criteria{Match: MatchLow})))
}

func TestFilterPredicatesCombineWithAnd(t *testing.T) {
	got := Filter(samplePool(), Criteria{
		Status:     models.StatusLeads,
		SearchTerm: "manager",
		Source:     SourceAI,
		Match:      MatchHigh,
	})
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestSortStability(t *testing.T) {
	// Two candidates share a score; the stable sort keeps their insertion
	// order in both directions, only the distinct-score candidate moves.
	pool := []models.Candidate{
		{ID: "x", Name: "First", AIMatch: true, MatchScore: 90},
		{ID: "y", Name: "Second", AIMatch: true, MatchScore: 90},
		{ID: "z", Name: "Third", AIMatch: true, MatchScore: 80},
	}

	asc := Filter(pool, Criteria{SortBy: SortByScore})
	assert.Equal(t, []string{"z", "x", "y"}, ids(asc))

	desc := Filter(pool, Criteria{SortBy: SortByScore, Descending: true})
	assert.Equal(t, []string{"x", "y", "z"}, ids(desc))
}

func TestSortByName(t *testing.T) {
	got := Filter(samplePool(), Criteria{SortBy: SortByName})
	assert.Equal(t, []string{"103", "2", "1", "404", "9"}, ids(got))
}
