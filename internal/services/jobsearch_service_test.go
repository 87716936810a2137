package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushant-97/ats-system/internal/models"
	"github.com/sushant-97/ats-system/internal/store"
)

func listingFixtures() []models.JobListing {
	return []models.JobListing{
		{ID: "1", Title: "Senior Frontend Developer", Company: "Acme Technology",
			Location: "Remote", Type: "Full-time", Salary: "$120,000 - $150,000",
			Description:  "Proficient in React and TypeScript.",
			Requirements: []string{"5+ years of frontend development experience", "Expert knowledge of React"}},
		{ID: "2", Title: "Full Stack Engineer", Company: "Globex Corporation",
			Location: "San Francisco, CA", Type: "Full-time", Salary: "$130,000 - $160,000",
			Description:  "Work across our entire tech stack.",
			Requirements: []string{"3+ years of full stack development experience"}},
		{ID: "3", Title: "UX/UI Designer", Company: "Stark Industries",
			Location: "Remote", Type: "Contract", Salary: "$90,000 - $110,000",
			Description:  "User-centered design for our products.",
			Requirements: []string{"3+ years of UX/UI design experience"}},
		{ID: "4", Title: "Data Scientist", Company: "Oscorp Industries",
			Location: "Boston, MA", Type: "Full-time", Salary: "$140,000 - $170,000",
			Description:  "Machine learning models over complex datasets.",
			Requirements: []string{"MS or PhD in Computer Science", "Machine learning expertise"}},
	}
}

func newJobSearchService() *JobSearchService {
	svc := NewJobSearchService(store.NewListingStoreWith(listingFixtures()))
	svc.SearchDelay = time.Millisecond
	return svc
}

func searchIDs(t *testing.T, svc *JobSearchService, f JobSearchFilter) []string {
	t.Helper()
	listings, err := svc.Search(context.Background(), f)
	require.NoError(t, err)
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func TestJobSearchEmptyFilterMatchesAll(t *testing.T) {
	svc := newJobSearchService()
	assert.Equal(t, []string{"1", "2", "3", "4"}, searchIDs(t, svc, JobSearchFilter{}))
}

func TestJobSearchKeyword(t *testing.T) {
	svc := newJobSearchService()

	// Keyword matches title, company or description.
	assert.Equal(t, []string{"1"}, searchIDs(t, svc, JobSearchFilter{Keyword: "react"}))
	assert.Equal(t, []string{"2"}, searchIDs(t, svc, JobSearchFilter{Keyword: "globex"}))
	assert.Equal(t, []string{"4"}, searchIDs(t, svc, JobSearchFilter{Keyword: "datasets"}))
	assert.Empty(t, searchIDs(t, svc, JobSearchFilter{Keyword: "blockchain"}))
}

func TestJobSearchLocationAndType(t *testing.T) {
	svc := newJobSearchService()

	assert.Equal(t, []string{"1", "3"}, searchIDs(t, svc, JobSearchFilter{Location: "remote"}))
	assert.Equal(t, []string{"3"}, searchIDs(t, svc, JobSearchFilter{Type: "Contract"}))
	assert.Equal(t, []string{"1", "2", "3", "4"}, searchIDs(t, svc, JobSearchFilter{Type: "all"}))
}

func TestJobSearchSalaryRange(t *testing.T) {
	svc := newJobSearchService()

	// Bounds apply to the lower figure of the advertised range, in
	// thousands: 120, 130, 90, 140.
	assert.Equal(t, []string{"1", "2", "4"}, searchIDs(t, svc, JobSearchFilter{SalaryMin: 100}))
	assert.Equal(t, []string{"3"}, searchIDs(t, svc, JobSearchFilter{SalaryMax: 100}))
	assert.Equal(t, []string{"1", "2"}, searchIDs(t, svc, JobSearchFilter{SalaryMin: 100, SalaryMax: 135}))
}

func TestJobSearchExperienceLevel(t *testing.T) {
	svc := newJobSearchService()

	assert.Equal(t, []string{"2", "3", "4"}, searchIDs(t, svc, JobSearchFilter{Level: ExperienceEntry}))
	assert.Equal(t, []string{"2", "3"}, searchIDs(t, svc, JobSearchFilter{Level: ExperienceMid}))
	assert.Equal(t, []string{"1"}, searchIDs(t, svc, JobSearchFilter{Level: ExperienceSenior}))
}

func TestJobSearchPredicatesCombine(t *testing.T) {
	svc := newJobSearchService()

	got := searchIDs(t, svc, JobSearchFilter{Keyword: "engineer", Type: "Full-time", SalaryMin: 125})
	assert.Equal(t, []string{"2"}, got)
}

func TestJobSearchCancelled(t *testing.T) {
	svc := newJobSearchService()
	svc.SearchDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Search(ctx, JobSearchFilter{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJobSearchSaveRoundTrip(t *testing.T) {
	svc := newJobSearchService()

	require.NoError(t, svc.Save("2"))
	saved := svc.Saved()
	require.Len(t, saved, 1)
	assert.Equal(t, "Full Stack Engineer", saved[0].Title)

	require.NoError(t, svc.Unsave("2"))
	assert.Empty(t, svc.Saved())

	assert.ErrorIs(t, svc.Save("999"), store.ErrListingNotFound)
	assert.ErrorIs(t, svc.Unsave("2"), store.ErrListingNotSaved)
}

func TestSalaryLowerK(t *testing.T) {
	assert.Equal(t, 120, salaryLowerK("$120,000 - $150,000"))
	assert.Equal(t, 90, salaryLowerK("$90,000 - $110,000"))
	assert.Equal(t, 0, salaryLowerK("Competitive"))
}
