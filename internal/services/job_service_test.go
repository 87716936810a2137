package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushant-97/ats-system/internal/models"
	"github.com/sushant-97/ats-system/internal/store"
)

func jobFixtures() []models.Job {
	return []models.Job{
		{ID: "1", Title: "Senior Frontend Developer", Status: models.JobPublished, DaysActive: 14,
			Priority: models.PriorityHigh, Candidates: models.JobCandidateCounts{Total: 18}},
		{ID: "2", Title: "Product Manager", Status: models.JobPublished, DaysActive: 21,
			Priority: models.PriorityMedium, Candidates: models.JobCandidateCounts{Total: 12}},
		{ID: "3", Title: "DevOps Engineer", Status: models.JobDraft, DaysActive: 0,
			Priority: models.PriorityLow},
	}
}

func newJobService() *JobService {
	return NewJobService(store.NewJobStoreWith(jobFixtures()))
}

func TestJobListStatusFilter(t *testing.T) {
	svc := newJobService()

	assert.Len(t, svc.List(JobFilter{}), 3)
	assert.Len(t, svc.List(JobFilter{Status: "all"}), 3)

	published := svc.List(JobFilter{Status: "Published"})
	require.Len(t, published, 2)

	drafts := svc.List(JobFilter{Status: "Draft"})
	require.Len(t, drafts, 1)
	assert.Equal(t, "3", drafts[0].ID)
}

func TestJobListSort(t *testing.T) {
	svc := newJobService()

	byDays := svc.List(JobFilter{SortBy: "daysActive", Order: "desc"})
	assert.Equal(t, "2", byDays[0].ID)

	byTitle := svc.List(JobFilter{SortBy: "title", Order: "asc"})
	assert.Equal(t, "DevOps Engineer", byTitle[0].Title)

	byPriority := svc.List(JobFilter{SortBy: "priority", Order: "desc"})
	assert.Equal(t, models.PriorityHigh, byPriority[0].Priority)

	byCandidates := svc.List(JobFilter{SortBy: "candidates", Order: "desc"})
	assert.Equal(t, 18, byCandidates[0].Candidates.Total)
}

func TestJobGet(t *testing.T) {
	svc := newJobService()

	job, err := svc.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Product Manager", job.Title)

	_, err = svc.Get("999")
	assert.ErrorIs(t, err, store.ErrJobNotFound)
}
