package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushant-97/ats-system/internal/models"
	"github.com/sushant-97/ats-system/internal/pipeline"
	"github.com/sushant-97/ats-system/internal/store"
)

func candidateFixtures() []models.Candidate {
	return []models.Candidate{
		{ID: "1", Name: "Mia Persona", Status: models.StatusLeads, Stage: models.StageNew, AIMatch: true, MatchScore: 92, Source: "AI Match"},
		{ID: "101", Name: "Mia Williams", JobID: "1", Status: models.StatusApplicationReview, Stage: models.StageNew, AIMatch: true, MatchScore: 92, Source: "LinkedIn"},
		{ID: "103", Name: "Emily Foster", JobID: "1", Status: models.StatusInterview, Stage: models.StageTechnicalInterview, AIMatch: true, MatchScore: 95, Source: "Referral"},
		{ID: "201", Name: "David Garcia", JobID: "2", Status: models.StatusApplicationReview, Stage: models.StageNew, AIMatch: true, MatchScore: 88, Source: "LinkedIn"},
	}
}

func newCandidateService() *CandidateService {
	return NewCandidateService(store.NewCandidateStoreWith(candidateFixtures()))
}

func TestCandidateListScopedToJob(t *testing.T) {
	svc := newCandidateService()

	all := svc.List("", pipeline.Criteria{})
	assert.Len(t, all, 4)

	job1 := svc.List("1", pipeline.Criteria{})
	require.Len(t, job1, 2)
	assert.Equal(t, "101", job1[0].ID)
	assert.Equal(t, "103", job1[1].ID)
}

func TestCandidateListWithCriteria(t *testing.T) {
	svc := newCandidateService()

	interviewing := svc.List("1", pipeline.Criteria{StageGroup: models.StatusInterview})
	require.Len(t, interviewing, 1)
	assert.Equal(t, "103", interviewing[0].ID)
}

func TestCandidateBoard(t *testing.T) {
	svc := newCandidateService()

	board := svc.Board("1", pipeline.Criteria{})
	assert.Len(t, board[models.StageNew], 1)
	assert.Len(t, board[models.StageTechnicalInterview], 1)
	// Empty stages are still present so the board renders every column.
	require.Contains(t, board, models.StageOffer)
	assert.Empty(t, board[models.StageOffer])
}

func TestCandidateCounts(t *testing.T) {
	svc := newCandidateService()

	byStatus, byGroup := svc.Counts("")
	assert.Equal(t, 1, byStatus[models.StatusLeads])
	assert.Equal(t, 2, byStatus[models.StatusApplicationReview])
	// Stage groups count by stage, not by status: three candidates sit on
	// the stages application_review covers.
	assert.Equal(t, 3, byGroup[models.StatusApplicationReview])
	assert.Equal(t, 1, byGroup[models.StatusInterview])
}

func TestCandidateMoveStage(t *testing.T) {
	svc := newCandidateService()

	moved, err := svc.MoveStage("101", models.StageScreening)
	require.NoError(t, err)
	assert.Equal(t, models.StageScreening, moved.Stage)

	_, err = svc.MoveStage("nope", models.StageScreening)
	assert.ErrorIs(t, err, store.ErrCandidateNotFound)
}
