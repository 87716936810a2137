package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushant-97/ats-system/internal/models"
	"github.com/sushant-97/ats-system/internal/store"
)

func interviewFixtures() []models.Interview {
	return []models.Interview{
		{ID: "1", Company: "Acme Inc", Position: "Frontend Developer", Type: models.InterviewTechnical,
			Date: time.Date(2023, 8, 10, 0, 0, 0, 0, time.UTC), Time: "14:00", Duration: 60,
			Status: models.InterviewUpcoming},
		{ID: "2", Company: "Globex Corporation", Position: "Full Stack Engineer", Type: models.InterviewHRScreening,
			Date: time.Date(2023, 8, 10, 0, 0, 0, 0, time.UTC), Time: "10:30", Duration: 30,
			Status: models.InterviewUpcoming},
		{ID: "3", Company: "Stark Industries", Position: "UI/UX Designer", Type: models.InterviewPortfolioReview,
			Date: time.Date(2023, 8, 14, 0, 0, 0, 0, time.UTC), Time: "11:00", Duration: 45,
			Status: models.InterviewCompleted},
	}
}

func newInterviewService() *InterviewService {
	return NewInterviewService(store.NewInterviewStoreWith(interviewFixtures()))
}

func TestInterviewList(t *testing.T) {
	svc := newInterviewService()

	assert.Len(t, svc.List(""), 3)
	assert.Len(t, svc.List(models.InterviewUpcoming), 2)
	assert.Len(t, svc.List(models.InterviewCompleted), 1)
	assert.Empty(t, svc.List(models.InterviewCancelled))
}

func TestInterviewOnDate(t *testing.T) {
	svc := newInterviewService()

	day := svc.OnDate(2023, 8, 10)
	require.Len(t, day, 2)
	assert.Equal(t, "1", day[0].ID)
	assert.Equal(t, "2", day[1].ID)

	assert.Empty(t, svc.OnDate(2023, 8, 11))
}

func TestInterviewSchedule(t *testing.T) {
	svc := newInterviewService()

	iv, err := svc.Schedule(models.Interview{
		Company: "Initech", Position: "Backend Developer",
		Type: models.InterviewSystemDesign,
		Date: time.Date(2023, 8, 20, 0, 0, 0, 0, time.UTC), Time: "09:00",
		Duration: 90, Location: "Remote - Zoom",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, iv.ID)
	assert.Equal(t, models.InterviewUpcoming, iv.Status)
	assert.Len(t, svc.List(""), 4)
}

func TestInterviewScheduleRejectsUnknownType(t *testing.T) {
	svc := newInterviewService()

	_, err := svc.Schedule(models.Interview{Type: "Vibe Check", Duration: 60})
	assert.Error(t, err)
	assert.Len(t, svc.List(""), 3)
}

func TestInterviewScheduleRejectsBadDuration(t *testing.T) {
	svc := newInterviewService()

	_, err := svc.Schedule(models.Interview{Type: models.InterviewTechnical, Duration: 75})
	assert.Error(t, err)
}

func TestInterviewCancelAndComplete(t *testing.T) {
	svc := newInterviewService()

	cancelled, err := svc.Cancel("1")
	require.NoError(t, err)
	assert.Equal(t, models.InterviewCancelled, cancelled.Status)

	completed, err := svc.Complete("2")
	require.NoError(t, err)
	assert.Equal(t, models.InterviewCompleted, completed.Status)

	_, err = svc.Cancel("999")
	assert.ErrorIs(t, err, store.ErrInterviewNotFound)
}
