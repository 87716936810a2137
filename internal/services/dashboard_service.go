package services

import (
	"math"

	"github.com/sushant-97/ats-system/internal/models"
	"github.com/sushant-97/ats-system/internal/store"
)

// DashboardMetrics are the headline numbers on the metric cards.
type DashboardMetrics struct {
	TotalApplications  int     `json:"totalApplications"`
	ActiveApplications int     `json:"activeApplications"`
	TotalInterviews    int     `json:"totalInterviews"`
	UpcomingInterviews int     `json:"upcomingInterviews"`
	TotalOffers        int     `json:"totalOffers"`
	SuccessRate        float64 `json:"successRate"`
}

// DashboardService derives the dashboard numbers from the activity series
// and the live stores.
type DashboardService struct {
	Applications *store.ApplicationStore
	Interviews   *store.InterviewStore
}

func NewDashboardService(apps *store.ApplicationStore, interviews *store.InterviewStore) *DashboardService {
	return &DashboardService{Applications: apps, Interviews: interviews}
}

// Metrics aggregates the monthly series into card totals. Success rate is
// offers over applications, as a percentage rounded to one decimal.
func (s *DashboardService) Metrics() DashboardMetrics {
	var totalApps, totalInterviews, totalOffers int
	for _, month := range store.SeedActivity() {
		totalApps += month.Applications
		totalInterviews += month.Interviews
		totalOffers += month.Offers
	}

	active := 0
	for _, app := range s.Applications.List() {
		if app.Status != models.AppRejected {
			active++
		}
	}

	upcoming := 0
	for _, iv := range s.Interviews.List() {
		if iv.Status == models.InterviewUpcoming {
			upcoming++
		}
	}

	rate := 0.0
	if totalApps > 0 {
		rate = math.Round(float64(totalOffers)/float64(totalApps)*1000) / 10
	}

	return DashboardMetrics{
		TotalApplications:  totalApps,
		ActiveApplications: active,
		TotalInterviews:    totalInterviews,
		UpcomingInterviews: upcoming,
		TotalOffers:        totalOffers,
		SuccessRate:        rate,
	}
}

// Activity returns the monthly series for the bar and line charts.
func (s *DashboardService) Activity() []models.DashboardMonth {
	return store.SeedActivity()
}

// StatusDistribution returns the pie chart series.
func (s *DashboardService) StatusDistribution() []models.StatusSlice {
	return store.SeedStatusDistribution()
}
