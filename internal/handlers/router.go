package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Jobs         *JobHandler
	JobSearch    *JobSearchHandler
	Candidates   *CandidateHandler
	Applications *ApplicationHandler
	Interviews   *InterviewHandler
	Documents    *DocumentHandler
	Dashboard    *DashboardHandler
	Sourcing     *SourcingHandler
}

// NewRouter builds the gin engine with CORS and the /api/v1 route group.
// Kept separate from main so tests can drive the full HTTP surface.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)

		api.GET("/jobs", h.Jobs.ListJobs)
		api.GET("/jobs/:id", h.Jobs.GetJob)
		api.GET("/jobs/:id/candidates", h.Jobs.JobCandidates)

		api.POST("/jobs/search", h.JobSearch.SearchListings)
		api.GET("/jobs/saved", h.JobSearch.SavedListings)
		api.POST("/jobs/:id/save", h.JobSearch.SaveListing)
		api.DELETE("/jobs/:id/save", h.JobSearch.UnsaveListing)

		api.GET("/candidates", h.Candidates.ListCandidates)
		api.GET("/candidates/board", h.Candidates.Board)
		api.GET("/candidates/counts", h.Candidates.Counts)
		api.GET("/candidates/:id", h.Candidates.GetCandidate)
		api.POST("/candidates/:id/stage", h.Candidates.MoveStage)
		api.POST("/candidates/:id/leads", h.Candidates.AddToLeads)

		api.GET("/applications", h.Applications.ListApplications)
		api.POST("/applications", h.Applications.CreateApplication)
		api.GET("/applications/:id", h.Applications.GetApplication)
		api.PUT("/applications/:id", h.Applications.UpdateApplication)
		api.DELETE("/applications/:id", h.Applications.DeleteApplication)

		api.GET("/interviews", h.Interviews.ListInterviews)
		api.POST("/interviews", h.Interviews.Schedule)
		api.GET("/interviews/day/:date", h.Interviews.OnDay)
		api.POST("/interviews/:id/cancel", h.Interviews.Cancel)
		api.POST("/interviews/:id/complete", h.Interviews.Complete)

		api.GET("/documents", h.Documents.ListDocuments)
		api.POST("/documents/upload", h.Documents.Upload)
		api.GET("/documents/uploads/:id", h.Documents.UploadProgress)
		api.POST("/documents/uploads/:id/cancel", h.Documents.CancelUpload)
		api.DELETE("/documents/:id", h.Documents.DeleteDocument)

		api.GET("/dashboard/metrics", h.Dashboard.Metrics)
		api.GET("/dashboard/activity", h.Dashboard.Activity)
		api.GET("/dashboard/status-distribution", h.Dashboard.StatusDistribution)

		api.POST("/sourcing/search", h.Sourcing.Search)
		api.GET("/sourcing/examples", h.Sourcing.Examples)
		api.POST("/sourcing/candidates", h.Sourcing.SourceCandidates)
	}

	return r
}
