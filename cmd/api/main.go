package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sushant-97/ats-system/internal/config"
	"github.com/sushant-97/ats-system/internal/handlers"
	"github.com/sushant-97/ats-system/internal/services"
	"github.com/sushant-97/ats-system/internal/store"
)

func main() {
	// 1. Load environment variables; a missing .env is fine, the defaults
	// cover local runs.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 2. In-memory stores, seeded with sample data. State lives only for
	// the lifetime of the process.
	candidateStore := store.NewCandidateStore()
	jobStore := store.NewJobStore()
	applicationStore := store.NewApplicationStore()
	interviewStore := store.NewInterviewStore()
	documentStore := store.NewDocumentStore()
	listingStore := store.NewListingStore()

	// 3. Core services.
	candidateService := services.NewCandidateService(candidateStore)
	jobService := services.NewJobService(jobStore)
	applicationService := services.NewApplicationService(applicationStore)
	interviewService := services.NewInterviewService(interviewStore)
	documentService := services.NewDocumentService(documentStore)
	jobSearchService := services.NewJobSearchService(listingStore)
	sourcingService := services.NewSourcingService(candidateStore)
	dashboardService := services.NewDashboardService(applicationStore, interviewStore)

	// 4. Handlers and router.
	r := handlers.NewRouter(handlers.Handlers{
		Jobs:         handlers.NewJobHandler(jobService, candidateService),
		JobSearch:    handlers.NewJobSearchHandler(jobSearchService),
		Candidates:   handlers.NewCandidateHandler(candidateService),
		Applications: handlers.NewApplicationHandler(applicationService),
		Interviews:   handlers.NewInterviewHandler(interviewService),
		Documents:    handlers.NewDocumentHandler(documentService),
		Dashboard:    handlers.NewDashboardHandler(dashboardService),
		Sourcing:     handlers.NewSourcingHandler(sourcingService),
	})

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
