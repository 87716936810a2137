package services

import (
	"github.com/sushant-97/ats-system/internal/models"
	"github.com/sushant-97/ats-system/internal/pipeline"
	"github.com/sushant-97/ats-system/internal/store"
)

// CandidateService exposes the candidate pipeline to the handlers: filtered
// list views, the stage board, tab counts, and stage mutations. All reads go
// through the pure filter engine so view logic stays testable on its own.
type CandidateService struct {
	Repo store.CandidateRepository
}

func NewCandidateService(repo store.CandidateRepository) *CandidateService {
	return &CandidateService{Repo: repo}
}

// List returns the candidates matching the criteria, restricted to a job's
// pool when jobID is non-empty.
func (s *CandidateService) List(jobID string, criteria pipeline.Criteria) []models.Candidate {
	return pipeline.Filter(s.poolFor(jobID), criteria)
}

// Board groups a (possibly filtered) pool by stage for the pipeline view.
func (s *CandidateService) Board(jobID string, criteria pipeline.Criteria) map[models.Stage][]models.Candidate {
	return pipeline.GroupByStage(pipeline.Filter(s.poolFor(jobID), criteria))
}

// Counts returns the per-pool and per-stage-group tallies the stage
// navigator renders as tab badges.
func (s *CandidateService) Counts(jobID string) (map[models.CandidateStatus]int, map[models.CandidateStatus]int) {
	pool := s.poolFor(jobID)
	return pipeline.CountByStatus(pool), pipeline.CountByStageGroup(pool)
}

func (s *CandidateService) Get(id string) (models.Candidate, error) {
	return s.Repo.Get(id)
}

// MoveStage advances (or reverts) a candidate's pipeline stage.
func (s *CandidateService) MoveStage(id string, stage models.Stage) (models.Candidate, error) {
	return s.Repo.MoveStage(id, stage)
}

// AddToLeads promotes a sourced candidate into the leads pool.
func (s *CandidateService) AddToLeads(id string) (models.Candidate, error) {
	return s.Repo.AddToLeads(id)
}

func (s *CandidateService) poolFor(jobID string) []models.Candidate {
	pool := s.Repo.List()
	if jobID == "" {
		return pool
	}
	scoped := pool[:0:0]
	for _, c := range pool {
		if c.JobID == jobID {
			scoped = append(scoped, c)
		}
	}
	return scoped
}
