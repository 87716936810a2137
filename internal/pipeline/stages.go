package pipeline

import "github.com/sushant-97/ats-system/internal/models"

// GroupByStage partitions the pool by stage. Every known stage is present
// in the result, with an empty (non-nil) slice when unpopulated, so board
// views can render empty-state columns. Candidates carrying an unknown
// stage are grouped under their raw value rather than dropped.
func GroupByStage(pool []models.Candidate) map[models.Stage][]models.Candidate {
	groups := make(map[models.Stage][]models.Candidate, len(models.AllStages))
	for _, stage := range models.AllStages {
		groups[stage] = []models.Candidate{}
	}
	for _, cand := range pool {
		groups[cand.Stage] = append(groups[cand.Stage], cand)
	}
	return groups
}

// CountByStatus tallies candidates per pool for the stage navigator badges.
func CountByStatus(pool []models.Candidate) map[models.CandidateStatus]int {
	counts := make(map[models.CandidateStatus]int)
	for _, cand := range pool {
		counts[cand.Status]++
	}
	return counts
}

// CountByStageGroup tallies candidates per tab using the stage-group
// mapping, the way the per-job pipeline view labels its tabs.
func CountByStageGroup(pool []models.Candidate) map[models.CandidateStatus]int {
	counts := make(map[models.CandidateStatus]int, len(models.StatusGroups))
	for group := range models.StatusGroups {
		counts[group] = 0
	}
	for _, cand := range pool {
		for group, stages := range models.StatusGroups {
			for _, s := range stages {
				if cand.Stage == s {
					counts[group]++
					break
				}
			}
		}
	}
	return counts
}
