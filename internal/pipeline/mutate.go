package pipeline

import "github.com/sushant-97/ats-system/internal/models"

// MoveToStage returns a new pool in which the candidate with the given id
// has its stage replaced and its audit fields updated. The second return
// reports whether the id was found; on a miss the original pool is
// returned unchanged so callers can distinguish a no-op from a move.
func MoveToStage(pool []models.Candidate, id string, stage models.Stage) ([]models.Candidate, bool) {
	return mutate(pool, id, func(c *models.Candidate) {
		c.Stage = stage
		c.LastActivity = "Moved to " + stage.Label()
		c.LastActivityDate = "just now"
	})
}

// AddToLeads returns a new pool in which the candidate with the given id
// has been moved into the leads pool at the new stage. Same not-found
// contract as MoveToStage.
func AddToLeads(pool []models.Candidate, id string) ([]models.Candidate, bool) {
	return mutate(pool, id, func(c *models.Candidate) {
		c.Status = models.StatusLeads
		c.Stage = models.StageNew
		c.LastActivity = "Added to leads"
		c.LastActivityDate = "just now"
	})
}

func mutate(pool []models.Candidate, id string, apply func(*models.Candidate)) ([]models.Candidate, bool) {
	for i := range pool {
		if pool[i].ID != id {
			continue
		}
		out := make([]models.Candidate, len(pool))
		copy(out, pool)
		apply(&out[i])
		return out, true
	}
	return pool, false
}
