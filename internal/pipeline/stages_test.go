package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sushant-97/ats-system/internal/models"
)

func TestGroupByStagePartitionsPool(t *testing.T) {
	pool := samplePool()
	groups := GroupByStage(pool)

	// Every candidate lands in exactly one group and none are lost.
	total := 0
	seen := map[string]bool{}
	for _, members := range groups {
		total += len(members)
		for _, c := range members {
			assert.False(t, seen[c.ID], "candidate %s appears in two groups", c.ID)
			seen[c.ID] = true
		}
	}
	assert.Equal(t, len(pool), total)
}

func TestGroupByStageIncludesEmptyStages(t *testing.T) {
	groups := GroupByStage(nil)
	assert.Len(t, groups, len(models.AllStages))
	for stage, members := range groups {
		assert.NotNil(t, members, "stage %s should map to an empty slice", stage)
		assert.Empty(t, members)
	}
}

func TestGroupByStageKeepsMemberStage(t *testing.T) {
	groups := GroupByStage(samplePool())
	for stage, members := range groups {
		for _, c := range members {
			assert.Equal(t, stage, c.Stage)
		}
	}
	assert.Len(t, groups[models.StageNew], 3)
	assert.Len(t, groups[models.StageTechnicalInterview], 1)
	assert.Len(t, groups[models.StageRejected], 1)
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus(samplePool())
	assert.Equal(t, 2, counts[models.StatusLeads])
	assert.Equal(t, 1, counts[models.StatusSourced])
	assert.Equal(t, 1, counts[models.StatusInterview])
	assert.Equal(t, 1, counts[models.StatusRejected])
}

func TestCountByStageGroup(t *testing.T) {
	counts := CountByStageGroup(samplePool())
	// Three candidates sit in new (application review's stages), one in a
	// technical interview, one rejected; offer is present but empty.
	assert.Equal(t, 3, counts[models.StatusApplicationReview])
	assert.Equal(t, 1, counts[models.StatusInterview])
	assert.Equal(t, 0, counts[models.StatusOffer])
	assert.Equal(t, 1, counts[models.StatusRejected])
}
