package scoring

import (
	"testing"

	"hackjudge/repository"

	"github.com/stretchr/testify/assert"
)

func TestProjectAverageWeightsByCriteria(t *testing.T) {
	criteria := []*repository.JudgingCriteria{
		{Id: "c1", Weight: 0.5, MaxScore: 10},
		{Id: "c2", Weight: 0.5, MaxScore: 10},
	}
	ratings := []*repository.Rating{
		{JudgeId: "j1", ProjectId: "p1", CriteriaId: "c1", Score: 8},
		{JudgeId: "j1", ProjectId: "p1", CriteriaId: "c2", Score: 6},
	}
	average, rated := ProjectAverage(ratings, criteria)
	assert.True(t, rated)
	assert.InDelta(t, 7.0, average, 1e-9)
}

func TestProjectAverageUnevenWeights(t *testing.T) {
	criteria := []*repository.JudgingCriteria{
		{Id: "c1", Weight: 0.75, MaxScore: 10},
		{Id: "c2", Weight: 0.25, MaxScore: 10},
	}
	ratings := []*repository.Rating{
		{JudgeId: "j1", CriteriaId: "c1", Score: 8},
		{JudgeId: "j1", CriteriaId: "c2", Score: 4},
	}
	average, rated := ProjectAverage(ratings, criteria)
	assert.True(t, rated)
	assert.InDelta(t, 7.0, average, 1e-9)
}

func TestProjectAverageMeansAcrossJudges(t *testing.T) {
	criteria := []*repository.JudgingCriteria{
		{Id: "c1", Weight: 1, MaxScore: 10},
	}
	ratings := []*repository.Rating{
		{JudgeId: "j1", CriteriaId: "c1", Score: 6},
		{JudgeId: "j2", CriteriaId: "c1", Score: 10},
	}
	average, rated := ProjectAverage(ratings, criteria)
	assert.True(t, rated)
	assert.InDelta(t, 8.0, average, 1e-9)
}

func TestProjectAverageJudgeWithPartialRatings(t *testing.T) {
	// a judge who only rated one of two criteria is averaged over the
	// weights they actually used
	criteria := []*repository.JudgingCriteria{
		{Id: "c1", Weight: 0.5, MaxScore: 10},
		{Id: "c2", Weight: 0.5, MaxScore: 10},
	}
	ratings := []*repository.Rating{
		{JudgeId: "j1", CriteriaId: "c1", Score: 8},
		{JudgeId: "j1", CriteriaId: "c2", Score: 6},
		{JudgeId: "j2", CriteriaId: "c1", Score: 9},
	}
	average, rated := ProjectAverage(ratings, criteria)
	assert.True(t, rated)
	assert.InDelta(t, 8.0, average, 1e-9)
}

func TestProjectAverageNoRatings(t *testing.T) {
	average, rated := ProjectAverage(nil, []*repository.JudgingCriteria{{Id: "c1", Weight: 1}})
	assert.False(t, rated)
	assert.Equal(t, 0.0, average)
}

func TestProjectAverageUnknownCriterionFallsBackToUnitWeight(t *testing.T) {
	ratings := []*repository.Rating{
		{JudgeId: "j1", CriteriaId: "gone", Score: 5},
	}
	average, rated := ProjectAverage(ratings, nil)
	assert.True(t, rated)
	assert.InDelta(t, 5.0, average, 1e-9)
}

func TestProjectAverageZeroWeightsNotRated(t *testing.T) {
	criteria := []*repository.JudgingCriteria{{Id: "c1", Weight: 0}}
	ratings := []*repository.Rating{
		{JudgeId: "j1", CriteriaId: "c1", Score: 9},
	}
	average, rated := ProjectAverage(ratings, criteria)
	assert.False(t, rated)
	assert.Equal(t, 0.0, average)
}

func TestProjectRankingsSortDescending(t *testing.T) {
	criteria := []*repository.JudgingCriteria{
		{Id: "c1", Weight: 1, MaxScore: 10},
	}
	projects := []*repository.Project{
		{Id: "p1"}, {Id: "p2"}, {Id: "p3"},
	}
	ratings := []*repository.Rating{
		{JudgeId: "j1", ProjectId: "p1", CriteriaId: "c1", Score: 6},
		{JudgeId: "j1", ProjectId: "p2", CriteriaId: "c1", Score: 9},
		{JudgeId: "j2", ProjectId: "p2", CriteriaId: "c1", Score: 7},
	}
	rankings := ProjectRankings(projects, ratings, criteria)

	assert.Len(t, rankings, 3)
	assert.Equal(t, "p2", rankings[0].ProjectId)
	assert.InDelta(t, 8.0, rankings[0].Average, 1e-9)
	assert.Equal(t, 2, rankings[0].JudgesRated)
	assert.Equal(t, "p1", rankings[1].ProjectId)
	assert.Equal(t, 1, rankings[1].JudgesRated)

	// unrated projects sort last and are flagged
	assert.Equal(t, "p3", rankings[2].ProjectId)
	assert.False(t, rankings[2].Rated)
	assert.Equal(t, 0, rankings[2].JudgesRated)
}
