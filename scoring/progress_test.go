package scoring

import (
	"testing"

	"hackjudge/repository"

	"github.com/stretchr/testify/assert"
)

func TestJudgeProgressCountsDistinctProjects(t *testing.T) {
	ratings := []*repository.Rating{
		{JudgeId: "j1", ProjectId: "p1", CriteriaId: "c1"},
		{JudgeId: "j1", ProjectId: "p1", CriteriaId: "c2"},
		{JudgeId: "j1", ProjectId: "p2", CriteriaId: "c1"},
		{JudgeId: "j2", ProjectId: "p3", CriteriaId: "c1"},
	}
	progress := JudgeProgress("j1", ratings, 4)
	assert.Equal(t, 2, progress.RatedCount)
	assert.Equal(t, 4, progress.TotalCount)
	assert.InDelta(t, 50.0, progress.Percentage, 1e-9)
}

func TestJudgeProgressSingleCriterionCountsAsRated(t *testing.T) {
	ratings := []*repository.Rating{
		{JudgeId: "j1", ProjectId: "p1", CriteriaId: "c1"},
	}
	progress := JudgeProgress("j1", ratings, 1)
	assert.Equal(t, 1, progress.RatedCount)
	assert.InDelta(t, 100.0, progress.Percentage, 1e-9)
}

func TestJudgeProgressNoProjects(t *testing.T) {
	progress := JudgeProgress("j1", nil, 0)
	assert.Equal(t, 0, progress.RatedCount)
	assert.Equal(t, 0, progress.TotalCount)
	assert.Equal(t, 0.0, progress.Percentage)
}

func TestJudgeProgressClampedAtHundred(t *testing.T) {
	// ratings can outlive their project's deletion
	ratings := []*repository.Rating{
		{JudgeId: "j1", ProjectId: "p1", CriteriaId: "c1"},
		{JudgeId: "j1", ProjectId: "p2", CriteriaId: "c1"},
	}
	progress := JudgeProgress("j1", ratings, 1)
	assert.Equal(t, 100.0, progress.Percentage)
}

func TestJudgeSummaries(t *testing.T) {
	participations := []*repository.EventParticipation{
		{Id: "ep1", UserId: "j1", Status: repository.ParticipationStatusApproved,
			User: &repository.User{Name: "Sarah Johnson", Email: "sarah@example.com"}},
		{Id: "ep2", UserId: "j2", Status: repository.ParticipationStatusPending},
	}
	ratings := []*repository.Rating{
		{JudgeId: "j1", ProjectId: "p1"},
		{JudgeId: "j1", ProjectId: "p2"},
	}
	summaries := JudgeSummaries(participations, ratings)
	assert.Len(t, summaries, 2)
	assert.Equal(t, 2, summaries[0].ProjectsRated)
	assert.Equal(t, "Sarah Johnson", summaries[0].Name)
	assert.Equal(t, 0, summaries[1].ProjectsRated)
	assert.Equal(t, repository.ParticipationStatusPending, summaries[1].Status)
}

func TestCompletionProgress(t *testing.T) {
	summaries := []*JudgeSummary{
		{Status: repository.ParticipationStatusApproved, ProjectsRated: 3},
		{Status: repository.ParticipationStatusApproved, ProjectsRated: 1},
		{Status: repository.ParticipationStatusPending, ProjectsRated: 3},
	}
	assert.InDelta(t, 50.0, CompletionProgress(summaries, 3), 1e-9)
}

func TestCompletionProgressNoApprovedJudges(t *testing.T) {
	summaries := []*JudgeSummary{
		{Status: repository.ParticipationStatusPending, ProjectsRated: 3},
	}
	assert.Equal(t, 0.0, CompletionProgress(summaries, 3))
}

func TestCompletionProgressNoProjects(t *testing.T) {
	summaries := []*JudgeSummary{
		{Status: repository.ParticipationStatusApproved, ProjectsRated: 0},
	}
	assert.Equal(t, 0.0, CompletionProgress(summaries, 0))
}
