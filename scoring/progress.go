package scoring

import (
	"hackjudge/repository"
)

// Progress tracks how far a judge has come through an event's projects. A
// project counts as rated once the judge has scored it on at least one
// criterion.
type Progress struct {
	RatedCount int     `json:"rated_count"`
	TotalCount int     `json:"total_count"`
	Percentage float64 `json:"percentage"`
}

func JudgeProgress(judgeId string, eventRatings []*repository.Rating, totalProjects int) Progress {
	rated := make(map[string]bool)
	for _, rating := range eventRatings {
		if rating.JudgeId == judgeId {
			rated[rating.ProjectId] = true
		}
	}
	progress := Progress{
		RatedCount: len(rated),
		TotalCount: totalProjects,
	}
	if totalProjects > 0 {
		progress.Percentage = float64(progress.RatedCount) / float64(totalProjects) * 100
		if progress.Percentage > 100 {
			progress.Percentage = 100
		}
	}
	return progress
}

// JudgeSummary is the per-judge line on the admin event detail view.
type JudgeSummary struct {
	ParticipationId string                         `json:"participation_id"`
	UserId          string                         `json:"user_id"`
	Name            string                         `json:"name"`
	Email           string                         `json:"email"`
	ProjectsRated   int                            `json:"projects_rated"`
	Status          repository.ParticipationStatus `json:"status"`
}

func JudgeSummaries(participations []*repository.EventParticipation, eventRatings []*repository.Rating) []*JudgeSummary {
	ratedByJudge := make(map[string]map[string]bool)
	for _, rating := range eventRatings {
		if ratedByJudge[rating.JudgeId] == nil {
			ratedByJudge[rating.JudgeId] = make(map[string]bool)
		}
		ratedByJudge[rating.JudgeId][rating.ProjectId] = true
	}

	summaries := make([]*JudgeSummary, 0, len(participations))
	for _, participation := range participations {
		summary := &JudgeSummary{
			ParticipationId: participation.Id,
			UserId:          participation.UserId,
			ProjectsRated:   len(ratedByJudge[participation.UserId]),
			Status:          participation.Status,
		}
		if participation.User != nil {
			summary.Name = participation.User.Name
			summary.Email = participation.User.Email
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// CompletionProgress is the share of approved judges that have rated every
// project of the event, as a percentage.
func CompletionProgress(summaries []*JudgeSummary, totalProjects int) float64 {
	approved := 0
	completed := 0
	for _, summary := range summaries {
		if summary.Status != repository.ParticipationStatusApproved {
			continue
		}
		approved++
		if totalProjects > 0 && summary.ProjectsRated >= totalProjects {
			completed++
		}
	}
	if approved == 0 {
		return 0
	}
	return float64(completed) / float64(approved) * 100
}
