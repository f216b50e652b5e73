package scoring

import (
	"sort"

	"hackjudge/repository"
)

// ProjectScore is a project's aggregated standing within an event.
type ProjectScore struct {
	ProjectId   string  `json:"project_id"`
	Average     float64 `json:"average"`
	Rated       bool    `json:"rated"`
	JudgesRated int     `json:"judges_rated"`
}

// ProjectAverage computes a project's weighted mean rating: for every judge,
// sum(score x weight) / sum(weight) over that judge's ratings, then the mean
// across judges. The second return value is false when the project has no
// ratings (or the applicable weights sum to zero), never NaN.
func ProjectAverage(ratings []*repository.Rating, criteria []*repository.JudgingCriteria) (float64, bool) {
	weights := make(map[string]float64, len(criteria))
	for _, criterion := range criteria {
		weights[criterion.Id] = criterion.Weight
	}

	weightedSums := make(map[string]float64)
	weightSums := make(map[string]float64)
	for _, rating := range ratings {
		weight, ok := weights[rating.CriteriaId]
		if !ok {
			// rating against a deleted criterion, weigh it as a plain score
			weight = 1
		}
		weightedSums[rating.JudgeId] += rating.Score * weight
		weightSums[rating.JudgeId] += weight
	}

	total := 0.0
	judges := 0
	for judgeId, weightSum := range weightSums {
		if weightSum == 0 {
			continue
		}
		total += weightedSums[judgeId] / weightSum
		judges++
	}
	if judges == 0 {
		return 0, false
	}
	return total / float64(judges), true
}

// ProjectRankings scores every project of an event and sorts them by average
// descending. Unrated projects sort last.
func ProjectRankings(projects []*repository.Project, ratings []*repository.Rating, criteria []*repository.JudgingCriteria) []*ProjectScore {
	byProject := make(map[string][]*repository.Rating)
	for _, rating := range ratings {
		byProject[rating.ProjectId] = append(byProject[rating.ProjectId], rating)
	}

	scores := make([]*ProjectScore, 0, len(projects))
	for _, project := range projects {
		projectRatings := byProject[project.Id]
		average, rated := ProjectAverage(projectRatings, criteria)
		judges := make(map[string]bool)
		for _, rating := range projectRatings {
			judges[rating.JudgeId] = true
		}
		scores = append(scores, &ProjectScore{
			ProjectId:   project.Id,
			Average:     average,
			Rated:       rated,
			JudgesRated: len(judges),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Rated != scores[j].Rated {
			return scores[i].Rated
		}
		return scores[i].Average > scores[j].Average
	})
	return scores
}
