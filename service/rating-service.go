package service

import (
	"errors"
	"fmt"

	"hackjudge/app_error"
	"hackjudge/metrics"
	"hackjudge/repository"

	"gorm.io/gorm"
)

var ErrScoreOutOfRange = errors.New("score is outside the criterion's range")

type RatingService struct {
	ratingRepository   *repository.RatingRepository
	criteriaRepository *repository.CriteriaRepository
	projectRepository  *repository.ProjectRepository
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{
		ratingRepository:   repository.NewRatingRepository(db),
		criteriaRepository: repository.NewCriteriaRepository(db),
		projectRepository:  repository.NewProjectRepository(db),
	}
}

func (s *RatingService) GetRatingById(ratingId string) (*repository.Rating, error) {
	return s.ratingRepository.GetRatingById(ratingId)
}

func (s *RatingService) GetRatingsForEvent(eventId string) ([]*repository.Rating, error) {
	return s.ratingRepository.GetRatingsForEvent(eventId)
}

func (s *RatingService) GetRatingsForProject(projectId string) ([]*repository.Rating, error) {
	return s.ratingRepository.GetRatingsForProject(projectId)
}

func (s *RatingService) GetRatingsForJudge(judgeId string) ([]*repository.Rating, error) {
	return s.ratingRepository.GetRatingsForJudge(judgeId)
}

// SubmitRating records a judge's score for a project on one criterion. A
// resubmission for the same (judge, project, criterion) replaces the earlier
// score instead of creating a second row.
func (s *RatingService) SubmitRating(rating *repository.Rating) (*repository.Rating, error) {
	criteria, err := s.criteriaRepository.GetCriteriaById(rating.CriteriaId)
	if err != nil {
		return nil, err
	}
	if rating.Score < 0 || rating.Score > criteria.MaxScore {
		return nil, app_error.New(
			fmt.Errorf("%w: %g not in [0, %g]", ErrScoreOutOfRange, rating.Score, criteria.MaxScore), 400)
	}
	project, err := s.projectRepository.GetProjectById(rating.ProjectId)
	if err != nil {
		return nil, err
	}
	rating.EventId = project.EventId

	existing, err := s.ratingRepository.GetRating(rating.JudgeId, rating.ProjectId, rating.CriteriaId)
	if err == nil {
		existing.Score = rating.Score
		existing.Comment = rating.Comment
		return s.ratingRepository.Save(existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	rating, err = s.ratingRepository.Save(rating)
	if err != nil {
		return nil, err
	}
	metrics.RatingsSubmittedCounter.WithLabelValues(rating.EventId).Inc()
	return rating, nil
}

func (s *RatingService) UpdateRating(ratingId string, update *repository.Rating) (*repository.Rating, error) {
	rating, err := s.ratingRepository.GetRatingById(ratingId)
	if err != nil {
		return nil, err
	}
	if update.Comment != "" {
		rating.Comment = update.Comment
	}
	if update.Score != 0 {
		criteria, err := s.criteriaRepository.GetCriteriaById(rating.CriteriaId)
		if err != nil {
			return nil, err
		}
		if update.Score < 0 || update.Score > criteria.MaxScore {
			return nil, app_error.New(
				fmt.Errorf("%w: %g not in [0, %g]", ErrScoreOutOfRange, update.Score, criteria.MaxScore), 400)
		}
		rating.Score = update.Score
	}
	return s.ratingRepository.Save(rating)
}

func (s *RatingService) DeleteRating(ratingId string) error {
	return s.ratingRepository.Delete(ratingId)
}
