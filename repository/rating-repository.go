package repository

import (
	"time"

	"hackjudge/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Rating is one judge's score and comment for one project on one criterion.
type Rating struct {
	Id         string  `gorm:"primaryKey"`
	Score      float64 `gorm:"not null"`
	Comment    string  `gorm:"not null;default:''"`
	JudgeId    string  `gorm:"not null;index;uniqueIndex:idx_judge_project_criteria"`
	ProjectId  string  `gorm:"not null;index;uniqueIndex:idx_judge_project_criteria"`
	CriteriaId string  `gorm:"not null;uniqueIndex:idx_judge_project_criteria"`
	EventId    string  `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.Id == "" {
		r.Id = uuid.NewString()
	}
	return nil
}

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

func (r *RatingRepository) FindAll() ([]*Rating, error) {
	ratings := make([]*Rating, 0)
	result := r.DB.Find(&ratings)
	if result.Error != nil {
		return nil, result.Error
	}
	return ratings, nil
}

func (r *RatingRepository) GetRatingById(ratingId string) (*Rating, error) {
	rating := Rating{}
	result := r.DB.First(&rating, &Rating{Id: ratingId})
	if result.Error != nil {
		return nil, result.Error
	}
	return &rating, nil
}

func (r *RatingRepository) GetRatingsForEvent(eventId string) ([]*Rating, error) {
	timer := prometheus.NewTimer(metrics.QueryDuration.WithLabelValues("GetRatingsForEvent"))
	defer timer.ObserveDuration()
	ratings := make([]*Rating, 0)
	result := r.DB.Find(&ratings, &Rating{EventId: eventId})
	if result.Error != nil {
		return nil, result.Error
	}
	return ratings, nil
}

func (r *RatingRepository) GetRatingsForProject(projectId string) ([]*Rating, error) {
	ratings := make([]*Rating, 0)
	result := r.DB.Find(&ratings, &Rating{ProjectId: projectId})
	if result.Error != nil {
		return nil, result.Error
	}
	return ratings, nil
}

func (r *RatingRepository) GetRatingsForJudge(judgeId string) ([]*Rating, error) {
	ratings := make([]*Rating, 0)
	result := r.DB.Order("updated_at DESC").Find(&ratings, &Rating{JudgeId: judgeId})
	if result.Error != nil {
		return nil, result.Error
	}
	return ratings, nil
}

// GetRating looks up the single rating a judge gave a project on a criterion.
func (r *RatingRepository) GetRating(judgeId, projectId, criteriaId string) (*Rating, error) {
	rating := Rating{}
	result := r.DB.First(&rating, &Rating{JudgeId: judgeId, ProjectId: projectId, CriteriaId: criteriaId})
	if result.Error != nil {
		return nil, result.Error
	}
	return &rating, nil
}

func (r *RatingRepository) Save(rating *Rating) (*Rating, error) {
	result := r.DB.Save(rating)
	if result.Error != nil {
		return nil, result.Error
	}
	return rating, nil
}

func (r *RatingRepository) Delete(ratingId string) error {
	rating, err := r.GetRatingById(ratingId)
	if err != nil {
		return err
	}
	return r.DB.Delete(rating).Error
}

// CountDistinctRatedProjects counts projects that received at least one
// rating from anyone.
func (r *RatingRepository) CountDistinctRatedProjects() (int64, error) {
	var count int64
	result := r.DB.Model(&Rating{}).Distinct("project_id").Count(&count)
	return count, result.Error
}
