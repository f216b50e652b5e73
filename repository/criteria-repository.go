package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JudgingCriteria is one weighted rubric dimension of an event. Weights
// across an event's criteria are expected to sum to 1.
type JudgingCriteria struct {
	Id          string  `gorm:"primaryKey"`
	Name        string  `gorm:"not null"`
	Description string  `gorm:"not null;default:''"`
	MaxScore    float64 `gorm:"not null"`
	Weight      float64 `gorm:"not null"`
	EventId     string  `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c *JudgingCriteria) BeforeCreate(tx *gorm.DB) error {
	if c.Id == "" {
		c.Id = uuid.NewString()
	}
	return nil
}

type CriteriaRepository struct {
	DB *gorm.DB
}

func NewCriteriaRepository(db *gorm.DB) *CriteriaRepository {
	return &CriteriaRepository{DB: db}
}

func (r *CriteriaRepository) FindAll() ([]*JudgingCriteria, error) {
	criteria := make([]*JudgingCriteria, 0)
	result := r.DB.Find(&criteria)
	if result.Error != nil {
		return nil, result.Error
	}
	return criteria, nil
}

func (r *CriteriaRepository) GetCriteriaById(criteriaId string) (*JudgingCriteria, error) {
	criteria := JudgingCriteria{}
	result := r.DB.First(&criteria, &JudgingCriteria{Id: criteriaId})
	if result.Error != nil {
		return nil, result.Error
	}
	return &criteria, nil
}

func (r *CriteriaRepository) GetCriteriaForEvent(eventId string) ([]*JudgingCriteria, error) {
	criteria := make([]*JudgingCriteria, 0)
	result := r.DB.Order("created_at ASC").Find(&criteria, &JudgingCriteria{EventId: eventId})
	if result.Error != nil {
		return nil, result.Error
	}
	return criteria, nil
}

func (r *CriteriaRepository) Save(criteria *JudgingCriteria) (*JudgingCriteria, error) {
	result := r.DB.Save(criteria)
	if result.Error != nil {
		return nil, result.Error
	}
	return criteria, nil
}

func (r *CriteriaRepository) Delete(criteriaId string) error {
	criteria, err := r.GetCriteriaById(criteriaId)
	if err != nil {
		return err
	}
	return r.DB.Delete(criteria).Error
}
