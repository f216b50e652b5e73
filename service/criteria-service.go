package service

import (
	"errors"

	"hackjudge/app_error"
	"hackjudge/repository"

	"gorm.io/gorm"
)

var ErrInvalidMaxScore = errors.New("max score must be positive")

type CriteriaService struct {
	criteriaRepository *repository.CriteriaRepository
	eventRepository    *repository.EventRepository
}

func NewCriteriaService(db *gorm.DB) *CriteriaService {
	return &CriteriaService{
		criteriaRepository: repository.NewCriteriaRepository(db),
		eventRepository:    repository.NewEventRepository(db),
	}
}

func (s *CriteriaService) GetAllCriteria() ([]*repository.JudgingCriteria, error) {
	return s.criteriaRepository.FindAll()
}

func (s *CriteriaService) GetCriteriaById(criteriaId string) (*repository.JudgingCriteria, error) {
	return s.criteriaRepository.GetCriteriaById(criteriaId)
}

func (s *CriteriaService) GetCriteriaForEvent(eventId string) ([]*repository.JudgingCriteria, error) {
	if _, err := s.eventRepository.GetEventById(eventId); err != nil {
		return nil, err
	}
	return s.criteriaRepository.GetCriteriaForEvent(eventId)
}

func (s *CriteriaService) CreateCriteria(criteria *repository.JudgingCriteria) (*repository.JudgingCriteria, error) {
	if criteria.MaxScore <= 0 {
		return nil, app_error.New(ErrInvalidMaxScore, 400)
	}
	if _, err := s.eventRepository.GetEventById(criteria.EventId); err != nil {
		return nil, err
	}
	return s.criteriaRepository.Save(criteria)
}

func (s *CriteriaService) UpdateCriteria(criteriaId string, update *repository.JudgingCriteria) (*repository.JudgingCriteria, error) {
	criteria, err := s.criteriaRepository.GetCriteriaById(criteriaId)
	if err != nil {
		return nil, err
	}
	if update.Name != "" {
		criteria.Name = update.Name
	}
	if update.Description != "" {
		criteria.Description = update.Description
	}
	if update.MaxScore != 0 {
		if update.MaxScore < 0 {
			return nil, app_error.New(ErrInvalidMaxScore, 400)
		}
		criteria.MaxScore = update.MaxScore
	}
	if update.Weight != 0 {
		criteria.Weight = update.Weight
	}
	return s.criteriaRepository.Save(criteria)
}

func (s *CriteriaService) DeleteCriteria(criteriaId string) error {
	return s.criteriaRepository.Delete(criteriaId)
}
