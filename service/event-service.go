package service

import (
	"errors"

	"hackjudge/app_error"
	"hackjudge/repository"

	"gorm.io/gorm"
)

var ErrInvalidDateRange = errors.New("end date must not be before start date")

type EventService struct {
	eventRepository *repository.EventRepository
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		eventRepository: repository.NewEventRepository(db),
	}
}

func (s *EventService) GetAllEvents() ([]*repository.Event, error) {
	return s.eventRepository.FindAll()
}

func (s *EventService) GetEventById(eventId string, preloads ...string) (*repository.Event, error) {
	return s.eventRepository.GetEventById(eventId, preloads...)
}

func (s *EventService) CreateEvent(event *repository.Event) (*repository.Event, error) {
	if event.EndDate.Before(event.StartDate) {
		return nil, app_error.New(ErrInvalidDateRange, 400)
	}
	if event.Status == "" {
		event.Status = repository.EventStatusUpcoming
	}
	return s.eventRepository.Save(event)
}

// UpdateEvent merges the set fields of update into the stored event. Status
// transitions are not restricted; the admin UI exposes activate, complete and
// reactivate.
func (s *EventService) UpdateEvent(eventId string, update *repository.Event) (*repository.Event, error) {
	event, err := s.eventRepository.GetEventById(eventId)
	if err != nil {
		return nil, err
	}
	if update.Name != "" {
		event.Name = update.Name
	}
	if update.Description != "" {
		event.Description = update.Description
	}
	if !update.StartDate.IsZero() {
		event.StartDate = update.StartDate
	}
	if !update.EndDate.IsZero() {
		event.EndDate = update.EndDate
	}
	if update.Status != "" {
		event.Status = update.Status
	}
	if event.EndDate.Before(event.StartDate) {
		return nil, app_error.New(ErrInvalidDateRange, 400)
	}
	return s.eventRepository.Save(event)
}

func (s *EventService) DeleteEvent(eventId string) error {
	return s.eventRepository.Delete(eventId)
}
