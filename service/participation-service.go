package service

import (
	"errors"

	"hackjudge/app_error"
	"hackjudge/logging"
	"hackjudge/metrics"
	"hackjudge/repository"

	"gorm.io/gorm"
)

var ErrAlreadyRequested = errors.New("user already has a participation for this event")
var ErrInvalidDecision = errors.New("decision must be approved or rejected")

type ParticipationService struct {
	participationRepository *repository.ParticipationRepository
	eventRepository         *repository.EventRepository
}

func NewParticipationService(db *gorm.DB) *ParticipationService {
	return &ParticipationService{
		participationRepository: repository.NewParticipationRepository(db),
		eventRepository:         repository.NewEventRepository(db),
	}
}

func (s *ParticipationService) GetParticipationById(participationId string) (*repository.EventParticipation, error) {
	return s.participationRepository.GetParticipationById(participationId)
}

func (s *ParticipationService) GetParticipationsForEvent(eventId string) ([]*repository.EventParticipation, error) {
	if _, err := s.eventRepository.GetEventById(eventId); err != nil {
		return nil, err
	}
	return s.participationRepository.GetParticipationsForEvent(eventId)
}

func (s *ParticipationService) GetParticipationsForUser(userId string) ([]*repository.EventParticipation, error) {
	return s.participationRepository.GetParticipationsForUser(userId)
}

func (s *ParticipationService) GetPendingApprovals() ([]*repository.EventParticipation, error) {
	return s.participationRepository.FindPending()
}

// RequestToJoin files a pending participation for a judge on an event. At
// most one participation may exist per (user, event).
func (s *ParticipationService) RequestToJoin(userId, eventId string) (*repository.EventParticipation, error) {
	if _, err := s.eventRepository.GetEventById(eventId); err != nil {
		return nil, err
	}
	_, err := s.participationRepository.GetParticipationForUser(userId, eventId)
	if err == nil {
		return nil, app_error.New(ErrAlreadyRequested, 409)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	participation := &repository.EventParticipation{
		UserId:  userId,
		EventId: eventId,
		Status:  repository.ParticipationStatusPending,
	}
	return s.participationRepository.Save(participation)
}

// Decide moves a participation to approved or rejected. Re-deciding an
// already decided participation is allowed; only status and updated_at
// change.
func (s *ParticipationService) Decide(participationId string, status repository.ParticipationStatus) (*repository.EventParticipation, error) {
	if status != repository.ParticipationStatusApproved && status != repository.ParticipationStatusRejected {
		return nil, app_error.New(ErrInvalidDecision, 400)
	}
	participation, err := s.participationRepository.GetParticipationById(participationId)
	if err != nil {
		return nil, err
	}
	participation.Status = status
	participation, err = s.participationRepository.Save(participation)
	if err != nil {
		return nil, err
	}
	metrics.ParticipationDecisionCounter.WithLabelValues(string(status)).Inc()
	logging.Log.Infof("participation %s decided as %s", participation.Id, status)
	return participation, nil
}

func (s *ParticipationService) DeleteParticipation(participationId string) error {
	return s.participationRepository.Delete(participationId)
}
