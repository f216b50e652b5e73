package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParticipationStatus string

const (
	ParticipationStatusPending  ParticipationStatus = "pending"
	ParticipationStatusApproved ParticipationStatus = "approved"
	ParticipationStatusRejected ParticipationStatus = "rejected"
)

// EventParticipation is a judge's membership request for an event, together
// with its approval state.
type EventParticipation struct {
	Id        string              `gorm:"primaryKey"`
	UserId    string              `gorm:"not null;uniqueIndex:idx_user_event"`
	EventId   string              `gorm:"not null;index;uniqueIndex:idx_user_event"`
	Status    ParticipationStatus `gorm:"type:participation_status;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *User `gorm:"foreignKey:UserId;references:Id;constraint:OnDelete:CASCADE"`
}

func (p *EventParticipation) BeforeCreate(tx *gorm.DB) error {
	if p.Id == "" {
		p.Id = uuid.NewString()
	}
	return nil
}

type ParticipationRepository struct {
	DB *gorm.DB
}

func NewParticipationRepository(db *gorm.DB) *ParticipationRepository {
	return &ParticipationRepository{DB: db}
}

func (r *ParticipationRepository) FindAll() ([]*EventParticipation, error) {
	participations := make([]*EventParticipation, 0)
	result := r.DB.Find(&participations)
	if result.Error != nil {
		return nil, result.Error
	}
	return participations, nil
}

func (r *ParticipationRepository) GetParticipationById(participationId string) (*EventParticipation, error) {
	participation := EventParticipation{}
	result := r.DB.First(&participation, &EventParticipation{Id: participationId})
	if result.Error != nil {
		return nil, result.Error
	}
	return &participation, nil
}

func (r *ParticipationRepository) GetParticipationsForEvent(eventId string) ([]*EventParticipation, error) {
	participations := make([]*EventParticipation, 0)
	result := r.DB.Preload("User").Order("created_at ASC").
		Find(&participations, &EventParticipation{EventId: eventId})
	if result.Error != nil {
		return nil, result.Error
	}
	return participations, nil
}

func (r *ParticipationRepository) GetParticipationsForUser(userId string) ([]*EventParticipation, error) {
	participations := make([]*EventParticipation, 0)
	result := r.DB.Find(&participations, &EventParticipation{UserId: userId})
	if result.Error != nil {
		return nil, result.Error
	}
	return participations, nil
}

func (r *ParticipationRepository) GetParticipationForUser(userId, eventId string) (*EventParticipation, error) {
	participation := EventParticipation{}
	result := r.DB.First(&participation, &EventParticipation{UserId: userId, EventId: eventId})
	if result.Error != nil {
		return nil, result.Error
	}
	return &participation, nil
}

func (r *ParticipationRepository) FindPending() ([]*EventParticipation, error) {
	participations := make([]*EventParticipation, 0)
	result := r.DB.Preload("User").
		Find(&participations, &EventParticipation{Status: ParticipationStatusPending})
	if result.Error != nil {
		return nil, result.Error
	}
	return participations, nil
}

func (r *ParticipationRepository) CountPending() (int64, error) {
	var count int64
	result := r.DB.Model(&EventParticipation{}).
		Where("status = ?", ParticipationStatusPending).Count(&count)
	return count, result.Error
}

func (r *ParticipationRepository) Save(participation *EventParticipation) (*EventParticipation, error) {
	result := r.DB.Save(participation)
	if result.Error != nil {
		return nil, result.Error
	}
	return participation, nil
}

func (r *ParticipationRepository) Delete(participationId string) error {
	participation, err := r.GetParticipationById(participationId)
	if err != nil {
		return err
	}
	return r.DB.Delete(participation).Error
}
