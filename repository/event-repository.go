package repository

import (
	"time"

	"hackjudge/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusActive    EventStatus = "active"
	EventStatusCompleted EventStatus = "completed"
)

type Event struct {
	Id          string      `gorm:"primaryKey"`
	Name        string      `gorm:"not null"`
	Description string      `gorm:"not null;default:''"`
	StartDate   time.Time   `gorm:"not null"`
	EndDate     time.Time   `gorm:"not null"`
	Status      EventStatus `gorm:"type:event_status;not null"`
	CreatedBy   string      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Projects       []*Project            `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
	Criteria       []*JudgingCriteria    `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
	Ratings        []*Rating             `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
	Participations []*EventParticipation `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.Id == "" {
		e.Id = uuid.NewString()
	}
	return nil
}

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) FindAll(preloads ...string) ([]*Event, error) {
	events := make([]*Event, 0)
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.Order("start_date DESC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *EventRepository) GetEventById(eventId string, preloads ...string) (*Event, error) {
	var event Event
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&event, &Event{Id: eventId})
	if result.Error != nil {
		return nil, result.Error
	}
	return &event, nil
}

func (r *EventRepository) Save(event *Event) (*Event, error) {
	result := r.DB.Save(event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

func (r *EventRepository) Delete(eventId string) error {
	event, err := r.GetEventById(eventId)
	if err != nil {
		return err
	}
	// projects, criteria, ratings and participations cascade via FK constraints
	return r.DB.Delete(event).Error
}

// FindRecent returns the most recently starting events, newest first.
func (r *EventRepository) FindRecent(limit int) ([]*Event, error) {
	timer := prometheus.NewTimer(metrics.QueryDuration.WithLabelValues("FindRecentEvents"))
	defer timer.ObserveDuration()
	events := make([]*Event, 0)
	result := r.DB.Order("start_date DESC").Limit(limit).
		Preload("Projects").Preload("Participations").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *EventRepository) CountByStatus(status EventStatus) (int64, error) {
	var count int64
	result := r.DB.Model(&Event{}).Where("status = ?", status).Count(&count)
	return count, result.Error
}
