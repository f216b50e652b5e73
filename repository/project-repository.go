package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	Id          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null;default:''"`
	TeamName    string `gorm:"not null;default:''"`
	EventId     string `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Ratings []*Rating `gorm:"foreignKey:ProjectId;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.Id == "" {
		p.Id = uuid.NewString()
	}
	return nil
}

type ProjectRepository struct {
	DB *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

func (r *ProjectRepository) FindAll() ([]*Project, error) {
	projects := make([]*Project, 0)
	result := r.DB.Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

func (r *ProjectRepository) GetProjectById(projectId string) (*Project, error) {
	project := Project{}
	result := r.DB.First(&project, &Project{Id: projectId})
	if result.Error != nil {
		return nil, result.Error
	}
	return &project, nil
}

func (r *ProjectRepository) GetProjectsForEvent(eventId string) ([]*Project, error) {
	projects := make([]*Project, 0)
	result := r.DB.Order("created_at ASC").Find(&projects, &Project{EventId: eventId})
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

func (r *ProjectRepository) Save(project *Project) (*Project, error) {
	result := r.DB.Save(project)
	if result.Error != nil {
		return nil, result.Error
	}
	return project, nil
}

func (r *ProjectRepository) Delete(projectId string) error {
	project, err := r.GetProjectById(projectId)
	if err != nil {
		return err
	}
	return r.DB.Delete(project).Error
}

func (r *ProjectRepository) CountForEvent(eventId string) (int64, error) {
	var count int64
	result := r.DB.Model(&Project{}).Where("event_id = ?", eventId).Count(&count)
	return count, result.Error
}
