package service

import (
	"hackjudge/repository"

	"gorm.io/gorm"
)

type ProjectService struct {
	projectRepository *repository.ProjectRepository
	eventRepository   *repository.EventRepository
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{
		projectRepository: repository.NewProjectRepository(db),
		eventRepository:   repository.NewEventRepository(db),
	}
}

func (s *ProjectService) GetAllProjects() ([]*repository.Project, error) {
	return s.projectRepository.FindAll()
}

func (s *ProjectService) GetProjectById(projectId string) (*repository.Project, error) {
	return s.projectRepository.GetProjectById(projectId)
}

func (s *ProjectService) GetProjectsForEvent(eventId string) ([]*repository.Project, error) {
	if _, err := s.eventRepository.GetEventById(eventId); err != nil {
		return nil, err
	}
	return s.projectRepository.GetProjectsForEvent(eventId)
}

func (s *ProjectService) CreateProject(project *repository.Project) (*repository.Project, error) {
	if _, err := s.eventRepository.GetEventById(project.EventId); err != nil {
		return nil, err
	}
	return s.projectRepository.Save(project)
}

func (s *ProjectService) UpdateProject(projectId string, update *repository.Project) (*repository.Project, error) {
	project, err := s.projectRepository.GetProjectById(projectId)
	if err != nil {
		return nil, err
	}
	if update.Name != "" {
		project.Name = update.Name
	}
	if update.Description != "" {
		project.Description = update.Description
	}
	if update.TeamName != "" {
		project.TeamName = update.TeamName
	}
	return s.projectRepository.Save(project)
}

func (s *ProjectService) DeleteProject(projectId string) error {
	return s.projectRepository.Delete(projectId)
}
