package controller

import (
	"time"

	"hackjudge/app_error"
	"hackjudge/repository"
	"hackjudge/service"
	"hackjudge/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectController struct {
	projectService *service.ProjectService
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{
		projectService: service.NewProjectService(db),
	}
}

func setupProjectController(db *gorm.DB) []RouteInfo {
	e := NewProjectController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "/events/:event_id/projects", HandlerFunc: e.getEventProjectsHandler(), Authenticated: true},
		{Method: "POST", Path: "/events/:event_id/projects", HandlerFunc: e.createProjectHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
		{Method: "GET", Path: "/projects/:project_id", HandlerFunc: e.getProjectHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/projects/:project_id", HandlerFunc: e.updateProjectHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
		{Method: "DELETE", Path: "/projects/:project_id", HandlerFunc: e.deleteProjectHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
	}
	return routes
}

// @id GetEventProjects
// @Description Fetches the projects submitted to an event
// @Tags project
// @Produce json
// @Param event_id path string true "Event Id"
// @Success 200 {array} ProjectResponse
// @Security BearerAuth
// @Router /events/{event_id}/projects [get]
func (e *ProjectController) getEventProjectsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := e.projectService.GetProjectsForEvent(c.Param("event_id"))
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, utils.Map(projects, toProjectResponse))
	}
}

// @id GetProject
// @Description Fetches a project by id
// @Tags project
// @Produce json
// @Param project_id path string true "Project Id"
// @Success 200 {object} ProjectResponse
// @Security BearerAuth
// @Router /projects/{project_id} [get]
func (e *ProjectController) getProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := e.projectService.GetProjectById(c.Param("project_id"))
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, toProjectResponse(project))
	}
}

// @id CreateProject
// @Description Creates a project within an event
// @Tags project
// @Accept json
// @Produce json
// @Param event_id path string true "Event Id"
// @Param project body ProjectCreate true "Project to create"
// @Success 201 {object} ProjectResponse
// @Security BearerAuth
// @Router /events/{event_id}/projects [post]
func (e *ProjectController) createProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var projectCreate ProjectCreate
		if err := c.BindJSON(&projectCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		project := projectCreate.toModel()
		project.EventId = c.Param("event_id")
		project, err := e.projectService.CreateProject(project)
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(201, toProjectResponse(project))
	}
}

// @id UpdateProject
// @Description Updates a project
// @Tags project
// @Accept json
// @Produce json
// @Param project_id path string true "Project Id"
// @Param project body ProjectUpdate true "Fields to update"
// @Success 200 {object} ProjectResponse
// @Security BearerAuth
// @Router /projects/{project_id} [patch]
func (e *ProjectController) updateProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var projectUpdate ProjectUpdate
		if err := c.BindJSON(&projectUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		project, err := e.projectService.UpdateProject(c.Param("project_id"), projectUpdate.toModel())
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, toProjectResponse(project))
	}
}

// @id DeleteProject
// @Description Deletes a project with its ratings
// @Tags project
// @Param project_id path string true "Project Id"
// @Success 204
// @Security BearerAuth
// @Router /projects/{project_id} [delete]
func (e *ProjectController) deleteProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := e.projectService.DeleteProject(c.Param("project_id")); err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(204, nil)
	}
}

type ProjectCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	TeamName    string `json:"team_name"`
}

func (p *ProjectCreate) toModel() *repository.Project {
	return &repository.Project{
		Name:        p.Name,
		Description: p.Description,
		TeamName:    p.TeamName,
	}
}

type ProjectUpdate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TeamName    string `json:"team_name"`
}

func (p *ProjectUpdate) toModel() *repository.Project {
	return &repository.Project{
		Name:        p.Name,
		Description: p.Description,
		TeamName:    p.TeamName,
	}
}

type ProjectResponse struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TeamName    string    `json:"team_name"`
	EventId     string    `json:"event_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProjectResponse(project *repository.Project) ProjectResponse {
	return ProjectResponse{
		Id:          project.Id,
		Name:        project.Name,
		Description: project.Description,
		TeamName:    project.TeamName,
		EventId:     project.EventId,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
