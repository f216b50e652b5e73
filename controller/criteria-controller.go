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

type CriteriaController struct {
	criteriaService *service.CriteriaService
}

func NewCriteriaController(db *gorm.DB) *CriteriaController {
	return &CriteriaController{
		criteriaService: service.NewCriteriaService(db),
	}
}

func setupCriteriaController(db *gorm.DB) []RouteInfo {
	e := NewCriteriaController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "/events/:event_id/criteria", HandlerFunc: e.getEventCriteriaHandler(), Authenticated: true},
		{Method: "POST", Path: "/events/:event_id/criteria", HandlerFunc: e.createCriteriaHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
		{Method: "GET", Path: "/criteria/:criteria_id", HandlerFunc: e.getCriteriaHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/criteria/:criteria_id", HandlerFunc: e.updateCriteriaHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
		{Method: "DELETE", Path: "/criteria/:criteria_id", HandlerFunc: e.deleteCriteriaHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
	}
	return routes
}

// @id GetEventCriteria
// @Description Fetches the judging criteria of an event
// @Tags criteria
// @Produce json
// @Param event_id path string true "Event Id"
// @Success 200 {array} CriteriaResponse
// @Security BearerAuth
// @Router /events/{event_id}/criteria [get]
func (e *CriteriaController) getEventCriteriaHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria, err := e.criteriaService.GetCriteriaForEvent(c.Param("event_id"))
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, utils.Map(criteria, toCriteriaResponse))
	}
}

// @id GetCriteria
// @Description Fetches a judging criterion by id
// @Tags criteria
// @Produce json
// @Param criteria_id path string true "Criteria Id"
// @Success 200 {object} CriteriaResponse
// @Security BearerAuth
// @Router /criteria/{criteria_id} [get]
func (e *CriteriaController) getCriteriaHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria, err := e.criteriaService.GetCriteriaById(c.Param("criteria_id"))
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, toCriteriaResponse(criteria))
	}
}

// @id CreateCriteria
// @Description Creates a judging criterion for an event
// @Tags criteria
// @Accept json
// @Produce json
// @Param event_id path string true "Event Id"
// @Param criteria body CriteriaCreate true "Criterion to create"
// @Success 201 {object} CriteriaResponse
// @Security BearerAuth
// @Router /events/{event_id}/criteria [post]
func (e *CriteriaController) createCriteriaHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var criteriaCreate CriteriaCreate
		if err := c.BindJSON(&criteriaCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		criteria := criteriaCreate.toModel()
		criteria.EventId = c.Param("event_id")
		criteria, err := e.criteriaService.CreateCriteria(criteria)
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(201, toCriteriaResponse(criteria))
	}
}

// @id UpdateCriteria
// @Description Updates a judging criterion
// @Tags criteria
// @Accept json
// @Produce json
// @Param criteria_id path string true "Criteria Id"
// @Param criteria body CriteriaUpdate true "Fields to update"
// @Success 200 {object} CriteriaResponse
// @Security BearerAuth
// @Router /criteria/{criteria_id} [patch]
func (e *CriteriaController) updateCriteriaHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var criteriaUpdate CriteriaUpdate
		if err := c.BindJSON(&criteriaUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		criteria, err := e.criteriaService.UpdateCriteria(c.Param("criteria_id"), criteriaUpdate.toModel())
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, toCriteriaResponse(criteria))
	}
}

// @id DeleteCriteria
// @Description Deletes a judging criterion
// @Tags criteria
// @Param criteria_id path string true "Criteria Id"
// @Success 204
// @Security BearerAuth
// @Router /criteria/{criteria_id} [delete]
func (e *CriteriaController) deleteCriteriaHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := e.criteriaService.DeleteCriteria(c.Param("criteria_id")); err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(204, nil)
	}
}

type CriteriaCreate struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	MaxScore    float64 `json:"max_score" binding:"required,gt=0"`
	Weight      float64 `json:"weight" binding:"gte=0"`
}

func (cr *CriteriaCreate) toModel() *repository.JudgingCriteria {
	return &repository.JudgingCriteria{
		Name:        cr.Name,
		Description: cr.Description,
		MaxScore:    cr.MaxScore,
		Weight:      cr.Weight,
	}
}

type CriteriaUpdate struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	MaxScore    float64 `json:"max_score"`
	Weight      float64 `json:"weight"`
}

func (cr *CriteriaUpdate) toModel() *repository.JudgingCriteria {
	return &repository.JudgingCriteria{
		Name:        cr.Name,
		Description: cr.Description,
		MaxScore:    cr.MaxScore,
		Weight:      cr.Weight,
	}
}

type CriteriaResponse struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MaxScore    float64   `json:"max_score"`
	Weight      float64   `json:"weight"`
	EventId     string    `json:"event_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toCriteriaResponse(criteria *repository.JudgingCriteria) CriteriaResponse {
	return CriteriaResponse{
		Id:          criteria.Id,
		Name:        criteria.Name,
		Description: criteria.Description,
		MaxScore:    criteria.MaxScore,
		Weight:      criteria.Weight,
		EventId:     criteria.EventId,
		CreatedAt:   criteria.CreatedAt,
		UpdatedAt:   criteria.UpdatedAt,
	}
}
