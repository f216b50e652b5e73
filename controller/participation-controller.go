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

type ParticipationController struct {
	participationService *service.ParticipationService
	userService          *service.UserService
}

func NewParticipationController(db *gorm.DB) *ParticipationController {
	return &ParticipationController{
		participationService: service.NewParticipationService(db),
		userService:          service.NewUserService(db),
	}
}

func setupParticipationController(db *gorm.DB) []RouteInfo {
	e := NewParticipationController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "/events/:event_id/participations", HandlerFunc: e.getEventParticipationsHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
		{Method: "POST", Path: "/events/:event_id/participations", HandlerFunc: e.requestToJoinHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleJudge}},
		{Method: "GET", Path: "/participations/self", HandlerFunc: e.getOwnParticipationsHandler(), Authenticated: true},
		{Method: "GET", Path: "/participations/pending", HandlerFunc: e.getPendingApprovalsHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
		{Method: "PATCH", Path: "/participations/:participation_id", HandlerFunc: e.decideHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
		{Method: "DELETE", Path: "/participations/:participation_id", HandlerFunc: e.deleteParticipationHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
	}
	return routes
}

// @id GetEventParticipations
// @Description Fetches the judge participations of an event
// @Tags participation
// @Produce json
// @Param event_id path string true "Event Id"
// @Success 200 {array} ParticipationResponse
// @Security BearerAuth
// @Router /events/{event_id}/participations [get]
func (e *ParticipationController) getEventParticipationsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		participations, err := e.participationService.GetParticipationsForEvent(c.Param("event_id"))
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, utils.Map(participations, toParticipationResponse))
	}
}

// @id RequestToJoin
// @Description Files the authenticated judge's request to join an event
// @Tags participation
// @Produce json
// @Param event_id path string true "Event Id"
// @Success 201 {object} ParticipationResponse
// @Security BearerAuth
// @Router /events/{event_id}/participations [post]
func (e *ParticipationController) requestToJoinHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthCookie(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		participation, err := e.participationService.RequestToJoin(user.Id, c.Param("event_id"))
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(201, toParticipationResponse(participation))
	}
}

// @id GetOwnParticipations
// @Description Fetches the authenticated user's participations
// @Tags participation
// @Produce json
// @Success 200 {array} ParticipationResponse
// @Security BearerAuth
// @Router /participations/self [get]
func (e *ParticipationController) getOwnParticipationsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthCookie(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		participations, err := e.participationService.GetParticipationsForUser(user.Id)
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, utils.Map(participations, toParticipationResponse))
	}
}

// @id GetPendingApprovals
// @Description Fetches all pending participation requests
// @Tags participation
// @Produce json
// @Success 200 {array} ParticipationResponse
// @Security BearerAuth
// @Router /participations/pending [get]
func (e *ParticipationController) getPendingApprovalsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		participations, err := e.participationService.GetPendingApprovals()
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, utils.Map(participations, toParticipationResponse))
	}
}

// @id DecideParticipation
// @Description Approves or rejects a participation request
// @Tags participation
// @Accept json
// @Produce json
// @Param participation_id path string true "Participation Id"
// @Param decision body ParticipationDecision true "Decision"
// @Success 200 {object} ParticipationResponse
// @Security BearerAuth
// @Router /participations/{participation_id} [patch]
func (e *ParticipationController) decideHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var decision ParticipationDecision
		if err := c.BindJSON(&decision); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		participation, err := e.participationService.Decide(c.Param("participation_id"), decision.Status)
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, toParticipationResponse(participation))
	}
}

// @id DeleteParticipation
// @Description Deletes a participation
// @Tags participation
// @Param participation_id path string true "Participation Id"
// @Success 204
// @Security BearerAuth
// @Router /participations/{participation_id} [delete]
func (e *ParticipationController) deleteParticipationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := e.participationService.DeleteParticipation(c.Param("participation_id")); err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(204, nil)
	}
}

type ParticipationDecision struct {
	Status repository.ParticipationStatus `json:"status" binding:"required,oneof=approved rejected"`
}

type ParticipationResponse struct {
	Id        string                         `json:"id"`
	UserId    string                         `json:"user_id"`
	UserName  string                         `json:"user_name,omitempty"`
	EventId   string                         `json:"event_id"`
	Status    repository.ParticipationStatus `json:"status"`
	CreatedAt time.Time                      `json:"created_at"`
	UpdatedAt time.Time                      `json:"updated_at"`
}

func toParticipationResponse(participation *repository.EventParticipation) ParticipationResponse {
	response := ParticipationResponse{
		Id:        participation.Id,
		UserId:    participation.UserId,
		EventId:   participation.EventId,
		Status:    participation.Status,
		CreatedAt: participation.CreatedAt,
		UpdatedAt: participation.UpdatedAt,
	}
	if participation.User != nil {
		response.UserName = participation.User.Name
	}
	return response
}
