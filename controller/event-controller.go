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

type EventController struct {
	eventService *service.EventService
	userService  *service.UserService
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		eventService: service.NewEventService(db),
		userService:  service.NewUserService(db),
	}
}

func setupEventController(db *gorm.DB) []RouteInfo {
	e := NewEventController(db)
	basePath := "/events"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getEventsHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.createEventHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
		{Method: "GET", Path: "/:event_id", HandlerFunc: e.getEventHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/:event_id", HandlerFunc: e.updateEventHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
		{Method: "DELETE", Path: "/:event_id", HandlerFunc: e.deleteEventHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetEvents
// @Description Fetches all events
// @Tags event
// @Produce json
// @Success 200 {array} EventResponse
// @Security BearerAuth
// @Router /events [get]
func (e *EventController) getEventsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := e.eventService.GetAllEvents()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(events, toEventResponse))
	}
}

// @id GetEvent
// @Description Fetches an event by id
// @Tags event
// @Produce json
// @Param event_id path string true "Event Id"
// @Success 200 {object} EventResponse
// @Security BearerAuth
// @Router /events/{event_id} [get]
func (e *EventController) getEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := e.eventService.GetEventById(c.Param("event_id"))
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @id CreateEvent
// @Description Creates an event
// @Tags event
// @Accept json
// @Produce json
// @Param event body EventCreate true "Event to create"
// @Success 201 {object} EventResponse
// @Security BearerAuth
// @Router /events [post]
func (e *EventController) createEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var eventCreate EventCreate
		if err := c.BindJSON(&eventCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.GetUserFromAuthCookie(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		event := eventCreate.toModel()
		event.CreatedBy = user.Id
		event, err = e.eventService.CreateEvent(event)
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(201, toEventResponse(event))
	}
}

// @id UpdateEvent
// @Description Updates an event
// @Tags event
// @Accept json
// @Produce json
// @Param event_id path string true "Event Id"
// @Param event body EventUpdate true "Fields to update"
// @Success 200 {object} EventResponse
// @Security BearerAuth
// @Router /events/{event_id} [patch]
func (e *EventController) updateEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var eventUpdate EventUpdate
		if err := c.BindJSON(&eventUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.eventService.UpdateEvent(c.Param("event_id"), eventUpdate.toModel())
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @id DeleteEvent
// @Description Deletes an event with its projects, criteria and ratings
// @Tags event
// @Param event_id path string true "Event Id"
// @Success 204
// @Security BearerAuth
// @Router /events/{event_id} [delete]
func (e *EventController) deleteEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := e.eventService.DeleteEvent(c.Param("event_id")); err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(204, nil)
	}
}

type EventCreate struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	StartDate   time.Time              `json:"start_date" binding:"required"`
	EndDate     time.Time              `json:"end_date" binding:"required"`
	Status      repository.EventStatus `json:"status" binding:"omitempty,oneof=upcoming active completed"`
}

func (e *EventCreate) toModel() *repository.Event {
	return &repository.Event{
		Name:        e.Name,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Status:      e.Status,
	}
}

type EventUpdate struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	StartDate   time.Time              `json:"start_date"`
	EndDate     time.Time              `json:"end_date"`
	Status      repository.EventStatus `json:"status" binding:"omitempty,oneof=upcoming active completed"`
}

func (e *EventUpdate) toModel() *repository.Event {
	return &repository.Event{
		Name:        e.Name,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Status:      e.Status,
	}
}

type EventResponse struct {
	Id          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	StartDate   time.Time              `json:"start_date"`
	EndDate     time.Time              `json:"end_date"`
	DateRange   string                 `json:"date_range"`
	Status      repository.EventStatus `json:"status"`
	CreatedBy   string                 `json:"created_by"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

func toEventResponse(event *repository.Event) EventResponse {
	return EventResponse{
		Id:          event.Id,
		Name:        event.Name,
		Description: event.Description,
		StartDate:   event.StartDate,
		EndDate:     event.EndDate,
		DateRange:   utils.FormatDateRange(event.StartDate, event.EndDate),
		Status:      event.Status,
		CreatedBy:   event.CreatedBy,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}
