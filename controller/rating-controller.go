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

type RatingController struct {
	ratingService *service.RatingService
	userService   *service.UserService
}

func NewRatingController(db *gorm.DB) *RatingController {
	return &RatingController{
		ratingService: service.NewRatingService(db),
		userService:   service.NewUserService(db),
	}
}

func setupRatingController(db *gorm.DB) []RouteInfo {
	e := NewRatingController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "/events/:event_id/ratings", HandlerFunc: e.getEventRatingsHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
		{Method: "GET", Path: "/projects/:project_id/ratings", HandlerFunc: e.getProjectRatingsHandler(), Authenticated: true},
		{Method: "POST", Path: "/projects/:project_id/ratings", HandlerFunc: e.submitRatingHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleJudge}},
		{Method: "GET", Path: "/ratings/self", HandlerFunc: e.getOwnRatingsHandler(), Authenticated: true},
		{Method: "GET", Path: "/ratings/:rating_id", HandlerFunc: e.getRatingHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/ratings/:rating_id", HandlerFunc: e.updateRatingHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/ratings/:rating_id", HandlerFunc: e.deleteRatingHandler(), Authenticated: true},
	}
	return routes
}

// @id GetEventRatings
// @Description Fetches all ratings submitted within an event
// @Tags rating
// @Produce json
// @Param event_id path string true "Event Id"
// @Success 200 {array} RatingResponse
// @Security BearerAuth
// @Router /events/{event_id}/ratings [get]
func (e *RatingController) getEventRatingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ratings, err := e.ratingService.GetRatingsForEvent(c.Param("event_id"))
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, utils.Map(ratings, toRatingResponse))
	}
}

// @id GetProjectRatings
// @Description Fetches the ratings of a project
// @Tags rating
// @Produce json
// @Param project_id path string true "Project Id"
// @Success 200 {array} RatingResponse
// @Security BearerAuth
// @Router /projects/{project_id}/ratings [get]
func (e *RatingController) getProjectRatingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ratings, err := e.ratingService.GetRatingsForProject(c.Param("project_id"))
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, utils.Map(ratings, toRatingResponse))
	}
}

// @id GetOwnRatings
// @Description Fetches the ratings submitted by the authenticated judge
// @Tags rating
// @Produce json
// @Success 200 {array} RatingResponse
// @Security BearerAuth
// @Router /ratings/self [get]
func (e *RatingController) getOwnRatingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthCookie(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		ratings, err := e.ratingService.GetRatingsForJudge(user.Id)
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, utils.Map(ratings, toRatingResponse))
	}
}

// @id GetRating
// @Description Fetches a rating by id
// @Tags rating
// @Produce json
// @Param rating_id path string true "Rating Id"
// @Success 200 {object} RatingResponse
// @Security BearerAuth
// @Router /ratings/{rating_id} [get]
func (e *RatingController) getRatingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		rating, err := e.ratingService.GetRatingById(c.Param("rating_id"))
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, toRatingResponse(rating))
	}
}

// @id SubmitRating
// @Description Submits the authenticated judge's score for a project on one criterion
// @Tags rating
// @Accept json
// @Produce json
// @Param project_id path string true "Project Id"
// @Param rating body RatingCreate true "Rating to submit"
// @Success 201 {object} RatingResponse
// @Security BearerAuth
// @Router /projects/{project_id}/ratings [post]
func (e *RatingController) submitRatingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ratingCreate RatingCreate
		if err := c.BindJSON(&ratingCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.GetUserFromAuthCookie(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		rating := ratingCreate.toModel()
		rating.ProjectId = c.Param("project_id")
		rating.JudgeId = user.Id
		rating, err = e.ratingService.SubmitRating(rating)
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(201, toRatingResponse(rating))
	}
}

// @id UpdateRating
// @Description Updates a rating's score or comment
// @Tags rating
// @Accept json
// @Produce json
// @Param rating_id path string true "Rating Id"
// @Param rating body RatingUpdate true "Fields to update"
// @Success 200 {object} RatingResponse
// @Security BearerAuth
// @Router /ratings/{rating_id} [patch]
func (e *RatingController) updateRatingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ratingUpdate RatingUpdate
		if err := c.BindJSON(&ratingUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		rating, err := e.ratingService.UpdateRating(c.Param("rating_id"), ratingUpdate.toModel())
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, toRatingResponse(rating))
	}
}

// @id DeleteRating
// @Description Deletes a rating
// @Tags rating
// @Param rating_id path string true "Rating Id"
// @Success 204
// @Security BearerAuth
// @Router /ratings/{rating_id} [delete]
func (e *RatingController) deleteRatingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := e.ratingService.DeleteRating(c.Param("rating_id")); err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(204, nil)
	}
}

type RatingCreate struct {
	Score      float64 `json:"score" binding:"gte=0"`
	Comment    string  `json:"comment"`
	CriteriaId string  `json:"criteria_id" binding:"required"`
}

func (r *RatingCreate) toModel() *repository.Rating {
	return &repository.Rating{
		Score:      r.Score,
		Comment:    r.Comment,
		CriteriaId: r.CriteriaId,
	}
}

type RatingUpdate struct {
	Score   float64 `json:"score"`
	Comment string  `json:"comment"`
}

func (r *RatingUpdate) toModel() *repository.Rating {
	return &repository.Rating{
		Score:   r.Score,
		Comment: r.Comment,
	}
}

type RatingResponse struct {
	Id         string    `json:"id"`
	Score      float64   `json:"score"`
	Comment    string    `json:"comment"`
	JudgeId    string    `json:"judge_id"`
	ProjectId  string    `json:"project_id"`
	CriteriaId string    `json:"criteria_id"`
	EventId    string    `json:"event_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toRatingResponse(rating *repository.Rating) RatingResponse {
	return RatingResponse{
		Id:         rating.Id,
		Score:      rating.Score,
		Comment:    rating.Comment,
		JudgeId:    rating.JudgeId,
		ProjectId:  rating.ProjectId,
		CriteriaId: rating.CriteriaId,
		EventId:    rating.EventId,
		CreatedAt:  rating.CreatedAt,
		UpdatedAt:  rating.UpdatedAt,
	}
}
