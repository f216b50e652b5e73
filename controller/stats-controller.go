package controller

import (
	"strconv"
	"time"

	"hackjudge/app_error"
	"hackjudge/repository"
	"hackjudge/scoring"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StatsController struct {
	scoreService *scoring.ScoreService
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{
		scoreService: scoring.NewScoreService(db),
	}
}

func setupStatsController(db *gorm.DB, store persistence.CacheStore) []RouteInfo {
	e := NewStatsController(db)
	// dashboard aggregates are recomputed on demand; caching them briefly
	// keeps repeated reloads off the database
	routes := []RouteInfo{
		{Method: "GET", Path: "/stats", HandlerFunc: cache.CachePage(store, 30*time.Second, e.getEventStatsHandler()), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
		{Method: "GET", Path: "/events/recent", HandlerFunc: cache.CachePage(store, 30*time.Second, e.getRecentEventsHandler()), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
		{Method: "GET", Path: "/events/:event_id/rankings", HandlerFunc: e.getProjectRankingsHandler(), Authenticated: true},
		{Method: "GET", Path: "/events/:event_id/judge-summary", HandlerFunc: e.getJudgeSummaryHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
		{Method: "GET", Path: "/events/:event_id/judges/:judge_id/progress", HandlerFunc: e.getJudgeProgressHandler(), Authenticated: true},
	}
	return routes
}

// @id GetEventStats
// @Description Fetches the admin dashboard counters
// @Tags stats
// @Produce json
// @Success 200 {object} scoring.EventStats
// @Security BearerAuth
// @Router /stats [get]
func (e *StatsController) getEventStatsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := e.scoreService.GetEventStats()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, stats)
	}
}

// @id GetRecentEvents
// @Description Fetches the most recent events with judge and project counts
// @Tags stats
// @Produce json
// @Param limit query int false "Maximum number of events" default(3)
// @Success 200 {array} RecentEventResponse
// @Security BearerAuth
// @Router /events/recent [get]
func (e *StatsController) getRecentEventsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "3"))
		if err != nil || limit < 1 {
			c.JSON(400, gin.H{"error": "invalid limit"})
			return
		}
		recent, err := e.scoreService.GetRecentEvents(limit)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		responses := make([]RecentEventResponse, 0, len(recent))
		for _, entry := range recent {
			responses = append(responses, RecentEventResponse{
				Event:    toEventResponse(entry.Event),
				Judges:   entry.Judges,
				Projects: entry.Projects,
			})
		}
		c.JSON(200, responses)
	}
}

// @id GetProjectRankings
// @Description Fetches an event's projects ranked by weighted average rating
// @Tags stats
// @Produce json
// @Param event_id path string true "Event Id"
// @Success 200 {array} scoring.ProjectScore
// @Security BearerAuth
// @Router /events/{event_id}/rankings [get]
func (e *StatsController) getProjectRankingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		rankings, err := e.scoreService.GetProjectRankings(c.Param("event_id"))
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, rankings)
	}
}

// @id GetJudgeSummary
// @Description Fetches the per-judge rating counts and completion for an event
// @Tags stats
// @Produce json
// @Param event_id path string true "Event Id"
// @Success 200 {object} scoring.EventJudgeSummary
// @Security BearerAuth
// @Router /events/{event_id}/judge-summary [get]
func (e *StatsController) getJudgeSummaryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := e.scoreService.GetEventJudgeSummary(c.Param("event_id"))
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, summary)
	}
}

// @id GetJudgeProgress
// @Description Fetches a judge's rating progress within an event
// @Tags stats
// @Produce json
// @Param event_id path string true "Event Id"
// @Param judge_id path string true "Judge Id"
// @Success 200 {object} scoring.Progress
// @Security BearerAuth
// @Router /events/{event_id}/judges/{judge_id}/progress [get]
func (e *StatsController) getJudgeProgressHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		progress, err := e.scoreService.GetJudgeProgress(c.Param("event_id"), c.Param("judge_id"))
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, progress)
	}
}

type RecentEventResponse struct {
	Event    EventResponse `json:"event"`
	Judges   int           `json:"judges"`
	Projects int           `json:"projects"`
}
