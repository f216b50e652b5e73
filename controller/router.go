package controller

import (
	"hackjudge/auth"
	"hackjudge/repository"
	"hackjudge/utils"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RequiredRoles []repository.UserRole
}

func SetRoutes(r *gin.Engine, db *gorm.DB, store persistence.CacheStore) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupAuthController(db)...)
	routes = append(routes, setupUserController(db)...)
	routes = append(routes, setupEventController(db)...)
	routes = append(routes, setupProjectController(db)...)
	routes = append(routes, setupCriteriaController(db)...)
	routes = append(routes, setupRatingController(db)...)
	routes = append(routes, setupParticipationController(db)...)
	routes = append(routes, setupStatsController(db, store)...)
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(route.RequiredRoles))
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		r.Handle(route.Method, "/api"+route.Path, handlerfuncs...)
	}
}

func AuthMiddleware(roles []repository.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("auth")
		if err != nil {
			header := c.GetHeader("Authorization")
			if len(header) > 7 && header[:7] == "Bearer " {
				tokenString = header[7:]
			}
		}
		if tokenString == "" {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		token, err := auth.ParseToken(tokenString)
		if err != nil || !token.Valid {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		claims := &auth.Claims{}
		claims.FromJWTClaims(token.Claims)
		if err := claims.Valid(); err != nil {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		if len(roles) == 0 || utils.Contains(roles, repository.UserRole(claims.Role)) {
			c.Next()
			return
		}
		c.JSON(403, gin.H{"error": "Unauthorized"})
		c.Abort()
	}
}
