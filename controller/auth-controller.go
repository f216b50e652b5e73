package controller

import (
	"hackjudge/app_error"
	"hackjudge/auth"
	"hackjudge/config"
	"hackjudge/repository"
	"hackjudge/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const authCookieMaxAge = 60 * 60 * 24 * 21

type AuthController struct {
	userService *service.UserService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		userService: service.NewUserService(db),
	}
}

func setupAuthController(db *gorm.DB) []RouteInfo {
	e := NewAuthController(db)
	basePath := "/auth"
	routes := []RouteInfo{
		{Method: "POST", Path: "/register", HandlerFunc: e.registerHandler()},
		{Method: "POST", Path: "/login", HandlerFunc: e.loginHandler()},
		{Method: "POST", Path: "/logout", HandlerFunc: e.logoutHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

// @id Register
// @Description Registers a new judge account and logs it in
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body RegisterRequest true "Registration"
// @Success 201 {object} UserResponse
// @Router /auth/register [post]
func (e *AuthController) registerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.Register(req.Name, req.Email, req.Password)
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		if err := setAuthCookie(c, user); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toUserResponse(user))
	}
}

// @id Login
// @Description Logs a user in and sets the auth cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} UserResponse
// @Router /auth/login [post]
func (e *AuthController) loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.Login(req.Email, req.Password)
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		if err := setAuthCookie(c, user); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

// @id Logout
// @Description Clears the auth cookie
// @Tags auth
// @Success 200
// @Router /auth/logout [post]
func (e *AuthController) logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("auth", "", -1, "/", "", config.IsProduction(), true)
		c.JSON(200, gin.H{})
	}
}

func setAuthCookie(c *gin.Context, user *repository.User) error {
	token, err := auth.CreateToken(user)
	if err != nil {
		return err
	}
	c.SetCookie("auth", token, authCookieMaxAge, "/", "", config.IsProduction(), true)
	return nil
}
