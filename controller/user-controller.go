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

type UserController struct {
	userService *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		userService: service.NewUserService(db),
	}
}

func setupUserController(db *gorm.DB) []RouteInfo {
	e := NewUserController(db)
	basePath := "/users"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getAllUsersHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
		{Method: "POST", Path: "", HandlerFunc: e.createUserHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
		{Method: "GET", Path: "/self", HandlerFunc: e.getSelfHandler(), Authenticated: true},
		{Method: "GET", Path: "/:user_id", HandlerFunc: e.getUserHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/:user_id", HandlerFunc: e.updateUserHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
		{Method: "DELETE", Path: "/:user_id", HandlerFunc: e.deleteUserHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.UserRoleAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetAllUsers
// @Description Fetches all users
// @Tags user
// @Produce json
// @Success 200 {array} UserResponse
// @Security BearerAuth
// @Router /users [get]
func (e *UserController) getAllUsersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := e.userService.GetAllUsers()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(users, toUserResponse))
	}
}

// @id GetSelf
// @Description Fetches the authenticated user
// @Tags user
// @Produce json
// @Success 200 {object} UserResponse
// @Security BearerAuth
// @Router /users/self [get]
func (e *UserController) getSelfHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthCookie(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

// @id GetUser
// @Description Fetches a user by id
// @Tags user
// @Produce json
// @Param user_id path string true "User Id"
// @Success 200 {object} UserResponse
// @Security BearerAuth
// @Router /users/{user_id} [get]
func (e *UserController) getUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserById(c.Param("user_id"))
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

// @id CreateUser
// @Description Creates a user
// @Tags user
// @Accept json
// @Produce json
// @Param user body UserCreate true "User to create"
// @Success 201 {object} UserResponse
// @Security BearerAuth
// @Router /users [post]
func (e *UserController) createUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var userCreate UserCreate
		if err := c.BindJSON(&userCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.CreateUser(userCreate.toModel())
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(201, toUserResponse(user))
	}
}

// @id UpdateUser
// @Description Updates a user
// @Tags user
// @Accept json
// @Produce json
// @Param user_id path string true "User Id"
// @Param user body UserUpdate true "Fields to update"
// @Success 200 {object} UserResponse
// @Security BearerAuth
// @Router /users/{user_id} [patch]
func (e *UserController) updateUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var userUpdate UserUpdate
		if err := c.BindJSON(&userUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.UpdateUser(c.Param("user_id"), userUpdate.toModel())
		if err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

// @id DeleteUser
// @Description Deletes a user
// @Tags user
// @Param user_id path string true "User Id"
// @Success 204
// @Security BearerAuth
// @Router /users/{user_id} [delete]
func (e *UserController) deleteUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := e.userService.DeleteUser(c.Param("user_id")); err != nil {
			app_error.Handle(c, err)
			return
		}
		c.JSON(204, nil)
	}
}

type UserCreate struct {
	Name     string                `json:"name" binding:"required"`
	Email    string                `json:"email" binding:"required,email"`
	Password string                `json:"password"`
	Role     repository.UserRole   `json:"role" binding:"required,oneof=admin judge"`
	Status   repository.UserStatus `json:"status" binding:"omitempty,oneof=active inactive pending"`
}

func (u *UserCreate) toModel() *repository.User {
	status := u.Status
	if status == "" {
		status = repository.UserStatusActive
	}
	return &repository.User{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role,
		Status:   status,
	}
}

type UserUpdate struct {
	Name   string                `json:"name"`
	Email  string                `json:"email" binding:"omitempty,email"`
	Role   repository.UserRole   `json:"role" binding:"omitempty,oneof=admin judge"`
	Status repository.UserStatus `json:"status" binding:"omitempty,oneof=active inactive pending"`
}

func (u *UserUpdate) toModel() *repository.User {
	return &repository.User{
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Status: u.Status,
	}
}

type UserResponse struct {
	Id        string                `json:"id"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Role      repository.UserRole   `json:"role"`
	Status    repository.UserStatus `json:"status"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

func toUserResponse(user *repository.User) UserResponse {
	return UserResponse{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
