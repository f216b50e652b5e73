package service

import (
	"errors"
	"fmt"

	"hackjudge/app_error"
	"hackjudge/auth"
	"hackjudge/logging"
	"hackjudge/metrics"
	"hackjudge/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("a user with this email already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	userRepository *repository.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		userRepository: repository.NewUserRepository(db),
	}
}

func (s *UserService) GetAllUsers() ([]*repository.User, error) {
	return s.userRepository.FindAll()
}

func (s *UserService) GetUserById(userId string) (*repository.User, error) {
	return s.userRepository.GetUserById(userId)
}

// Register creates a judge account in pending status. The email must be
// unused; nothing is written otherwise.
func (s *UserService) Register(name, email, password string) (*repository.User, error) {
	_, err := s.userRepository.GetUserByEmail(email)
	if err == nil {
		return nil, app_error.New(ErrEmailTaken, 409)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	user := &repository.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     repository.UserRoleJudge,
		Status:   repository.UserStatusPending,
	}
	user, err = s.userRepository.Save(user)
	if err != nil {
		return nil, err
	}
	metrics.RegistrationCounter.Inc()
	logging.Log.Infof("registered new judge %s", user.Id)
	return user, nil
}

// Login resolves a user by email. Passwords are stored as-is and compared
// directly; accounts without a stored password accept any.
func (s *UserService) Login(email, password string) (*repository.User, error) {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.LoginCounter.WithLabelValues("unknown_email").Inc()
			return nil, app_error.New(ErrInvalidCredentials, 401)
		}
		return nil, err
	}
	if user.Password != "" && user.Password != password {
		metrics.LoginCounter.WithLabelValues("bad_password").Inc()
		return nil, app_error.New(ErrInvalidCredentials, 401)
	}
	metrics.LoginCounter.WithLabelValues("success").Inc()
	return user, nil
}

func (s *UserService) CreateUser(user *repository.User) (*repository.User, error) {
	_, err := s.userRepository.GetUserByEmail(user.Email)
	if err == nil {
		return nil, app_error.New(ErrEmailTaken, 409)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return s.userRepository.Save(user)
}

// UpdateUser merges the set fields of update into the stored user.
func (s *UserService) UpdateUser(userId string, update *repository.User) (*repository.User, error) {
	user, err := s.userRepository.GetUserById(userId)
	if err != nil {
		return nil, err
	}
	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Email != "" && update.Email != user.Email {
		if _, err := s.userRepository.GetUserByEmail(update.Email); err == nil {
			return nil, app_error.New(ErrEmailTaken, 409)
		}
		user.Email = update.Email
	}
	if update.Role != "" {
		user.Role = update.Role
	}
	if update.Status != "" {
		user.Status = update.Status
	}
	return s.userRepository.Save(user)
}

func (s *UserService) DeleteUser(userId string) error {
	return s.userRepository.Delete(userId)
}

// GetUserFromAuthCookie resolves the authenticated user from the auth cookie
// or a bearer Authorization header.
func (s *UserService) GetUserFromAuthCookie(c *gin.Context) (*repository.User, error) {
	tokenString, err := c.Cookie("auth")
	if err != nil {
		header := c.GetHeader("Authorization")
		if len(header) > 7 && header[:7] == "Bearer " {
			tokenString = header[7:]
		}
	}
	if tokenString == "" {
		return nil, fmt.Errorf("no auth token")
	}
	token, err := auth.ParseToken(tokenString)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid auth token")
	}
	claims := &auth.Claims{}
	claims.FromJWTClaims(token.Claims)
	if err := claims.Valid(); err != nil {
		return nil, err
	}
	return s.userRepository.GetUserById(claims.UserId)
}
