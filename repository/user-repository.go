package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleJudge UserRole = "judge"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusPending  UserStatus = "pending"
)

type User struct {
	Id        string     `gorm:"primaryKey"`
	Name      string     `gorm:"not null"`
	Email     string     `gorm:"not null;uniqueIndex"`
	Password  string     `gorm:"not null;default:''"`
	Role      UserRole   `gorm:"type:user_role;not null"`
	Status    UserStatus `gorm:"type:user_status;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Id == "" {
		u.Id = uuid.NewString()
	}
	return nil
}

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindAll() ([]*User, error) {
	users := make([]*User, 0)
	result := r.DB.Order("created_at ASC").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (r *UserRepository) GetUserById(userId string) (*User, error) {
	user := User{}
	result := r.DB.First(&user, &User{Id: userId})
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*User, error) {
	user := User{}
	result := r.DB.First(&user, &User{Email: email})
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) Save(user *User) (*User, error) {
	result := r.DB.Save(user)
	if result.Error != nil {
		return nil, result.Error
	}
	return user, nil
}

func (r *UserRepository) Delete(userId string) error {
	user, err := r.GetUserById(userId)
	if err != nil {
		return err
	}
	return r.DB.Delete(user).Error
}

func (r *UserRepository) CountByRole(role UserRole) (int64, error) {
	var count int64
	result := r.DB.Model(&User{}).Where("role = ?", role).Count(&count)
	return count, result.Error
}
