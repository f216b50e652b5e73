package config

import (
	"fmt"
	"strings"

	model "hackjudge/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var enumQueries = []string{
	`CREATE TYPE user_role AS ENUM ('admin', 'judge')`,
	`CREATE TYPE user_status AS ENUM ('active', 'inactive', 'pending')`,
	`CREATE TYPE event_status AS ENUM ('upcoming', 'active', 'completed')`,
	`CREATE TYPE participation_status AS ENUM ('pending', 'approved', 'rejected')`,
}

func InitDB(host, port, user, password, dbName string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate bootstraps the enum types and brings the schema up to date.
func Migrate(db *gorm.DB) error {
	for _, query := range enumQueries {
		x := db.Exec(query)
		if x.Error != nil {
			if strings.Contains(x.Error.Error(), "already exists") {
				continue
			}
			return x.Error
		}
	}
	return db.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.Project{},
		&model.JudgingCriteria{},
		&model.Rating{},
		&model.EventParticipation{},
	)
}
