// Command seed fills the database with a small demo dataset: an admin, a few
// judges, two events with projects, criteria, ratings and participation
// requests. Intended for local development only.
package main

import (
	"log"
	"time"

	"hackjudge/config"
	"hackjudge/repository"

	_ "github.com/lib/pq"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Env()
	db, err := config.InitDB(
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.DatabaseName,
	)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Println("Database seeded")
}

func seed(db *gorm.DB) error {
	users := []*repository.User{
		{Id: "u-admin", Name: "Admin User", Email: "admin@example.com", Role: repository.UserRoleAdmin, Status: repository.UserStatusActive},
		{Id: "u-sarah", Name: "Sarah Johnson", Email: "sarah@example.com", Role: repository.UserRoleJudge, Status: repository.UserStatusActive},
		{Id: "u-michael", Name: "Michael Chen", Email: "michael@example.com", Role: repository.UserRoleJudge, Status: repository.UserStatusActive},
		{Id: "u-jessica", Name: "Jessica Taylor", Email: "jessica@example.com", Role: repository.UserRoleJudge, Status: repository.UserStatusActive},
	}
	events := []*repository.Event{
		{
			Id: "e-summer", Name: "Summer Hackathon 2025",
			Description: "A two-day event focused on innovative solutions for climate change.",
			StartDate:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
			Status:      repository.EventStatusActive, CreatedBy: "u-admin",
		},
		{
			Id: "e-ai", Name: "AI Innovation Challenge",
			Description: "Exploring the frontiers of artificial intelligence and machine learning.",
			StartDate:   time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC),
			Status:      repository.EventStatusCompleted, CreatedBy: "u-admin",
		},
	}
	criteria := []*repository.JudgingCriteria{
		{Id: "c-innovation", Name: "Innovation", Description: "Originality of the idea", MaxScore: 10, Weight: 0.4, EventId: "e-summer"},
		{Id: "c-technical", Name: "Technical Execution", Description: "Quality of the implementation", MaxScore: 10, Weight: 0.3, EventId: "e-summer"},
		{Id: "c-design", Name: "Design", Description: "User experience and polish", MaxScore: 10, Weight: 0.3, EventId: "e-summer"},
	}
	projects := []*repository.Project{
		{Id: "p-ecotrack", Name: "EcoTrack", Description: "Carbon footprint tracker", TeamName: "Green Coders", EventId: "e-summer"},
		{Id: "p-medimind", Name: "MediMind", Description: "Healthcare assistant", TeamName: "Health Hackers", EventId: "e-summer"},
		{Id: "p-finwise", Name: "FinWise", Description: "Personal finance advisor", TeamName: "Money Makers", EventId: "e-summer"},
	}
	ratings := []*repository.Rating{
		{Id: "r-1", Score: 8.5, Comment: "Great innovation and execution.", JudgeId: "u-sarah", ProjectId: "p-ecotrack", CriteriaId: "c-innovation", EventId: "e-summer"},
		{Id: "r-2", Score: 7.2, Comment: "Good technical implementation.", JudgeId: "u-sarah", ProjectId: "p-ecotrack", CriteriaId: "c-technical", EventId: "e-summer"},
		{Id: "r-3", Score: 9.0, Comment: "Excellent user interface design.", JudgeId: "u-sarah", ProjectId: "p-ecotrack", CriteriaId: "c-design", EventId: "e-summer"},
		{Id: "r-4", Score: 7.8, Comment: "Innovative approach to healthcare.", JudgeId: "u-sarah", ProjectId: "p-medimind", CriteriaId: "c-innovation", EventId: "e-summer"},
		{Id: "r-5", Score: 9.2, Comment: "Impressive financial algorithms.", JudgeId: "u-michael", ProjectId: "p-finwise", CriteriaId: "c-technical", EventId: "e-summer"},
	}
	participations := []*repository.EventParticipation{
		{Id: "ep-1", UserId: "u-sarah", EventId: "e-summer", Status: repository.ParticipationStatusApproved},
		{Id: "ep-2", UserId: "u-michael", EventId: "e-summer", Status: repository.ParticipationStatusApproved},
		{Id: "ep-3", UserId: "u-jessica", EventId: "e-summer", Status: repository.ParticipationStatusPending},
		{Id: "ep-4", UserId: "u-sarah", EventId: "e-ai", Status: repository.ParticipationStatusApproved},
	}

	for _, user := range users {
		if err := db.Save(user).Error; err != nil {
			return err
		}
	}
	for _, event := range events {
		if err := db.Save(event).Error; err != nil {
			return err
		}
	}
	for _, criterion := range criteria {
		if err := db.Save(criterion).Error; err != nil {
			return err
		}
	}
	for _, project := range projects {
		if err := db.Save(project).Error; err != nil {
			return err
		}
	}
	for _, rating := range ratings {
		if err := db.Save(rating).Error; err != nil {
			return err
		}
	}
	for _, participation := range participations {
		if err := db.Save(participation).Error; err != nil {
			return err
		}
	}
	return nil
}
