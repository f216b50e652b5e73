package service

import (
	"fmt"
	"log"
	"testing"
	"time"

	"hackjudge/config"
	"hackjudge/logging"
	"hackjudge/repository"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func TestMain(m *testing.M) {
	logging.BootstrapLogger()

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "DATABASE_NAME=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600) // Tell docker to hard kill the container in 10 minutes
	sqlInfo := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable",
		resource.GetPort("5432/tcp"))

	// exponential backoff-retry, because the application in the container might not be ready to accept connections yet
	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(sqlInfo), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return err
		}
		return config.Migrate(db)
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}
	}()
	m.Run()
}

func mustCreateEvent(t *testing.T, name string) *repository.Event {
	t.Helper()
	event, err := NewEventService(db).CreateEvent(&repository.Event{
		Name:      name,
		StartDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		Status:    repository.EventStatusActive,
		CreatedBy: "admin",
	})
	require.NoError(t, err)
	return event
}

func TestCreateAndFetchEvent(t *testing.T) {
	eventService := NewEventService(db)
	created, err := eventService.CreateEvent(&repository.Event{
		Name:        "Summer Hackathon",
		Description: "Climate change solutions",
		StartDate:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		CreatedBy:   "admin",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.Id)
	assert.False(t, created.CreatedAt.IsZero())
	// unset status defaults to upcoming
	assert.Equal(t, repository.EventStatusUpcoming, created.Status)

	fetched, err := eventService.GetEventById(created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, created.Description, fetched.Description)
	assert.Equal(t, created.CreatedBy, fetched.CreatedBy)
	assert.True(t, created.StartDate.Equal(fetched.StartDate))
	assert.True(t, created.EndDate.Equal(fetched.EndDate))
}

func TestCreateEventRejectsInvertedDates(t *testing.T) {
	_, err := NewEventService(db).CreateEvent(&repository.Event{
		Name:      "Backwards",
		StartDate: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestUpdateNonExistentEventDoesNotMutate(t *testing.T) {
	eventService := NewEventService(db)
	var before int64
	require.NoError(t, db.Model(&repository.Event{}).Count(&before).Error)

	_, err := eventService.UpdateEvent("no-such-id", &repository.Event{Name: "Renamed"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var after int64
	require.NoError(t, db.Model(&repository.Event{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestRegisterDuplicateEmailCreatesNothing(t *testing.T) {
	userService := NewUserService(db)
	first, err := userService.Register("Sarah Johnson", "sarah-dup@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, repository.UserRoleJudge, first.Role)
	assert.Equal(t, repository.UserStatusPending, first.Status)

	var before int64
	require.NoError(t, db.Model(&repository.User{}).Count(&before).Error)

	_, err = userService.Register("Imposter", "sarah-dup@example.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)

	var after int64
	require.NoError(t, db.Model(&repository.User{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestLogin(t *testing.T) {
	userService := NewUserService(db)
	_, err := userService.Register("Login User", "login@example.com", "secret")
	require.NoError(t, err)

	user, err := userService.Login("login@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Login User", user.Name)

	_, err = userService.Login("login@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = userService.Login("nobody@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestApproveParticipationChangesOnlyStatus(t *testing.T) {
	event := mustCreateEvent(t, "Approval Event")
	judge, err := NewUserService(db).Register("Judge A", "judge-a@example.com", "")
	require.NoError(t, err)

	participationService := NewParticipationService(db)
	participation, err := participationService.RequestToJoin(judge.Id, event.Id)
	require.NoError(t, err)
	assert.Equal(t, repository.ParticipationStatusPending, participation.Status)

	approved, err := participationService.Decide(participation.Id, repository.ParticipationStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, repository.ParticipationStatusApproved, approved.Status)
	assert.Equal(t, participation.Id, approved.Id)
	assert.Equal(t, participation.UserId, approved.UserId)
	assert.Equal(t, participation.EventId, approved.EventId)
	assert.True(t, participation.CreatedAt.Equal(approved.CreatedAt))

	// re-deciding is allowed
	rejected, err := participationService.Decide(participation.Id, repository.ParticipationStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, repository.ParticipationStatusRejected, rejected.Status)
}

func TestRequestToJoinTwice(t *testing.T) {
	event := mustCreateEvent(t, "Double Join Event")
	judge, err := NewUserService(db).Register("Judge B", "judge-b@example.com", "")
	require.NoError(t, err)

	participationService := NewParticipationService(db)
	_, err = participationService.RequestToJoin(judge.Id, event.Id)
	require.NoError(t, err)
	_, err = participationService.RequestToJoin(judge.Id, event.Id)
	assert.ErrorIs(t, err, ErrAlreadyRequested)
}

func TestDecideRejectsInvalidStatus(t *testing.T) {
	event := mustCreateEvent(t, "Invalid Decision Event")
	judge, err := NewUserService(db).Register("Judge C", "judge-c@example.com", "")
	require.NoError(t, err)

	participationService := NewParticipationService(db)
	participation, err := participationService.RequestToJoin(judge.Id, event.Id)
	require.NoError(t, err)
	_, err = participationService.Decide(participation.Id, repository.ParticipationStatusPending)
	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestSubmitRatingValidatesScore(t *testing.T) {
	event := mustCreateEvent(t, "Score Range Event")
	criteria, err := NewCriteriaService(db).CreateCriteria(&repository.JudgingCriteria{
		Name: "Innovation", MaxScore: 10, Weight: 1, EventId: event.Id,
	})
	require.NoError(t, err)
	project, err := NewProjectService(db).CreateProject(&repository.Project{
		Name: "EcoTrack", EventId: event.Id,
	})
	require.NoError(t, err)
	judge, err := NewUserService(db).Register("Judge D", "judge-d@example.com", "")
	require.NoError(t, err)

	_, err = NewRatingService(db).SubmitRating(&repository.Rating{
		Score: 11, JudgeId: judge.Id, ProjectId: project.Id, CriteriaId: criteria.Id,
	})
	assert.ErrorIs(t, err, ErrScoreOutOfRange)
}

func TestSubmitRatingReplacesEarlierScore(t *testing.T) {
	event := mustCreateEvent(t, "Resubmit Event")
	criteria, err := NewCriteriaService(db).CreateCriteria(&repository.JudgingCriteria{
		Name: "Design", MaxScore: 10, Weight: 1, EventId: event.Id,
	})
	require.NoError(t, err)
	project, err := NewProjectService(db).CreateProject(&repository.Project{
		Name: "MediMind", EventId: event.Id,
	})
	require.NoError(t, err)
	judge, err := NewUserService(db).Register("Judge E", "judge-e@example.com", "")
	require.NoError(t, err)

	ratingService := NewRatingService(db)
	first, err := ratingService.SubmitRating(&repository.Rating{
		Score: 6, JudgeId: judge.Id, ProjectId: project.Id, CriteriaId: criteria.Id,
	})
	require.NoError(t, err)
	// event id is derived from the project
	assert.Equal(t, event.Id, first.EventId)

	second, err := ratingService.SubmitRating(&repository.Rating{
		Score: 8, Comment: "better on second look", JudgeId: judge.Id, ProjectId: project.Id, CriteriaId: criteria.Id,
	})
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, 8.0, second.Score)

	ratings, err := ratingService.GetRatingsForProject(project.Id)
	require.NoError(t, err)
	assert.Len(t, ratings, 1)
}

func TestDeleteEventCascades(t *testing.T) {
	event := mustCreateEvent(t, "Cascade Event")
	criteria, err := NewCriteriaService(db).CreateCriteria(&repository.JudgingCriteria{
		Name: "Innovation", MaxScore: 10, Weight: 1, EventId: event.Id,
	})
	require.NoError(t, err)
	project, err := NewProjectService(db).CreateProject(&repository.Project{
		Name: "FinWise", EventId: event.Id,
	})
	require.NoError(t, err)
	judge, err := NewUserService(db).Register("Judge F", "judge-f@example.com", "")
	require.NoError(t, err)
	_, err = NewRatingService(db).SubmitRating(&repository.Rating{
		Score: 7, JudgeId: judge.Id, ProjectId: project.Id, CriteriaId: criteria.Id,
	})
	require.NoError(t, err)

	require.NoError(t, NewEventService(db).DeleteEvent(event.Id))

	_, err = NewProjectService(db).GetProjectById(project.Id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = NewCriteriaService(db).GetCriteriaById(criteria.Id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	ratings, err := NewRatingService(db).GetRatingsForJudge(judge.Id)
	require.NoError(t, err)
	assert.Empty(t, ratings)
}
