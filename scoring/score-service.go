package scoring

import (
	"time"

	"hackjudge/metrics"
	"hackjudge/repository"

	"gorm.io/gorm"
)

// ScoreService loads the rows an aggregation needs and hands them to the
// pure scoring functions.
type ScoreService struct {
	eventRepository         *repository.EventRepository
	projectRepository       *repository.ProjectRepository
	criteriaRepository      *repository.CriteriaRepository
	ratingRepository        *repository.RatingRepository
	userRepository          *repository.UserRepository
	participationRepository *repository.ParticipationRepository
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{
		eventRepository:         repository.NewEventRepository(db),
		projectRepository:       repository.NewProjectRepository(db),
		criteriaRepository:      repository.NewCriteriaRepository(db),
		ratingRepository:        repository.NewRatingRepository(db),
		userRepository:          repository.NewUserRepository(db),
		participationRepository: repository.NewParticipationRepository(db),
	}
}

func (s *ScoreService) GetProjectRankings(eventId string) ([]*ProjectScore, error) {
	t := time.Now()
	if _, err := s.eventRepository.GetEventById(eventId); err != nil {
		return nil, err
	}
	projects, err := s.projectRepository.GetProjectsForEvent(eventId)
	if err != nil {
		return nil, err
	}
	criteria, err := s.criteriaRepository.GetCriteriaForEvent(eventId)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratingRepository.GetRatingsForEvent(eventId)
	if err != nil {
		return nil, err
	}
	rankings := ProjectRankings(projects, ratings, criteria)
	metrics.ScoreAggregationDuration.WithLabelValues("rankings").Set(time.Since(t).Seconds())
	return rankings, nil
}

func (s *ScoreService) GetJudgeProgress(eventId, judgeId string) (*Progress, error) {
	if _, err := s.userRepository.GetUserById(judgeId); err != nil {
		return nil, err
	}
	ratings, err := s.ratingRepository.GetRatingsForEvent(eventId)
	if err != nil {
		return nil, err
	}
	totalProjects, err := s.projectRepository.CountForEvent(eventId)
	if err != nil {
		return nil, err
	}
	progress := JudgeProgress(judgeId, ratings, int(totalProjects))
	return &progress, nil
}

// EventJudgeSummary is the admin event detail block: every participating
// judge with their rating counts, plus overall completion.
type EventJudgeSummary struct {
	Judges        []*JudgeSummary `json:"judges"`
	TotalProjects int             `json:"total_projects"`
	TotalJudges   int             `json:"total_judges"`
	Completion    float64         `json:"completion"`
}

func (s *ScoreService) GetEventJudgeSummary(eventId string) (*EventJudgeSummary, error) {
	t := time.Now()
	if _, err := s.eventRepository.GetEventById(eventId); err != nil {
		return nil, err
	}
	participations, err := s.participationRepository.GetParticipationsForEvent(eventId)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratingRepository.GetRatingsForEvent(eventId)
	if err != nil {
		return nil, err
	}
	totalProjects, err := s.projectRepository.CountForEvent(eventId)
	if err != nil {
		return nil, err
	}
	summaries := JudgeSummaries(participations, ratings)
	approved := 0
	for _, participation := range participations {
		if participation.Status == repository.ParticipationStatusApproved {
			approved++
		}
	}
	summary := &EventJudgeSummary{
		Judges:        summaries,
		TotalProjects: int(totalProjects),
		TotalJudges:   approved,
		Completion:    CompletionProgress(summaries, int(totalProjects)),
	}
	metrics.ScoreAggregationDuration.WithLabelValues("judge-summary").Set(time.Since(t).Seconds())
	return summary, nil
}

// EventStats are the admin dashboard counters.
type EventStats struct {
	ActiveEvents     int `json:"active_events"`
	TotalJudges      int `json:"total_judges"`
	ProjectsJudged   int `json:"projects_judged"`
	PendingApprovals int `json:"pending_approvals"`
}

func (s *ScoreService) GetEventStats() (*EventStats, error) {
	activeEvents, err := s.eventRepository.CountByStatus(repository.EventStatusActive)
	if err != nil {
		return nil, err
	}
	totalJudges, err := s.userRepository.CountByRole(repository.UserRoleJudge)
	if err != nil {
		return nil, err
	}
	projectsJudged, err := s.ratingRepository.CountDistinctRatedProjects()
	if err != nil {
		return nil, err
	}
	pendingApprovals, err := s.participationRepository.CountPending()
	if err != nil {
		return nil, err
	}
	return &EventStats{
		ActiveEvents:     int(activeEvents),
		TotalJudges:      int(totalJudges),
		ProjectsJudged:   int(projectsJudged),
		PendingApprovals: int(pendingApprovals),
	}, nil
}

// RecentEvent is an event annotated with its approved judge and project
// counts for the dashboard list.
type RecentEvent struct {
	Event    *repository.Event `json:"event"`
	Judges   int               `json:"judges"`
	Projects int               `json:"projects"`
}

func (s *ScoreService) GetRecentEvents(limit int) ([]*RecentEvent, error) {
	events, err := s.eventRepository.FindRecent(limit)
	if err != nil {
		return nil, err
	}
	recent := make([]*RecentEvent, 0, len(events))
	for _, event := range events {
		judges := 0
		for _, participation := range event.Participations {
			if participation.Status == repository.ParticipationStatusApproved {
				judges++
			}
		}
		recent = append(recent, &RecentEvent{
			Event:    event,
			Judges:   judges,
			Projects: len(event.Projects),
		})
	}
	return recent, nil
}
