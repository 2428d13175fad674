package queries

import (
	"context"
	"sort"

	"trainer-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

type ScheduleReadStore interface {
	SessionReader
	FindByTrainer(ctx context.Context, trainerID uuid.UUID) ([]*schedule.Session, error)
}

type ScheduleQueries interface {
	GetWeeklySchedule(ctx context.Context, trainerID uuid.UUID) (*WeeklyScheduleView, error)
}

type scheduleQueriesImpl struct {
	repo ScheduleReadStore
}

func NewScheduleQueries(repo ScheduleReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{repo: repo}
}

// GetWeeklySchedule returns every weekday, including days with no configured sessions.
func (q *scheduleQueriesImpl) GetWeeklySchedule(ctx context.Context, trainerID uuid.UUID) (*WeeklyScheduleView, error) {
	sessions, err := q.repo.FindByTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].Key().Less(sessions[j].Key()) })

	byDay := make(map[schedule.Weekday][]*SessionView)
	for _, s := range sessions {
		if !s.IsConfigured() {
			continue
		}
		byDay[s.Key().Day] = append(byDay[s.Key().Day], NewSessionView(s))
	}

	view := &WeeklyScheduleView{TrainerID: trainerID}
	for _, day := range schedule.Weekdays() {
		sessions := byDay[day]
		if sessions == nil {
			sessions = []*SessionView{}
		}
		view.Days = append(view.Days, &DayScheduleView{Day: day.String(), Sessions: sessions})
	}
	return view, nil
}

func NewSessionView(s *schedule.Session) *SessionView {
	participants := make([]ParticipantView, 0, s.ParticipantCount())
	for _, p := range s.Participants() {
		participants = append(participants, ParticipantView{BookerID: p.BookerID, Accepted: p.Accepted, Paid: p.Paid})
	}
	return &SessionView{
		SessionID:        s.ID(),
		TrainerID:        s.Key().TrainerID,
		Day:              s.Key().Day.String(),
		Time:             s.Key().Time.String(),
		ClassType:        s.ClassType(),
		ParticipantLimit: s.Capacity().LimitPtr(),
		Unlimited:        s.Capacity().IsUnlimited(),
		ClassPrice:       s.Price().String(),
		ParticipantCount: s.ParticipantCount(),
		Available:        s.IsConfigured() && !s.IsFull(),
		Participants:     participants,
	}
}
