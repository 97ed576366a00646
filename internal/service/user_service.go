package service

import (
	"context"
	"skill_assessment_backend/internal/model"
	"skill_assessment_backend/internal/util"
	"time"
)

type UserLister interface {
	FindAll(ctx context.Context) ([]model.User, error)
}

type CompletedSessionLister interface {
	FindAllCompleted(ctx context.Context) ([]model.QuizSession, error)
}

type UserService struct {
	Users    UserLister
	Sessions CompletedSessionLister
}

func NewUserService(users UserLister, sessions CompletedSessionLister) *UserService {
	return &UserService{
		Users:    users,
		Sessions: sessions,
	}
}

type userStats struct {
	completed int
	total     int
	last      time.Time
}

// ListUsers 汇总每个用户的已完成测验数、最近一次测验时间与平均分。
// 平均分与 GetUserReport(all) 的 averageScore 口径一致。
func (s *UserService) ListUsers(ctx context.Context) ([]model.UserSummary, error) {
	users, err := s.Users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := s.Sessions.FindAllCompleted(ctx)
	if err != nil {
		return nil, err
	}

	stats := make(map[uint]*userStats)
	for i := range sessions {
		sess := &sessions[i]
		st, ok := stats[sess.UserID]
		if !ok {
			st = &userStats{}
			stats[sess.UserID] = st
		}
		st.completed++
		st.total += ScoreSession(sess).Percent()
		if sess.StartTime.After(st.last) {
			st.last = sess.StartTime
		}
	}

	summaries := make([]model.UserSummary, 0, len(users))
	for _, u := range users {
		summary := model.UserSummary{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		}
		if st, ok := stats[u.ID]; ok {
			summary.TestsCompleted = st.completed
			summary.AverageScore = roundHalfUp(float64(st.total) / float64(st.completed))
			last := util.FormatISOTime(st.last)
			summary.LastTestDate = &last
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
