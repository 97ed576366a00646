package service

import (
	"context"
	"skill_assessment_backend/internal/model"
	"skill_assessment_backend/internal/util"
	"skill_assessment_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
)

// QuizSessionStore 测验写路径所需的会话操作
type QuizSessionStore interface {
	FindByID(ctx context.Context, id uint) (*model.QuizSession, error)
	FindByUser(ctx context.Context, userID uint) ([]model.QuizSession, error)
	Create(ctx context.Context, session *model.QuizSession) error
	Complete(ctx context.Context, id uint, endTime time.Time) error
	SaveAnswer(ctx context.Context, answer *model.QuizAnswer) (int, error)
}

type QuestionStore interface {
	FindByID(ctx context.Context, id uint) (*model.Question, error)
}

type SkillStore interface {
	FindByID(ctx context.Context, id uint) (*model.Skill, error)
}

// ScoreCacheInvalidator 会话完成后清除全体得分缓存
type ScoreCacheInvalidator interface {
	InvalidatePopulationScores(ctx context.Context) error
}

type QuizService struct {
	Sessions  QuizSessionStore
	Questions QuestionStore
	Skills    SkillStore
	Cache     ScoreCacheInvalidator
	Now       func() time.Time
}

func NewQuizService(sessions QuizSessionStore, questions QuestionStore, skills SkillStore, cache ScoreCacheInvalidator) *QuizService {
	return &QuizService{
		Sessions:  sessions,
		Questions: questions,
		Skills:    skills,
		Cache:     cache,
		Now:       time.Now,
	}
}

func (s *QuizService) StartSession(ctx context.Context, userID, skillID uint) (*model.QuizSession, error) {
	skill, err := s.Skills.FindByID(ctx, skillID)
	if err != nil {
		return nil, err
	}

	session := &model.QuizSession{
		UserID:    userID,
		SkillID:   skill.ID,
		StartTime: s.Now(),
	}
	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	session.Skill = *skill

	logger.Log.Info("Quiz session started",
		zap.Uint("user_id", userID),
		zap.Uint("skill_id", skillID),
		zap.Uint("session_id", session.ID),
	)
	return session, nil
}

// ownedOpenSession 会话必须属于 userID 且尚未完成
func (s *QuizService) ownedOpenSession(ctx context.Context, userID, sessionID uint) (*model.QuizSession, error) {
	session, err := s.Sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	if session.Completed() {
		return nil, util.ErrSessionCompleted
	}
	return session, nil
}

// SubmitAnswer 判定答案并刷新会话的 total_score
func (s *QuizService) SubmitAnswer(ctx context.Context, userID, sessionID, questionID uint, selected string) (*model.AnswerResult, error) {
	option, ok := model.ParseOption(selected)
	if !ok {
		return nil, util.ErrInvalidOption
	}

	session, err := s.ownedOpenSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	question, err := s.Questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.SkillID != session.SkillID {
		return nil, util.ErrQuestionMismatch
	}

	answer := &model.QuizAnswer{
		SessionID:      session.ID,
		QuestionID:     question.ID,
		SelectedOption: option,
		IsCorrect:      question.CorrectOption == option,
	}
	totalScore, err := s.Sessions.SaveAnswer(ctx, answer)
	if err != nil {
		return nil, err
	}

	return &model.AnswerResult{IsCorrect: answer.IsCorrect, TotalScore: totalScore}, nil
}

func (s *QuizService) CompleteSession(ctx context.Context, userID, sessionID uint) (*model.QuizSession, error) {
	session, err := s.ownedOpenSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	end := s.Now()
	if err := s.Sessions.Complete(ctx, session.ID, end); err != nil {
		return nil, err
	}
	session.EndTime = &end

	if s.Cache != nil {
		if err := s.Cache.InvalidatePopulationScores(ctx); err != nil {
			logger.Log.Warn("Failed to invalidate population score cache", zap.Error(err))
		}
	}

	logger.Log.Info("Quiz session completed",
		zap.Uint("user_id", userID),
		zap.Uint("session_id", session.ID),
		zap.Int("answers", len(session.Answers)),
	)
	return session, nil
}

// GetQuizHistory 用户全部会话（含进行中），得分不取整，满分才计入 excellentScore
func (s *QuizService) GetQuizHistory(ctx context.Context, userID uint) (*model.QuizHistory, error) {
	sessions, err := s.Sessions.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	history := &model.QuizHistory{
		TotalQuizzes: len(sessions),
		TopicWise:    make([]model.QuizHistoryItem, 0, len(sessions)),
	}

	var sum float64
	for i := range sessions {
		sess := &sessions[i]
		score := ScoreSession(sess)
		ratio := score.Ratio()

		history.TopicWise = append(history.TopicWise, model.QuizHistoryItem{
			QuizID:           sess.ID,
			SkillName:        sess.Skill.Name,
			SkillDescription: sess.Skill.Description,
			Total:            score.Total,
			Correct:          score.Correct,
			ScorePercent:     ratio,
			Completed:        sess.Completed(),
			CreatedAt:        util.FormatISOTime(sess.StartTime),
		})

		sum += ratio
		if score.Total > 0 && score.Correct == score.Total {
			history.ExcellentScore++
		}
	}

	if history.TotalQuizzes > 0 {
		history.AverageScore = roundHalfUp(sum / float64(history.TotalQuizzes))
	}
	return history, nil
}
