package service

import (
	"context"
	"errors"
	"skill_assessment_backend/internal/model"
	"skill_assessment_backend/internal/repository"
	"skill_assessment_backend/internal/util"
	"sort"
	"sync"
	"time"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

var errStoreDown = errors.New("store unavailable")

// memorySessionStore 内存会话存储，同时满足 SessionStore 与 QuizSessionStore
type memorySessionStore struct {
	mu       sync.Mutex
	sessions []model.QuizSession
	nextID   uint
	err      error

	allCompletedCalls int
}

func newMemorySessionStore(sessions ...model.QuizSession) *memorySessionStore {
	s := &memorySessionStore{nextID: 1}
	for _, sess := range sessions {
		if sess.ID >= s.nextID {
			s.nextID = sess.ID + 1
		}
		s.sessions = append(s.sessions, sess)
	}
	return s
}

func (s *memorySessionStore) completed(userID uint, since *time.Time) []model.QuizSession {
	var out []model.QuizSession
	for _, sess := range s.sessions {
		if sess.UserID != userID || sess.EndTime == nil {
			continue
		}
		if since != nil && sess.StartTime.Before(*since) {
			continue
		}
		out = append(out, sess)
	}
	return out
}

func (s *memorySessionStore) FindCompletedByUser(_ context.Context, userID uint, since *time.Time, order repository.SortOrder) ([]model.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := s.completed(userID, since)
	sort.SliceStable(out, func(i, j int) bool {
		if order == repository.OrderDesc {
			return out[i].StartTime.After(out[j].StartTime)
		}
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (s *memorySessionStore) CountCompletedByUser(_ context.Context, userID uint, since *time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.completed(userID, since))), nil
}

func (s *memorySessionStore) FindAllCompleted(context.Context) ([]model.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allCompletedCalls++
	if s.err != nil {
		return nil, s.err
	}
	var out []model.QuizSession
	for _, sess := range s.sessions {
		if sess.EndTime != nil {
			out = append(out, sess)
		}
	}
	return out, nil
}

func (s *memorySessionStore) FindByID(_ context.Context, id uint) (*model.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			sess := s.sessions[i]
			return &sess, nil
		}
	}
	return nil, util.ErrSessionNotFound
}

func (s *memorySessionStore) FindByUser(_ context.Context, userID uint) ([]model.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.QuizSession
	for _, sess := range s.sessions {
		if sess.UserID == userID {
			out = append(out, sess)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out, nil
}

func (s *memorySessionStore) Create(_ context.Context, session *model.QuizSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.ID = s.nextID
	s.nextID++
	s.sessions = append(s.sessions, *session)
	return nil
}

func (s *memorySessionStore) Complete(_ context.Context, id uint, endTime time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].ID != id {
			continue
		}
		if s.sessions[i].EndTime != nil {
			return util.ErrSessionCompleted
		}
		end := endTime
		s.sessions[i].EndTime = &end
		return nil
	}
	return util.ErrSessionNotFound
}

func (s *memorySessionStore) SaveAnswer(_ context.Context, answer *model.QuizAnswer) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		sess := &s.sessions[i]
		if sess.ID != answer.SessionID {
			continue
		}
		replaced := false
		for j := range sess.Answers {
			if sess.Answers[j].QuestionID == answer.QuestionID {
				sess.Answers[j] = *answer
				replaced = true
			}
		}
		if !replaced {
			sess.Answers = append(sess.Answers, *answer)
		}
		correct := ScoreAnswers(sess.Answers).Correct
		sess.TotalScore = correct
		return correct, nil
	}
	return 0, util.ErrSessionNotFound
}

type memoryScoreCache struct {
	scores      []float64
	ok          bool
	getErr      error
	sets        int
	invalidated int
}

func (c *memoryScoreCache) GetPopulationScores(context.Context) ([]float64, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.scores, c.ok, nil
}

func (c *memoryScoreCache) SetPopulationScores(_ context.Context, scores []float64, _ time.Duration) error {
	c.scores = scores
	c.ok = true
	c.sets++
	return nil
}

func (c *memoryScoreCache) InvalidatePopulationScores(context.Context) error {
	c.scores = nil
	c.ok = false
	c.invalidated++
	return nil
}

// completedSession 构造一个已完成会话，前 correct 道题答对
func completedSession(id, userID, skillID uint, skillName string, start time.Time, correct, total int) model.QuizSession {
	end := start.Add(10 * time.Minute)
	sess := model.QuizSession{
		UserID:    userID,
		SkillID:   skillID,
		StartTime: start,
		EndTime:   &end,
		Skill:     model.Skill{Name: skillName},
	}
	sess.ID = id
	sess.Skill.ID = skillID
	for i := 0; i < total; i++ {
		sess.Answers = append(sess.Answers, model.QuizAnswer{
			SessionID:  id,
			QuestionID: uint(i + 1),
			IsCorrect:  i < correct,
		})
	}
	return sess
}

func daysAgo(n int) time.Time {
	return fixedNow.AddDate(0, 0, -n)
}
