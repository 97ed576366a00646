package repository

import (
	"context"
	"errors"
	"fmt"
	"skill_assessment_backend/internal/model"
	"skill_assessment_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// SortOrder 按开始时间排序方向
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

type QuizSessionRepository struct {
	DB *gorm.DB
}

func NewQuizSessionRepository(db *gorm.DB) *QuizSessionRepository {
	return &QuizSessionRepository{DB: db}
}

func orderAnswers(db *gorm.DB) *gorm.DB {
	return db.Order("quiz_answers.id ASC")
}

// withDeletedSkill 技能被软删除后历史会话仍保留技能名称
func withDeletedSkill(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

func (r *QuizSessionRepository) completedByUser(ctx context.Context, userID uint, since *time.Time) *gorm.DB {
	q := r.DB.WithContext(ctx).
		Model(&model.QuizSession{}).
		Where("user_id = ? AND end_time IS NOT NULL", userID)
	if since != nil {
		q = q.Where("start_time >= ?", *since)
	}
	return q
}

// FindCompletedByUser 返回用户已完成的会话（预加载技能与答案），since 为空表示不限时间
func (r *QuizSessionRepository) FindCompletedByUser(ctx context.Context, userID uint, since *time.Time, order SortOrder) ([]model.QuizSession, error) {
	var sessions []model.QuizSession
	dir := "ASC"
	if order == OrderDesc {
		dir = "DESC"
	}

	err := r.completedByUser(ctx, userID, since).
		Preload("Skill", withDeletedSkill).
		Preload("Answers", orderAnswers).
		Order("start_time " + dir).
		Order("id " + dir).
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("find completed sessions for user %d: %w", userID, err)
	}
	return sessions, nil
}

func (r *QuizSessionRepository) CountCompletedByUser(ctx context.Context, userID uint, since *time.Time) (int64, error) {
	var count int64
	if err := r.completedByUser(ctx, userID, since).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count completed sessions for user %d: %w", userID, err)
	}
	return count, nil
}

// FindAllCompleted 全体用户的已完成会话，只加载答案
func (r *QuizSessionRepository) FindAllCompleted(ctx context.Context) ([]model.QuizSession, error) {
	var sessions []model.QuizSession
	err := r.DB.WithContext(ctx).
		Where("end_time IS NOT NULL").
		Preload("Answers", orderAnswers).
		Order("id ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("find all completed sessions: %w", err)
	}
	return sessions, nil
}

// FindByUser 用户全部会话（含进行中），最新在前
func (r *QuizSessionRepository) FindByUser(ctx context.Context, userID uint) ([]model.QuizSession, error) {
	var sessions []model.QuizSession
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Skill", withDeletedSkill).
		Preload("Answers", orderAnswers).
		Order("start_time DESC").
		Order("id DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("find sessions for user %d: %w", userID, err)
	}
	return sessions, nil
}

func (r *QuizSessionRepository) FindByID(ctx context.Context, id uint) (*model.QuizSession, error) {
	var session model.QuizSession
	err := r.DB.WithContext(ctx).
		Preload("Answers", orderAnswers).
		First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find session %d: %w", id, err)
	}
	return &session, nil
}

func (r *QuizSessionRepository) Create(ctx context.Context, session *model.QuizSession) error {
	return r.DB.WithContext(ctx).Create(session).Error
}

// Complete 仅在会话未完成时写入结束时间
func (r *QuizSessionRepository) Complete(ctx context.Context, id uint, endTime time.Time) error {
	res := r.DB.WithContext(ctx).
		Model(&model.QuizSession{}).
		Where("id = ? AND end_time IS NULL", id).
		Update("end_time", endTime)
	if res.Error != nil {
		return fmt.Errorf("complete session %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return util.ErrSessionCompleted
	}
	return nil
}

// SaveAnswer 写入答案并刷新会话的 total_score 缓存，返回刷新后的正确题数。
// 同一题重复提交时覆盖之前的答案。
func (r *QuizSessionRepository) SaveAnswer(ctx context.Context, answer *model.QuizAnswer) (int, error) {
	var totalScore int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.QuizAnswer
		err := tx.Where("session_id = ? AND question_id = ?", answer.SessionID, answer.QuestionID).
			First(&existing).Error
		switch {
		case err == nil:
			answer.ID = existing.ID
			answer.CreatedAt = existing.CreatedAt
			if err := tx.Save(answer).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(answer).Error; err != nil {
				return err
			}
		default:
			return err
		}

		if err := tx.Model(&model.QuizAnswer{}).
			Where("session_id = ? AND is_correct = ?", answer.SessionID, true).
			Count(&totalScore).Error; err != nil {
			return err
		}

		return tx.Model(&model.QuizSession{}).
			Where("id = ?", answer.SessionID).
			Update("total_score", totalScore).Error
	})
	if err != nil {
		return 0, fmt.Errorf("save answer for session %d: %w", answer.SessionID, err)
	}
	return int(totalScore), nil
}
