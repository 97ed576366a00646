package repository

import (
	"context"
	"errors"
	"fmt"
	"skill_assessment_backend/internal/model"
	"skill_assessment_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.WithContext(ctx).First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find question %d: %w", id, err)
	}
	return &q, nil
}

// FindAll skillID 为 0 时返回全部题目
func (r *QuestionRepository) FindAll(ctx context.Context, skillID uint) ([]model.Question, error) {
	var questions []model.Question
	q := r.DB.WithContext(ctx)
	if skillID != 0 {
		q = q.Where("skill_id = ?", skillID)
	}
	if err := q.Order("skill_id ASC").Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	if err := r.DB.WithContext(ctx).Create(q).Error; err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	return nil
}

func (r *QuestionRepository) Save(ctx context.Context, q *model.Question) error {
	if err := r.DB.WithContext(ctx).Save(q).Error; err != nil {
		return fmt.Errorf("update question %d: %w", q.ID, err)
	}
	return nil
}

// Delete 软删除，历史答案仍保留在会话中
func (r *QuestionRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&model.Question{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete question %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return util.ErrQuestionNotFound
	}
	return nil
}

type SkillRepository struct {
	DB *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

func (r *SkillRepository) FindByID(ctx context.Context, id uint) (*model.Skill, error) {
	var s model.Skill
	err := r.DB.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSkillNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find skill %d: %w", id, err)
	}
	return &s, nil
}

func (r *SkillRepository) FindAll(ctx context.Context) ([]model.Skill, error) {
	var skills []model.Skill
	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

// FindByName 包含已软删除的技能，名称唯一索引对它们同样生效
func (r *SkillRepository) FindByName(ctx context.Context, name string) (*model.Skill, error) {
	var s model.Skill
	err := r.DB.WithContext(ctx).Unscoped().Where("name = ?", name).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSkillNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find skill by name: %w", err)
	}
	return &s, nil
}

func (r *SkillRepository) Create(ctx context.Context, s *model.Skill) error {
	if err := r.DB.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create skill: %w", err)
	}
	return nil
}

func (r *SkillRepository) Save(ctx context.Context, s *model.Skill) error {
	if err := r.DB.WithContext(ctx).Save(s).Error; err != nil {
		return fmt.Errorf("update skill %d: %w", s.ID, err)
	}
	return nil
}

// Restore 恢复软删除的技能
func (r *SkillRepository) Restore(ctx context.Context, s *model.Skill) error {
	err := r.DB.WithContext(ctx).Unscoped().
		Model(&model.Skill{}).
		Where("id = ?", s.ID).
		Update("deleted_at", nil).Error
	if err != nil {
		return fmt.Errorf("restore skill %d: %w", s.ID, err)
	}
	s.DeletedAt = gorm.DeletedAt{}
	return nil
}

// Delete 软删除，已完成会话的报告仍能读到技能名称
func (r *SkillRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&model.Skill{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete skill %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return util.ErrSkillNotFound
	}
	return nil
}
