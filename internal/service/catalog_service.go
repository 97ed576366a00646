package service

import (
	"context"
	"errors"
	"skill_assessment_backend/internal/model"
	"skill_assessment_backend/internal/util"
	"skill_assessment_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
)

// SkillCatalog 技能的管理操作
type SkillCatalog interface {
	FindAll(ctx context.Context) ([]model.Skill, error)
	FindByID(ctx context.Context, id uint) (*model.Skill, error)
	FindByName(ctx context.Context, name string) (*model.Skill, error)
	Create(ctx context.Context, skill *model.Skill) error
	Save(ctx context.Context, skill *model.Skill) error
	Restore(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id uint) error
}

// QuestionCatalog 题目的管理操作
type QuestionCatalog interface {
	FindAll(ctx context.Context, skillID uint) ([]model.Question, error)
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	Create(ctx context.Context, question *model.Question) error
	Save(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id uint) error
}

// SkillUpdate 为 nil 的字段保持不变
type SkillUpdate struct {
	Name        *string
	Description *string
}

type QuestionDraft struct {
	SkillID       uint
	Text          string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectOption string
	Difficulty    string
}

// QuestionUpdate 为 nil 的字段保持不变，题目不能改挂到其他技能
type QuestionUpdate struct {
	Text          *string
	OptionA       *string
	OptionB       *string
	OptionC       *string
	OptionD       *string
	CorrectOption *string
	Difficulty    *string
}

type CatalogService struct {
	Skills    SkillCatalog
	Questions QuestionCatalog
}

func NewCatalogService(skills SkillCatalog, questions QuestionCatalog) *CatalogService {
	return &CatalogService{
		Skills:    skills,
		Questions: questions,
	}
}

func (s *CatalogService) ListSkills(ctx context.Context) ([]model.Skill, error) {
	return s.Skills.FindAll(ctx)
}

func (s *CatalogService) GetSkill(ctx context.Context, id uint) (*model.Skill, error) {
	return s.Skills.FindByID(ctx, id)
}

// CreateSkill 同名技能已被删除时恢复它，而不是新建
func (s *CatalogService) CreateSkill(ctx context.Context, name, description string) (*model.Skill, error) {
	name = strings.TrimSpace(name)

	existing, err := s.Skills.FindByName(ctx, name)
	switch {
	case err == nil && !existing.DeletedAt.Valid:
		return nil, util.ErrSkillExists
	case err == nil:
		if err := s.Skills.Restore(ctx, existing); err != nil {
			return nil, err
		}
		existing.Description = description
		if err := s.Skills.Save(ctx, existing); err != nil {
			return nil, err
		}
		logger.Log.Info("Skill restored", zap.Uint("skill_id", existing.ID), zap.String("name", name))
		return existing, nil
	case !errors.Is(err, util.ErrSkillNotFound):
		return nil, err
	}

	skill := &model.Skill{Name: name, Description: description}
	if err := s.Skills.Create(ctx, skill); err != nil {
		return nil, err
	}
	logger.Log.Info("Skill created", zap.Uint("skill_id", skill.ID), zap.String("name", name))
	return skill, nil
}

func (s *CatalogService) UpdateSkill(ctx context.Context, id uint, update SkillUpdate) (*model.Skill, error) {
	skill, err := s.Skills.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name != skill.Name {
			other, err := s.Skills.FindByName(ctx, name)
			if err == nil && other.ID != skill.ID {
				return nil, util.ErrSkillExists
			}
			if err != nil && !errors.Is(err, util.ErrSkillNotFound) {
				return nil, err
			}
			skill.Name = name
		}
	}
	if update.Description != nil {
		skill.Description = *update.Description
	}

	if err := s.Skills.Save(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *CatalogService) DeleteSkill(ctx context.Context, id uint) error {
	if err := s.Skills.Delete(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("Skill deleted", zap.Uint("skill_id", id))
	return nil
}

// ListQuestions skillID 为 0 时返回全部题目，指定的技能必须存在
func (s *CatalogService) ListQuestions(ctx context.Context, skillID uint) ([]model.Question, error) {
	if skillID != 0 {
		if _, err := s.Skills.FindByID(ctx, skillID); err != nil {
			return nil, err
		}
	}
	return s.Questions.FindAll(ctx, skillID)
}

func (s *CatalogService) CreateQuestion(ctx context.Context, draft QuestionDraft) (*model.Question, error) {
	option, ok := model.ParseOption(draft.CorrectOption)
	if !ok {
		return nil, util.ErrInvalidOption
	}
	difficulty, ok := model.ParseDifficulty(draft.Difficulty)
	if !ok {
		return nil, util.ErrInvalidDifficulty
	}
	if _, err := s.Skills.FindByID(ctx, draft.SkillID); err != nil {
		return nil, err
	}

	question := &model.Question{
		SkillID:       draft.SkillID,
		Text:          strings.TrimSpace(draft.Text),
		OptionA:       draft.OptionA,
		OptionB:       draft.OptionB,
		OptionC:       draft.OptionC,
		OptionD:       draft.OptionD,
		CorrectOption: option,
		Difficulty:    difficulty,
	}
	if err := s.Questions.Create(ctx, question); err != nil {
		return nil, err
	}

	logger.Log.Info("Question created",
		zap.Uint("question_id", question.ID),
		zap.Uint("skill_id", question.SkillID),
	)
	return question, nil
}

// UpdateQuestion 修改正确选项不会重判已提交的答案
func (s *CatalogService) UpdateQuestion(ctx context.Context, id uint, update QuestionUpdate) (*model.Question, error) {
	question, err := s.Questions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.CorrectOption != nil {
		option, ok := model.ParseOption(*update.CorrectOption)
		if !ok {
			return nil, util.ErrInvalidOption
		}
		question.CorrectOption = option
	}
	if update.Difficulty != nil {
		difficulty, ok := model.ParseDifficulty(*update.Difficulty)
		if !ok {
			return nil, util.ErrInvalidDifficulty
		}
		question.Difficulty = difficulty
	}
	if update.Text != nil {
		question.Text = strings.TrimSpace(*update.Text)
	}
	for _, f := range []struct {
		src *string
		dst *string
	}{
		{update.OptionA, &question.OptionA},
		{update.OptionB, &question.OptionB},
		{update.OptionC, &question.OptionC},
		{update.OptionD, &question.OptionD},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}

	if err := s.Questions.Save(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *CatalogService) DeleteQuestion(ctx context.Context, id uint) error {
	if err := s.Questions.Delete(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("Question deleted", zap.Uint("question_id", id))
	return nil
}
