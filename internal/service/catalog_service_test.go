package service

import (
	"context"
	"sort"
	"skill_assessment_backend/internal/model"
	"skill_assessment_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memoryCatalog 内存技能与题目存储，删除时只打软删除标记
type memoryCatalog struct {
	skills    map[uint]*model.Skill
	questions map[uint]*model.Question
	nextID    uint
}

func newMemoryCatalog() *memoryCatalog {
	return &memoryCatalog{
		skills:    map[uint]*model.Skill{},
		questions: map[uint]*model.Question{},
		nextID:    1,
	}
}

type memorySkillCatalog struct{ *memoryCatalog }
type memoryQuestionCatalog struct{ *memoryCatalog }

func (m memorySkillCatalog) FindAll(context.Context) ([]model.Skill, error) {
	var out []model.Skill
	for _, s := range m.skills {
		if !s.DeletedAt.Valid {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m memorySkillCatalog) FindByID(_ context.Context, id uint) (*model.Skill, error) {
	s, ok := m.skills[id]
	if !ok || s.DeletedAt.Valid {
		return nil, util.ErrSkillNotFound
	}
	cp := *s
	return &cp, nil
}

func (m memorySkillCatalog) FindByName(_ context.Context, name string) (*model.Skill, error) {
	for _, s := range m.skills {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, util.ErrSkillNotFound
}

func (m memorySkillCatalog) Create(_ context.Context, s *model.Skill) error {
	s.ID = m.nextID
	m.nextID++
	cp := *s
	m.skills[s.ID] = &cp
	return nil
}

func (m memorySkillCatalog) Save(_ context.Context, s *model.Skill) error {
	cp := *s
	m.skills[s.ID] = &cp
	return nil
}

func (m memorySkillCatalog) Restore(_ context.Context, s *model.Skill) error {
	m.skills[s.ID].DeletedAt = gorm.DeletedAt{}
	s.DeletedAt = gorm.DeletedAt{}
	return nil
}

func (m memorySkillCatalog) Delete(_ context.Context, id uint) error {
	s, ok := m.skills[id]
	if !ok || s.DeletedAt.Valid {
		return util.ErrSkillNotFound
	}
	s.DeletedAt = gorm.DeletedAt{Time: fixedNow, Valid: true}
	return nil
}

func (m memoryQuestionCatalog) FindAll(_ context.Context, skillID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range m.questions {
		if q.DeletedAt.Valid || (skillID != 0 && q.SkillID != skillID) {
			continue
		}
		out = append(out, *q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m memoryQuestionCatalog) FindByID(_ context.Context, id uint) (*model.Question, error) {
	q, ok := m.questions[id]
	if !ok || q.DeletedAt.Valid {
		return nil, util.ErrQuestionNotFound
	}
	cp := *q
	return &cp, nil
}

func (m memoryQuestionCatalog) Create(_ context.Context, q *model.Question) error {
	q.ID = m.nextID
	m.nextID++
	cp := *q
	m.questions[q.ID] = &cp
	return nil
}

func (m memoryQuestionCatalog) Save(_ context.Context, q *model.Question) error {
	cp := *q
	m.questions[q.ID] = &cp
	return nil
}

func (m memoryQuestionCatalog) Delete(_ context.Context, id uint) error {
	q, ok := m.questions[id]
	if !ok || q.DeletedAt.Valid {
		return util.ErrQuestionNotFound
	}
	q.DeletedAt = gorm.DeletedAt{Time: fixedNow, Valid: true}
	return nil
}

func newTestCatalogService() *CatalogService {
	store := newMemoryCatalog()
	return NewCatalogService(memorySkillCatalog{store}, memoryQuestionCatalog{store})
}

func strPtr(s string) *string { return &s }

func TestCatalogSkills(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalogService()

	goSkill, err := svc.CreateSkill(ctx, "  Go ", "Go basics")
	require.NoError(t, err)
	assert.Equal(t, "Go", goSkill.Name)

	_, err = svc.CreateSkill(ctx, "Go", "again")
	assert.ErrorIs(t, err, util.ErrSkillExists)

	sqlSkill, err := svc.CreateSkill(ctx, "SQL", "")
	require.NoError(t, err)

	skills, err := svc.ListSkills(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "Go", skills[0].Name)

	t.Run("rename to a taken name", func(t *testing.T) {
		_, err := svc.UpdateSkill(ctx, sqlSkill.ID, SkillUpdate{Name: strPtr("Go")})
		assert.ErrorIs(t, err, util.ErrSkillExists)
	})

	t.Run("partial update", func(t *testing.T) {
		updated, err := svc.UpdateSkill(ctx, sqlSkill.ID, SkillUpdate{Description: strPtr("Queries")})
		require.NoError(t, err)
		assert.Equal(t, "SQL", updated.Name)
		assert.Equal(t, "Queries", updated.Description)
	})

	t.Run("delete then recreate restores the same skill", func(t *testing.T) {
		require.NoError(t, svc.DeleteSkill(ctx, goSkill.ID))
		assert.ErrorIs(t, svc.DeleteSkill(ctx, goSkill.ID), util.ErrSkillNotFound)

		_, err := svc.GetSkill(ctx, goSkill.ID)
		assert.ErrorIs(t, err, util.ErrSkillNotFound)

		restored, err := svc.CreateSkill(ctx, "Go", "Go again")
		require.NoError(t, err)
		assert.Equal(t, goSkill.ID, restored.ID)
		assert.Equal(t, "Go again", restored.Description)

		got, err := svc.GetSkill(ctx, goSkill.ID)
		require.NoError(t, err)
		assert.False(t, got.DeletedAt.Valid)
	})

	_, err = svc.UpdateSkill(ctx, 999, SkillUpdate{Name: strPtr("X")})
	assert.ErrorIs(t, err, util.ErrSkillNotFound)
}

func TestCatalogQuestions(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalogService()

	goSkill, err := svc.CreateSkill(ctx, "Go", "")
	require.NoError(t, err)
	sqlSkill, err := svc.CreateSkill(ctx, "SQL", "")
	require.NoError(t, err)

	draft := func(skillID uint, correct, difficulty string) QuestionDraft {
		return QuestionDraft{
			SkillID: skillID, Text: "What does defer do?",
			OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d",
			CorrectOption: correct, Difficulty: difficulty,
		}
	}

	q1, err := svc.CreateQuestion(ctx, draft(goSkill.ID, "b", ""))
	require.NoError(t, err)
	assert.Equal(t, model.OptionB, q1.CorrectOption)
	assert.Equal(t, model.DifficultyMedium, q1.Difficulty)

	_, err = svc.CreateQuestion(ctx, draft(sqlSkill.ID, "D", "hard"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		draft   QuestionDraft
		wantErr error
	}{
		{"invalid option", draft(goSkill.ID, "E", ""), util.ErrInvalidOption},
		{"invalid difficulty", draft(goSkill.ID, "A", "extreme"), util.ErrInvalidDifficulty},
		{"unknown skill", draft(999, "A", ""), util.ErrSkillNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateQuestion(ctx, tt.draft)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	all, err := svc.ListQuestions(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	goQuestions, err := svc.ListQuestions(ctx, goSkill.ID)
	require.NoError(t, err)
	require.Len(t, goQuestions, 1)
	assert.Equal(t, q1.ID, goQuestions[0].ID)

	_, err = svc.ListQuestions(ctx, 999)
	assert.ErrorIs(t, err, util.ErrSkillNotFound)

	updated, err := svc.UpdateQuestion(ctx, q1.ID, QuestionUpdate{CorrectOption: strPtr("c"), OptionC: strPtr("runs at return")})
	require.NoError(t, err)
	assert.Equal(t, model.OptionC, updated.CorrectOption)
	assert.Equal(t, "runs at return", updated.OptionC)
	assert.Equal(t, "a", updated.OptionA)
	assert.Equal(t, goSkill.ID, updated.SkillID)

	_, err = svc.UpdateQuestion(ctx, q1.ID, QuestionUpdate{Difficulty: strPtr("extreme")})
	assert.ErrorIs(t, err, util.ErrInvalidDifficulty)

	require.NoError(t, svc.DeleteQuestion(ctx, q1.ID))
	assert.ErrorIs(t, svc.DeleteQuestion(ctx, q1.ID), util.ErrQuestionNotFound)

	goQuestions, err = svc.ListQuestions(ctx, goSkill.ID)
	require.NoError(t, err)
	assert.Empty(t, goQuestions)
}

func TestQuestionDetailExposesCorrectOption(t *testing.T) {
	q := model.Question{Text: "q", CorrectOption: model.OptionD}
	q.ID = 4
	q.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	detail := model.NewQuestionDetail(q)
	assert.Equal(t, model.OptionD, detail.CorrectOption)
	assert.Equal(t, uint(4), detail.ID)
}
