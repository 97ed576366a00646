package controller

import (
	"skill_assessment_backend/internal/model"
	"skill_assessment_backend/internal/service"
	"skill_assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	CatalogService *service.CatalogService
}

func NewQuestionController(catalogService *service.CatalogService) *QuestionController {
	return &QuestionController{CatalogService: catalogService}
}

// CreateQuestionRequest 新建题目
// swagger:model CreateQuestionRequest
type CreateQuestionRequest struct {
	SkillID       uint   `json:"skillId" binding:"required"`
	Text          string `json:"text" binding:"required,min=5,max=255"`
	OptionA       string `json:"optionA" binding:"required"`
	OptionB       string `json:"optionB" binding:"required"`
	OptionC       string `json:"optionC" binding:"required"`
	OptionD       string `json:"optionD" binding:"required"`
	CorrectOption string `json:"correctOption" binding:"required"`
	Difficulty    string `json:"difficulty"`
}

// UpdateQuestionRequest 只更新提供的字段
// swagger:model UpdateQuestionRequest
type UpdateQuestionRequest struct {
	Text          *string `json:"text" binding:"omitempty,min=5,max=255"`
	OptionA       *string `json:"optionA"`
	OptionB       *string `json:"optionB"`
	OptionC       *string `json:"optionC"`
	OptionD       *string `json:"optionD"`
	CorrectOption *string `json:"correctOption"`
	Difficulty    *string `json:"difficulty"`
}

// ListQuestions godoc
// @Summary 题目列表
// @Description 普通用户看不到正确选项，管理员返回 correctOption
// @Tags 题目
// @Produce json
// @Security BearerAuth
// @Param skillId query int false "按技能筛选"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Failure 404 {object} util.Response "技能不存在"
// @Router /api/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}

	var skillID uint
	if raw := ctx.Query("skillId"); raw != "" {
		id, ok := util.ParseUintParam(raw)
		if !ok {
			util.BadRequest(ctx, "invalid skillId")
			return
		}
		skillID = id
	}

	questions, err := c.CatalogService.ListQuestions(ctx.Request.Context(), skillID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if !claims.IsAdmin() {
		util.Success(ctx, questions)
		return
	}
	details := make([]model.QuestionDetail, 0, len(questions))
	for _, q := range questions {
		details = append(details, model.NewQuestionDetail(q))
	}
	util.Success(ctx, details)
}

// CreateQuestion godoc
// @Summary 新建题目（管理员）
// @Tags 题目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateQuestionRequest true "题目信息"
// @Success 201 {object} util.Response{data=model.QuestionDetail}
// @Failure 400 {object} util.Response "选项或难度无效"
// @Failure 404 {object} util.Response "技能不存在"
// @Router /api/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.CatalogService.CreateQuestion(ctx.Request.Context(), service.QuestionDraft{
		SkillID:       req.SkillID,
		Text:          req.Text,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectOption: req.CorrectOption,
		Difficulty:    req.Difficulty,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, model.NewQuestionDetail(*question))
}

// UpdateQuestion godoc
// @Summary 更新题目（管理员）
// @Tags 题目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param questionId path int true "题目ID"
// @Param body body UpdateQuestionRequest true "要修改的字段"
// @Success 200 {object} util.Response{data=model.QuestionDetail}
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/questions/{questionId} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx, "questionId")
	if !ok {
		return
	}
	var req UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.CatalogService.UpdateQuestion(ctx.Request.Context(), id, service.QuestionUpdate{
		Text:          req.Text,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectOption: req.CorrectOption,
		Difficulty:    req.Difficulty,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, model.NewQuestionDetail(*question))
}

// DeleteQuestion godoc
// @Summary 删除题目（管理员）
// @Tags 题目
// @Produce json
// @Security BearerAuth
// @Param questionId path int true "题目ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/questions/{questionId} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx, "questionId")
	if !ok {
		return
	}

	if err := c.CatalogService.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id})
}
