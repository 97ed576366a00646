package controller

import (
	"skill_assessment_backend/internal/service"
	"skill_assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// SubmitAnswerRequest 提交答案
// swagger:model SubmitAnswerRequest
type SubmitAnswerRequest struct {
	SelectedOption string `json:"selectedOption" binding:"required"`
}

// StartSession godoc
// @Summary 开始测验
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Param skillId path int true "技能ID"
// @Success 201 {object} util.Response{data=model.QuizSession}
// @Failure 404 {object} util.Response "技能不存在"
// @Router /api/quizzes/start/{skillId} [post]
func (c *QuizController) StartSession(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	skillID, ok := pathID(ctx, "skillId")
	if !ok {
		return
	}

	session, err := c.QuizService.StartSession(ctx.Request.Context(), claims.UserID, skillID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, session)
}

// SubmitAnswer godoc
// @Summary 提交答案
// @Description 判定答案并返回会话当前的正确题数；同一题重复提交会覆盖之前的答案
// @Tags 测验
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path int true "会话ID"
// @Param questionId path int true "题目ID"
// @Param body body SubmitAnswerRequest true "所选选项 A-D"
// @Success 200 {object} util.Response{data=model.AnswerResult}
// @Failure 400 {object} util.Response "选项无效或题目不属于该技能"
// @Failure 403 {object} util.Response "不是会话所有者"
// @Failure 409 {object} util.Response "会话已完成"
// @Router /api/quizzes/submit/{sessionId}/{questionId} [post]
func (c *QuizController) SubmitAnswer(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	sessionID, ok := pathID(ctx, "sessionId")
	if !ok {
		return
	}
	questionID, ok := pathID(ctx, "questionId")
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitAnswer(ctx.Request.Context(), claims.UserID, sessionID, questionID, req.SelectedOption)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// CompleteSession godoc
// @Summary 结束测验
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Param sessionId path int true "会话ID"
// @Success 200 {object} util.Response{data=model.QuizSession}
// @Failure 403 {object} util.Response "不是会话所有者"
// @Failure 409 {object} util.Response "会话已完成"
// @Router /api/quizzes/end/{sessionId} [post]
func (c *QuizController) CompleteSession(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	sessionID, ok := pathID(ctx, "sessionId")
	if !ok {
		return
	}

	session, err := c.QuizService.CompleteSession(ctx.Request.Context(), claims.UserID, sessionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// GetQuizHistory godoc
// @Summary 我的测验历史
// @Description 包含进行中的会话，最新在前
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.QuizHistory}
// @Router /api/quizzes/history [get]
func (c *QuizController) GetQuizHistory(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}

	history, err := c.QuizService.GetQuizHistory(ctx.Request.Context(), claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, history)
}
