package controller

import (
	"context"
	"skill_assessment_backend/internal/service"
	"skill_assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserLookup 报告接口在计算前确认目标用户存在
type UserLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type ReportController struct {
	ReportService *service.ReportService
	Users         UserLookup
}

func NewReportController(reportService *service.ReportService, users UserLookup) *ReportController {
	return &ReportController{
		ReportService: reportService,
		Users:         users,
	}
}

// targetUser 解析 :userId 并校验访问权限：本人或管理员
func (c *ReportController) targetUser(ctx *gin.Context) (uint, bool) {
	claims, ok := currentUser(ctx)
	if !ok {
		return 0, false
	}
	userID, ok := pathID(ctx, "userId")
	if !ok {
		return 0, false
	}
	if claims.UserID != userID && !claims.IsAdmin() {
		util.Forbidden(ctx)
		return 0, false
	}

	exists, err := c.Users.Exists(ctx.Request.Context(), userID)
	if err != nil {
		util.LogInternalErrorWith(ctx, err)
		return 0, false
	}
	if !exists {
		respondError(ctx, util.ErrUserNotFound)
		return 0, false
	}
	return userID, true
}

// GetUserReport godoc
// @Summary 用户测验报告
// @Description 汇总用户在时间窗口内已完成的测验，包括逐次得分、技能差距与近期活跃度
// @Tags 报告
// @Produce json
// @Security BearerAuth
// @Param userId path int true "用户ID"
// @Param filter query string false "时间窗口" Enums(week, month, all) default(all)
// @Success 200 {object} util.Response{data=model.QuizReport}
// @Failure 400 {object} util.Response "参数错误"
// @Failure 403 {object} util.Response "无权查看"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/reports/user/{userId} [get]
func (c *ReportController) GetUserReport(ctx *gin.Context) {
	userID, ok := c.targetUser(ctx)
	if !ok {
		return
	}

	filter := c.ReportService.ResolveFilter(ctx.Query("filter"))
	report, err := c.ReportService.GetUserReport(ctx.Request.Context(), userID, filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

// GetSkillGaps godoc
// @Summary 技能差距分析
// @Description 按技能聚合平均分、掌握程度与趋势，薄弱技能在前
// @Tags 报告
// @Produce json
// @Security BearerAuth
// @Param userId path int true "用户ID"
// @Param filter query string false "时间窗口" Enums(week, month, all) default(all)
// @Success 200 {object} util.Response{data=[]model.SkillGap}
// @Failure 403 {object} util.Response "无权查看"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/reports/skill-gaps/{userId} [get]
func (c *ReportController) GetSkillGaps(ctx *gin.Context) {
	userID, ok := c.targetUser(ctx)
	if !ok {
		return
	}

	filter := c.ReportService.ResolveFilter(ctx.Query("filter"))
	gaps, err := c.ReportService.GetSkillGaps(ctx.Request.Context(), userID, filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gaps)
}

// GetComparativeReport godoc
// @Summary 对比分析
// @Description 用户平均分与全体已完成测验的得分分布对比（仅管理员）
// @Tags 报告
// @Produce json
// @Security BearerAuth
// @Param userId path int true "用户ID"
// @Success 200 {object} util.Response{data=model.ComparativeReport}
// @Failure 403 {object} util.Response "需要管理员权限"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/reports/comparative/{userId} [get]
func (c *ReportController) GetComparativeReport(ctx *gin.Context) {
	userID, ok := c.targetUser(ctx)
	if !ok {
		return
	}

	result, err := c.ReportService.GetComparativeReport(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// GetSessionReport godoc
// @Summary 单次测验得分
// @Tags 报告
// @Produce json
// @Security BearerAuth
// @Param sessionId path int true "会话ID"
// @Success 200 {object} util.Response{data=model.SessionReport}
// @Failure 403 {object} util.Response "无权查看"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/reports/session/{sessionId} [get]
func (c *ReportController) GetSessionReport(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	sessionID, ok := pathID(ctx, "sessionId")
	if !ok {
		return
	}

	session, report, err := c.ReportService.GetSessionReport(ctx.Request.Context(), sessionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if session.UserID != claims.UserID && !claims.IsAdmin() {
		util.Forbidden(ctx)
		return
	}
	util.Success(ctx, report)
}
