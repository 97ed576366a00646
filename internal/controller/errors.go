package controller

import (
	"errors"
	"net/http"
	"skill_assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError 将领域错误映射为 HTTP 状态码，其余按 500 处理并记录日志
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrSkillNotFound),
		errors.Is(err, util.ErrSessionNotFound),
		errors.Is(err, util.ErrQuestionNotFound):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, util.ErrSessionCompleted),
		errors.Is(err, util.ErrEmailTaken),
		errors.Is(err, util.ErrSkillExists):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, util.ErrInvalidOption),
		errors.Is(err, util.ErrInvalidDifficulty),
		errors.Is(err, util.ErrQuestionMismatch):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalErrorWith(ctx, err)
	}
}

// pathID 解析路径中的正整数 ID，失败时已写入 400 响应
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, ok := util.ParseUintParam(ctx.Param(name))
	if !ok {
		util.BadRequest(ctx, "invalid "+name)
	}
	return id, ok
}

// currentUser 读取 AuthMiddleware 写入的身份，缺失时已写入 401 响应
func currentUser(ctx *gin.Context) (*util.Claims, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return nil, false
	}
	return claims, true
}
